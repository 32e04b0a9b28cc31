// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package planet // import "planet.pub/internal/planet"

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"planet.pub/internal/config"
	"planet.pub/internal/logging"
	"planet.pub/internal/model"
	"planet.pub/internal/reader/fetcher"
	"planet.pub/internal/reader/parser"
)

// Refresh downloads and parses every contributor feed, at most
// config.Opts.WorkerPoolSize() in flight and rate limited globally.
// Normalization of each member is independent, so fetching in parallel is
// safe; members come back in configuration order regardless of completion
// order. A failed or unparseable feed degrades to the broken marker and is
// logged — one dead blog never aborts the others.
func Refresh(ctx context.Context, contribs []model.Contributor) []Member {
	members := make([]Member, len(contribs))
	limiter := rate.NewLimiter(rate.Limit(config.Opts.FetchRate()), 1)

	var g errgroup.Group
	g.SetLimit(config.Opts.WorkerPoolSize())

	for i := range contribs {
		g.Go(func() error {
			c := &contribs[i]
			log := logging.FromContext(ctx).With(
				slog.String("contributor", c.Name),
				slog.String("feed_url", c.FeedURL))

			members[i] = Member{Contributor: *c}
			if err := limiter.Wait(ctx); err != nil {
				log.Warn("refresh canceled", slog.Any("error", err))
				return nil
			}

			feed := fetchFeed(logging.WithLogger(ctx, log), c)
			if feed.Broken() {
				log.Warn("contributor feed skipped")
			}
			members[i].Feed = feed
			return nil
		})
	}

	_ = g.Wait()
	return members
}

func fetchFeed(ctx context.Context, c *model.Contributor) parser.Feed {
	log := logging.FromContext(ctx)

	resp, err := fetcher.NewRequestBuilder().WithContext(ctx).Request(c.FeedURL)
	if err != nil {
		log.Warn("unable to fetch feed", slog.Any("error", err))
		return parser.Feed{}
	}
	defer resp.Close()

	b, err := resp.ReadBody()
	if err != nil {
		log.Warn("unable to read feed", slog.Any("error", err))
		return parser.Feed{}
	}
	return parser.Parse(b)
}
