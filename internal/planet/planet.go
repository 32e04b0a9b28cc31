// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package planet // import "planet.pub/internal/planet"

import (
	"context"

	"planet.pub/internal/config"
)

// Generate runs the whole pipeline against the configured contributors and
// returns the rendered output document.
func Generate(ctx context.Context) (string, error) {
	members := Refresh(ctx, config.Opts.Contributors())
	posts := Aggregate(members, config.Opts.Limit(), config.Opts.Offset())

	b := NewBuilder(config.Opts.SummaryLength())
	feed := b.Feed(config.Opts.Title(), config.Opts.SiteURL(), posts)
	return feed.Render()
}
