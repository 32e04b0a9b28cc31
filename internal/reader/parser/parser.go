// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parser turns raw feed documents into canonical posts. Parsing of
// the wire formats is delegated to gofeed; this package owns format
// detection and the per-format normalization rules.
package parser // import "planet.pub/internal/reader/parser"

import (
	"bytes"
	"net/url"

	"github.com/dsh2dsh/gofeed/v2/atom"
	"github.com/dsh2dsh/gofeed/v2/options"
	"github.com/dsh2dsh/gofeed/v2/rss"

	"planet.pub/internal/model"
)

// Feed is the parsed feed of one contributor: at most one of the fields is
// set. The zero Feed is the broken marker for contributors whose feed could
// not be detected or parsed; it normalizes to zero posts.
type Feed struct {
	Atom *atom.Feed
	RSS  *rss.Feed
}

func (f Feed) Broken() bool { return f.Atom == nil && f.RSS == nil }

// Parse detects the format of a raw feed document and parses it. Malformed
// or unrecognized input yields the broken marker, never an error: one dead
// feed must not abort aggregation of the rest.
func Parse(b []byte) Feed {
	switch detectFormat(b) {
	case formatAtom:
		parsed, err := atom.NewParser().Parse(bytes.NewReader(b),
			options.WithSkipUnknownElements(true))
		if err != nil {
			return Feed{}
		}
		return Feed{Atom: parsed}
	case formatRSS:
		parsed, err := rss.NewParser().Parse(bytes.NewReader(b),
			options.WithSkipUnknownElements(true))
		if err != nil {
			return Feed{}
		}
		return Feed{RSS: parsed}
	}
	return Feed{}
}

// Posts normalizes every entry of the contributor's feed into canonical
// posts. Broken feeds contribute nothing.
func Posts(c *model.Contributor, feed Feed) model.Posts {
	switch {
	case feed.Atom != nil:
		return atomPosts(c, feed.Atom)
	case feed.RSS != nil:
		return rssPosts(c, feed.RSS)
	}
	return nil
}

// contentBase picks the base URL for resolving relative references inside a
// post's content: the post's own page when known, else the contributor
// homepage.
func contentBase(candidates ...string) *url.URL {
	for _, s := range candidates {
		if s == "" {
			continue
		}
		if u, err := url.Parse(s); err == nil && u.IsAbs() {
			return u
		}
	}
	return nil
}
