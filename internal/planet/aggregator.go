// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package planet assembles the aggregated feed: it merges the normalized
// posts of all members, orders them newest first and projects the result
// into an output Atom document.
package planet // import "planet.pub/internal/planet"

import (
	"slices"

	"planet.pub/internal/model"
	"planet.pub/internal/reader/parser"
)

// Member pairs a contributor with its parsed feed document.
type Member struct {
	Contributor model.Contributor
	Feed        parser.Feed
}

// Posts returns the member's normalized posts, zero for broken feeds.
func (m *Member) Posts() model.Posts {
	return parser.Posts(&m.Contributor, m.Feed)
}

// Aggregate merges the posts of all members into one stream ordered by date
// descending, dated posts before undated ones, then applies offset/limit
// pagination. Undated posts compare equal among themselves; the stable sort
// keeps their relative input order. A negative limit keeps everything, a
// zero limit yields an empty page. A non-positive offset is a no-op.
func Aggregate(members []Member, limit, offset int) model.Posts {
	var posts model.Posts
	for i := range members {
		posts = append(posts, members[i].Posts()...)
	}
	slices.SortStableFunc(posts, comparePosts)
	return paginate(posts, limit, offset)
}

func comparePosts(a, b *model.Post) int {
	switch {
	case a.Date == nil && b.Date == nil:
		return 0
	case a.Date == nil:
		return 1
	case b.Date == nil:
		return -1
	}
	return b.Date.Compare(*a.Date)
}

func paginate(posts model.Posts, limit, offset int) model.Posts {
	if offset > 0 {
		if offset >= len(posts) {
			return nil
		}
		posts = posts[offset:]
	}

	switch {
	case limit < 0:
	case limit >= len(posts):
	default:
		posts = posts[:limit]
	}

	if len(posts) == 0 {
		return nil
	}
	return posts
}
