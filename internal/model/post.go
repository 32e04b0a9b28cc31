// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package model // import "planet.pub/internal/model"

import (
	"time"

	"planet.pub/internal/document"
)

// Post is the canonical representation of one upstream feed entry or item.
// A Post is built once by the normalizer and never mutated.
type Post struct {
	Title string

	// URL is the post's canonical page. Empty when the source exposed no
	// usable link.
	URL string

	// Date is the publication timestamp. nil means unknown; undated posts
	// sort after dated ones.
	Date *time.Time

	// Author is the display name shown on the aggregated feed. It may
	// duplicate the contributor name. Email may be empty.
	Author string
	Email  string

	// Content is the sanitized, link-resolved description fragment.
	Content document.Document

	Contributor *Contributor
}

type Posts []*Post
