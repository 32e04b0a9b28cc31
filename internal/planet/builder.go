// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package planet // import "planet.pub/internal/planet"

import (
	"time"

	"planet.pub/internal/crypto"
	"planet.pub/internal/document"
	"planet.pub/internal/model"
	"planet.pub/internal/version"
)

// Clock supplies the wall-clock used when a post carries no date: the
// output format mandates a timestamp. Injected instead of read ambiently so
// building stays deterministic under test.
type Clock func() time.Time

// Builder projects canonical posts into output entries.
type Builder struct {
	// SummaryLen is the maximum number of text characters in the excerpt
	// attached to each entry. Zero disables excerpts.
	SummaryLen int

	Now Clock
}

func NewBuilder(summaryLen int) *Builder {
	return &Builder{SummaryLen: summaryLen, Now: time.Now}
}

// Entry builds the output entry for one post.
func (b *Builder) Entry(post *model.Post) Entry {
	e := Entry{
		Title:   Text{Type: "text", Body: post.Title},
		ID:      b.entryID(post),
		Updated: b.timestamp(post).Format(time.RFC3339),
		Author:  Person{Name: post.Author, Email: post.Email},
		Contributors: []Person{{
			Name: post.Contributor.Name,
			URI:  post.Contributor.URL,
		}},
	}

	if post.URL != "" {
		e.Links = []Link{{Href: post.URL, Rel: "alternate"}}
	}
	if len(post.Content) != 0 {
		e.Content = &Text{Type: "html", Body: post.Content.Render()}
		if b.SummaryLen > 0 {
			excerpt := document.Truncate(post.Content, b.SummaryLen)
			e.Summary = &Text{Type: "html", Body: excerpt.Render()}
		}
	}
	return e
}

// entryID is the post link when present. Linkless posts get a stable
// last-resort identity hashed from the title.
func (b *Builder) entryID(post *model.Post) string {
	if post.URL != "" {
		return post.URL
	}
	return "urn:planet:" + crypto.HashFromString(post.Title)
}

func (b *Builder) timestamp(post *model.Post) time.Time {
	if post.Date != nil {
		return *post.Date
	}
	return b.Now()
}

// Feed builds the whole output document for an already aggregated post
// stream.
func (b *Builder) Feed(title, siteURL string, posts model.Posts) *Feed {
	f := &Feed{
		Title:   Text{Type: "text", Body: title},
		ID:      siteURL,
		Updated: b.Now().UTC().Format(time.RFC3339),
		Generator: Generator{
			Name:    "Planet",
			Version: version.Version,
		},
		Entries: make([]Entry, len(posts)),
	}
	if siteURL == "" {
		f.ID = "urn:planet:" + crypto.HashFromString(title)
	} else {
		f.Links = []Link{{Href: siteURL, Rel: "alternate"}}
	}

	for i, post := range posts {
		f.Entries[i] = b.Entry(post)
	}
	return f
}
