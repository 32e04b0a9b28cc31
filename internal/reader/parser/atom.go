// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package parser // import "planet.pub/internal/reader/parser"

import (
	"net/url"
	"strings"
	"time"

	"github.com/dsh2dsh/gofeed/v2/atom"

	"planet.pub/internal/document"
	"planet.pub/internal/model"
	"planet.pub/internal/reader/sanitizer"
)

func atomPosts(c *model.Contributor, feed *atom.Feed) model.Posts {
	if len(feed.Entries) == 0 {
		return nil
	}

	posts := make(model.Posts, len(feed.Entries))
	for i, entry := range feed.Entries {
		p := atomEntry{contrib: c, atom: entry}
		posts[i] = p.Post()
	}
	return posts
}

// atomEntry normalizes one entry-oriented (Atom) entry.
type atomEntry struct {
	contrib *model.Contributor
	atom    *atom.Entry
}

func (self *atomEntry) Post() *model.Post {
	link := self.link()
	return &model.Post{
		Title:       sanitizer.StripTags(self.atom.Title),
		URL:         link,
		Date:        self.date(),
		Author:      self.author(),
		Content:     self.content(link),
		Contributor: self.contrib,
	}
}

// link prefers the alternate-relation link. An absent rel attribute means
// alternate per the Atom spec. Entries without any alternate link fall back
// to the first link of any relation.
func (self *atomEntry) link() string {
	var first string
	for _, l := range self.atom.Links {
		if l == nil || l.Href == "" {
			continue
		}
		if l.Rel == "" || strings.EqualFold(l.Rel, "alternate") {
			return l.Href
		}
		if first == "" {
			first = l.Href
		}
	}
	return first
}

// date is the published timestamp when present, else the mandatory updated
// timestamp. Feeds that violate the spec and carry neither yield nil.
func (self *atomEntry) date() *time.Time {
	if t := self.atom.PublishedParsed; t != nil {
		return t
	}
	return self.atom.UpdatedParsed
}

// author is the primary author's display name. The entry-oriented format
// omits emails at this layer.
func (self *atomEntry) author() string {
	for _, a := range self.atom.Authors {
		if a == nil {
			continue
		}
		if a.Name != "" {
			return sanitizer.StripTags(a.Name)
		}
		if a.Email != "" {
			return a.Email
		}
	}
	return self.contrib.Name
}

// content derives the description from the entry content, falling back to
// the summary when content is absent or of an unusable sub-kind.
func (self *atomEntry) content(link string) document.Document {
	base := contentBase(link, self.contrib.URL)
	if doc, ok := sanitizeContent(self.atom.Content, base); ok {
		return doc
	}
	if s := self.atom.Summary; s != "" {
		return sanitizer.Sanitize(s, base)
	}
	return nil
}

// sanitizeContent dispatches on the Atom content sub-kind. Plain text needs
// no base URL, it cannot carry links. XHTML content arrives from gofeed
// already re-serialized to text and is re-parsed with the lenient grammar,
// because upstream XML markup is not trusted to be well-formed HTML. Other
// sub-kinds (media types, out-of-line content) report false so the caller
// can fall through to the summary.
func sanitizeContent(c *atom.Content, base *url.URL) (document.Document, bool) {
	if c == nil || c.Value == "" {
		return nil, false
	}
	switch strings.ToLower(c.Type) {
	case "", "text":
		return sanitizer.Sanitize(c.Value, nil), true
	case "html":
		return sanitizer.Sanitize(c.Value, base), true
	case "xhtml":
		return sanitizer.Sanitize(c.Value, base), true
	}
	return nil, false
}
