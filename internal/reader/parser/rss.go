// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package parser // import "planet.pub/internal/reader/parser"

import (
	"strings"

	"github.com/dsh2dsh/gofeed/v2/rss"

	"planet.pub/internal/document"
	"planet.pub/internal/model"
	"planet.pub/internal/reader/sanitizer"
)

func rssPosts(c *model.Contributor, feed *rss.Feed) model.Posts {
	if len(feed.Items) == 0 {
		return nil
	}

	posts := make(model.Posts, len(feed.Items))
	for i, item := range feed.Items {
		p := rssItem{contrib: c, rss: item}
		posts[i] = p.Post()
	}
	return posts
}

// rssItem normalizes one item-oriented (RSS) item. Title and description
// come from the item's story variant: title plus content yields both, a
// bare title yields an empty description, a bare description yields an
// empty title.
type rssItem struct {
	contrib *model.Contributor
	rss     *rss.Item
}

func (self *rssItem) Post() *model.Post {
	link := self.link()
	return &model.Post{
		Title:       sanitizer.StripTags(self.rss.GetTitle()),
		URL:         link,
		Date:        self.rss.GetPublishedParsed(),
		Author:      self.contrib.Name,
		Email:       self.email(),
		Content:     self.content(link),
		Contributor: self.contrib,
	}
}

// link resolution order: a guid explicitly marked as permalink, then the
// item link, then the guid value anyway. Some feeds set isPermaLink=false
// yet supply no other usable URL; their guid is still the best identity we
// have. An absent isPermaLink attribute defaults to true per the RSS spec.
func (self *rssItem) link() string {
	guid := self.rss.GUID
	if guid != nil && guid.Value != "" && isPermaLink(guid) {
		return guid.Value
	}
	if link := self.rss.Link(); link != "" {
		return link
	}
	if guid != nil {
		return guid.Value
	}
	return ""
}

func isPermaLink(guid *rss.GUID) bool {
	return guid.IsPermalink == "" || strings.EqualFold(guid.IsPermalink, "true")
}

// email: the item-oriented format has no reliable per-item author name, its
// author field conventionally carries an email address.
func (self *rssItem) email() string {
	name, address, ok := self.rss.GetAuthor()
	switch {
	case !ok:
		return ""
	case address != "":
		return address
	}
	return name
}

// content prefers the encoded content; empty content falls back to the
// item description.
func (self *rssItem) content(link string) document.Document {
	base := contentBase(link, self.contrib.URL)

	s := self.rss.GetContent()
	if s == "" {
		s = self.rss.Description
	}
	if s == "" {
		return nil
	}
	return sanitizer.Sanitize(s, base)
}
