package parser

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseRSSPosts(t *testing.T, items string) []*postResult {
	t.Helper()
	raw := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
  <channel>
    <title>Alice's Blog</title>
    <link>https://alice.example.org/</link>
    <description>words</description>
%s
  </channel>
</rss>`, items)

	feed := Parse([]byte(raw))
	require.False(t, feed.Broken())

	posts := Posts(testContributor(), feed)
	out := make([]*postResult, len(posts))
	for i, p := range posts {
		out[i] = &postResult{
			Title:   p.Title,
			URL:     p.URL,
			Date:    p.Date,
			Author:  p.Author,
			Email:   p.Email,
			Content: p.Content.Render(),
		}
	}
	return out
}

func TestRSSItem_linkFallback(t *testing.T) {
	tests := []struct {
		name string
		item string
		want string
	}{
		{
			name: "permalink guid wins over link",
			item: `<guid>https://alice.example.org/42</guid>
<link>https://alice.example.org/other</link>`,
			want: "https://alice.example.org/42",
		},
		{
			name: "explicit true permalink",
			item: `<guid isPermaLink="true">https://alice.example.org/42</guid>`,
			want: "https://alice.example.org/42",
		},
		{
			name: "non-permalink guid defers to link",
			item: `<guid isPermaLink="false">tag:alice,2024:42</guid>
<link>https://alice.example.org/42</link>`,
			want: "https://alice.example.org/42",
		},
		{
			name: "non-permalink guid used anyway when nothing else",
			item: `<guid isPermaLink="false">https://alice.example.org/42</guid>`,
			want: "https://alice.example.org/42",
		},
		{
			name: "no guid, no link",
			item: ``,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := parseRSSPosts(t,
				fmt.Sprintf("<item><title>x</title>\n%s</item>", tt.item))
			require.Len(t, posts, 1)
			assert.Equal(t, tt.want, posts[0].URL)
		})
	}
}

func TestRSSItem_storyVariants(t *testing.T) {
	tests := []struct {
		name        string
		item        string
		wantTitle   string
		wantContent string
	}{
		{
			name: "title and description",
			item: `<title>Hello</title>
<description>&lt;p&gt;world&lt;/p&gt;</description>`,
			wantTitle:   "Hello",
			wantContent: "<p>world</p>",
		},
		{
			name: "encoded content preferred over description",
			item: `<title>Hello</title>
<description>teaser</description>
<content:encoded><![CDATA[<p>full text</p>]]></content:encoded>`,
			wantTitle:   "Hello",
			wantContent: "<p>full text</p>",
		},
		{
			name:        "title only",
			item:        `<title>Hello</title>`,
			wantTitle:   "Hello",
			wantContent: "",
		},
		{
			name:        "description only",
			item:        `<description>&lt;p&gt;no title here&lt;/p&gt;</description>`,
			wantTitle:   "",
			wantContent: "<p>no title here</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := parseRSSPosts(t,
				fmt.Sprintf("<item>%s</item>", tt.item))
			require.Len(t, posts, 1)
			assert.Equal(t, tt.wantTitle, posts[0].Title)
			assert.Equal(t, tt.wantContent, posts[0].Content)
		})
	}
}

func TestRSSItem_relativeContentLinksResolved(t *testing.T) {
	posts := parseRSSPosts(t, `<item>
  <title>Hello</title>
  <link>https://alice.example.org/posts/42</link>
  <description>&lt;a href="43"&gt;next&lt;/a&gt;</description>
</item>`)
	require.Len(t, posts, 1)
	assert.Equal(t,
		`<a href="https://alice.example.org/posts/43">next</a>`,
		posts[0].Content)
}

func TestRSSItem_authorAndEmail(t *testing.T) {
	posts := parseRSSPosts(t, `<item>
  <title>Hello</title>
  <author>bob@example.net</author>
</item>
<item>
  <title>Anonymous</title>
</item>`)
	require.Len(t, posts, 2)

	// The item-oriented format has no reliable per-item author name; the
	// contributor's display name is used and the author field is an email.
	assert.Equal(t, "Alice", posts[0].Author)
	assert.Equal(t, "bob@example.net", posts[0].Email)

	assert.Equal(t, "Alice", posts[1].Author)
	assert.Empty(t, posts[1].Email)
}

func TestRSSItem_date(t *testing.T) {
	posts := parseRSSPosts(t, `<item>
  <title>Dated</title>
  <pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
</item>
<item>
  <title>Undated</title>
</item>`)
	require.Len(t, posts, 2)

	require.NotNil(t, posts[0].Date)
	assert.Equal(t, time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC),
		posts[0].Date.UTC())
	assert.Nil(t, posts[1].Date)
}
