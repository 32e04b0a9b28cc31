package planet

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planet.pub/internal/model"
	"planet.pub/internal/reader/parser"
)

func testMember(t *testing.T, name, items string) Member {
	t.Helper()
	raw := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>%s</title>
    <link>https://%s.example.org/</link>
    <description>words</description>
%s
  </channel>
</rss>`, name, name, items)

	feed := parser.Parse([]byte(raw))
	require.False(t, feed.Broken())

	return Member{
		Contributor: model.Contributor{
			Name:    name,
			URL:     "https://" + name + ".example.org/",
			FeedURL: "https://" + name + ".example.org/feed.xml",
		},
		Feed: feed,
	}
}

func testItem(title, pubDate string) string {
	s := "<item><title>" + title + "</title>"
	if pubDate != "" {
		s += "<pubDate>" + pubDate + "</pubDate>"
	}
	return s + "</item>"
}

func titlesOf(posts model.Posts) []string {
	if len(posts) == 0 {
		return nil
	}
	titles := make([]string, len(posts))
	for i, p := range posts {
		titles[i] = p.Title
	}
	return titles
}

func TestAggregate_order(t *testing.T) {
	members := []Member{
		testMember(t, "alice",
			testItem("old", "Fri, 03 Jan 2020 10:00:00 GMT")+
				testItem("undated", "")),
		testMember(t, "bob",
			testItem("new", "Sun, 03 Jan 2021 10:00:00 GMT")),
	}

	posts := Aggregate(members, -1, 0)
	assert.Equal(t, []string{"new", "old", "undated"}, titlesOf(posts))
}

func TestAggregate_undatedKeepInputOrder(t *testing.T) {
	members := []Member{
		testMember(t, "alice", testItem("a1", "")+testItem("a2", "")),
		testMember(t, "bob", testItem("b1", "")),
	}

	posts := Aggregate(members, -1, 0)
	assert.Equal(t, []string{"a1", "a2", "b1"}, titlesOf(posts))
}

func TestAggregate_pagination(t *testing.T) {
	member := testMember(t, "alice",
		testItem("p1", "Wed, 05 Jan 2022 10:00:00 GMT")+
			testItem("p2", "Tue, 04 Jan 2022 10:00:00 GMT")+
			testItem("p3", "Mon, 03 Jan 2022 10:00:00 GMT")+
			testItem("p4", "Sun, 02 Jan 2022 10:00:00 GMT")+
			testItem("p5", "Sat, 01 Jan 2022 10:00:00 GMT"))
	members := []Member{member}

	tests := []struct {
		name   string
		limit  int
		offset int
		want   []string
	}{
		{
			name:  "unlimited",
			limit: -1,
			want:  []string{"p1", "p2", "p3", "p4", "p5"},
		},
		{
			name:   "window",
			limit:  2,
			offset: 1,
			want:   []string{"p2", "p3"},
		},
		{
			name:  "limit past the end",
			limit: 100,
			want:  []string{"p1", "p2", "p3", "p4", "p5"},
		},
		{
			name:   "offset past the end",
			limit:  -1,
			offset: 10,
			want:   nil,
		},
		{
			name:  "zero limit",
			limit: 0,
			want:  nil,
		},
		{
			name:   "negative offset ignored",
			limit:  1,
			offset: -3,
			want:   []string{"p1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := Aggregate(members, tt.limit, tt.offset)
			assert.Equal(t, tt.want, titlesOf(posts))
		})
	}
}

func TestAggregate_brokenMemberContributesNothing(t *testing.T) {
	ok := testMember(t, "alice",
		testItem("post", "Fri, 03 Jan 2020 10:00:00 GMT"))
	broken := Member{
		Contributor: model.Contributor{
			Name:    "bob",
			FeedURL: "https://bob.example.org/feed.xml",
		},
		Feed: parser.Parse([]byte("<html>not a feed</html>")),
	}
	require.True(t, broken.Feed.Broken())

	posts := Aggregate([]Member{broken, ok}, -1, 0)
	assert.Equal(t, []string{"post"}, titlesOf(posts))
}

func TestAggregate_empty(t *testing.T) {
	assert.Empty(t, Aggregate(nil, -1, 0))
}

func TestComparePosts(t *testing.T) {
	d1 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	dated1 := &model.Post{Date: &d1}
	dated2 := &model.Post{Date: &d2}
	undated := &model.Post{}

	assert.Negative(t, comparePosts(dated2, dated1), "newer sorts first")
	assert.Positive(t, comparePosts(dated1, dated2))
	assert.Negative(t, comparePosts(dated1, undated), "dated before undated")
	assert.Positive(t, comparePosts(undated, dated1))
	assert.Zero(t, comparePosts(undated, undated))
}
