package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planet.pub/internal/model"
)

func testContributor() *model.Contributor {
	return &model.Contributor{
		Name:    "Alice",
		URL:     "https://alice.example.org/",
		FeedURL: "https://alice.example.org/feed.xml",
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want feedFormat
	}{
		{
			name: "atom",
			raw:  `<?xml version="1.0"?><feed xmlns="http://www.w3.org/2005/Atom"></feed>`,
			want: formatAtom,
		},
		{
			name: "rss",
			raw:  `<rss version="2.0"><channel></channel></rss>`,
			want: formatRSS,
		},
		{
			name: "rdf",
			raw:  `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"></rdf:RDF>`,
			want: formatRSS,
		},
		{
			name: "leading comment",
			raw:  "<!-- generator --><rss version=\"2.0\"><channel></channel></rss>",
			want: formatRSS,
		},
		{
			name: "html page",
			raw:  `<html><body>nope</body></html>`,
			want: formatUnknown,
		},
		{
			name: "not xml at all",
			raw:  "plain text",
			want: formatUnknown,
		},
		{
			name: "empty",
			raw:  "",
			want: formatUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectFormat([]byte(tt.raw)))
		})
	}
}

func TestParse_broken(t *testing.T) {
	for _, raw := range []string{"", "garbage", "<html></html>"} {
		feed := Parse([]byte(raw))
		assert.True(t, feed.Broken(), "raw=%q", raw)
		assert.Empty(t, Posts(testContributor(), feed))
	}
}

func TestParse_atom(t *testing.T) {
	feed := Parse([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Alice's Blog</title>
  <id>urn:example:alice</id>
  <updated>2024-03-04T10:00:00Z</updated>
  <entry>
    <title>Hello</title>
    <id>urn:example:alice:1</id>
    <updated>2024-03-04T10:00:00Z</updated>
    <content type="html">&lt;p&gt;hi&lt;/p&gt;</content>
  </entry>
</feed>`))

	require.False(t, feed.Broken())
	require.NotNil(t, feed.Atom)

	posts := Posts(testContributor(), feed)
	require.Len(t, posts, 1)
	assert.Equal(t, "Hello", posts[0].Title)
}

func TestParse_rss(t *testing.T) {
	feed := Parse([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Alice's Blog</title>
    <link>https://alice.example.org/</link>
    <item>
      <title>Hello</title>
      <link>https://alice.example.org/1</link>
    </item>
  </channel>
</rss>`))

	require.False(t, feed.Broken())
	require.NotNil(t, feed.RSS)

	posts := Posts(testContributor(), feed)
	require.Len(t, posts, 1)
	assert.Equal(t, "Hello", posts[0].Title)
}
