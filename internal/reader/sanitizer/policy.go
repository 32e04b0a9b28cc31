package sanitizer

import (
	"strings"

	"github.com/dsh2dsh/bluemonday/v2"
)

var titlePolicy = bluemonday.StrictPolicy()

// StripTags removes all markup from s. Used for titles and author names,
// which are rendered as plain text constructs.
func StripTags(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return titlePolicy.Sanitize(s)
}
