// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package document // import "planet.pub/internal/document"

import (
	"strings"

	"golang.org/x/net/html"
)

// Void elements per the HTML standard: serialized without a closing tag.
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "source": {},
	"track": {}, "wbr": {},
}

// Render serializes the fragment back to markup text. Text nodes and
// attribute values are entity-escaped.
func (d Document) Render() string {
	var b strings.Builder
	for _, n := range d {
		n.render(&b)
	}
	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	if n.Type == TextNode {
		b.WriteString(html.EscapeString(n.Data))
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Val))
		b.WriteByte('"')
	}

	if _, ok := voidElements[n.Tag]; ok && len(n.Children) == 0 {
		b.WriteString("/>")
		return
	}

	b.WriteByte('>')
	for _, c := range n.Children {
		c.render(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}
