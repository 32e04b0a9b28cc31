// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package document // import "planet.pub/internal/document"

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// maxDepth bounds how deep a converted tree may go. Adversarial inputs can
// nest elements arbitrarily; anything below this depth is discarded. This is
// a deliberate limit, not an implementation accident.
const maxDepth = 200

// Parse parses raw markup with the lenient HTML grammar. Upstream content is
// routinely ill-formed, so the parser never fails hard: any parse error
// degrades to a fragment holding the whole input as one text node, which
// renders fully escaped. Character and entity references are decoded as
// UTF-8 by the tokenizer.
func Parse(raw string) Document {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}

	nodes, err := html.ParseFragment(strings.NewReader(raw), context)
	if err != nil {
		return Document{NewText(raw)}
	}

	doc := make(Document, 0, len(nodes))
	for _, n := range nodes {
		if converted := convert(n, 0); converted != nil {
			doc = append(doc, converted)
		}
	}
	return doc
}

// convert maps a x/net/html node to our tree. Comments, doctypes and
// anything past maxDepth are dropped.
func convert(n *html.Node, depth int) *Node {
	if depth > maxDepth {
		return nil
	}

	switch n.Type {
	case html.TextNode:
		return NewText(n.Data)
	case html.ElementNode:
		el := &Node{Type: ElementNode, Tag: n.Data}
		if len(n.Attr) != 0 {
			el.Attrs = make([]Attr, len(n.Attr))
			for i, a := range n.Attr {
				el.Attrs[i] = Attr{Key: a.Key, Val: a.Val}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c, depth+1); child != nil {
				el.Children = append(el.Children, child)
			}
		}
		return el
	}
	return nil
}
