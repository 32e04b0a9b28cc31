// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package document // import "planet.pub/internal/document"

const ellipsis = "…"

// Truncate computes a prefix of the fragment holding at most maxChars text
// characters, counted depth-first across text nodes only. The cut text node
// gets a single ellipsis appended, so the result may hold maxChars+1
// characters. Element nesting is preserved; siblings after the exhaustion
// point are dropped entirely. Every surviving element loses its id and name
// attributes so a truncated excerpt can coexist on a page with the full
// post without duplicating anchors.
func Truncate(doc Document, maxChars int) Document {
	if maxChars <= 0 {
		return nil
	}
	out, _ := truncateNodes(doc, maxChars)
	return out
}

func truncateNodes(nodes []*Node, budget int) ([]*Node, int) {
	var out []*Node
	for _, n := range nodes {
		if budget <= 0 {
			break
		}
		var truncated *Node
		truncated, budget = truncateNode(n, budget)
		out = append(out, truncated)
	}
	return out, budget
}

func truncateNode(n *Node, budget int) (*Node, int) {
	if n.Type == TextNode {
		runes := []rune(n.Data)
		if len(runes) <= budget {
			return NewText(n.Data), budget - len(runes)
		}
		return NewText(string(runes[:budget]) + ellipsis), 0
	}

	el := &Node{Type: ElementNode, Tag: n.Tag, Attrs: dropAnchorAttrs(n.Attrs)}
	el.Children, budget = truncateNodes(n.Children, budget)
	return el, budget
}

func dropAnchorAttrs(attrs []Attr) []Attr {
	var out []Attr
	for _, a := range attrs {
		if a.Key == "id" || a.Key == "name" {
			continue
		}
		out = append(out, a)
	}
	return out
}
