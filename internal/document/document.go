// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package document models parsed markup as an immutable fragment tree and
// provides the length-bounded truncation used for post excerpts.
package document // import "planet.pub/internal/document"

import "strings"

type NodeType int

const (
	TextNode NodeType = iota
	ElementNode
)

// Attr is a single attribute of an element. Attribute keys are not
// guaranteed unique: malformed upstream markup may repeat them and the tree
// keeps whatever the parser produced.
type Attr struct {
	Key string
	Val string
}

// Node is one node of a parsed markup fragment: either an element with a
// tag name, ordered attributes and children, or a text run. Nodes are never
// mutated after construction; transformations build new nodes.
type Node struct {
	Type     NodeType
	Tag      string // element nodes only
	Attrs    []Attr // element nodes only
	Data     string // text nodes only
	Children []*Node
}

// Document is an ordered sequence of top-level nodes. A fragment is not
// required to have a single root.
type Document []*Node

func NewText(s string) *Node { return &Node{Type: TextNode, Data: s} }

func NewElement(tag string, attrs ...Attr) *Node {
	return &Node{Type: ElementNode, Tag: tag, Attrs: attrs}
}

// Text returns the concatenated content of all text nodes, depth-first,
// left-to-right. Element nodes contribute nothing by themselves.
func (d Document) Text() string {
	var b strings.Builder
	for _, n := range d {
		n.writeText(&b)
	}
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	if n.Type == TextNode {
		b.WriteString(n.Data)
		return
	}
	for _, c := range n.Children {
		c.writeText(b)
	}
}

// TextLen returns the number of characters (runes) of text content in the
// fragment, using the same traversal order as Text.
func (d Document) TextLen() int {
	var total int
	for _, n := range d {
		total += n.textLen()
	}
	return total
}

func (n *Node) textLen() int {
	if n.Type == TextNode {
		return len([]rune(n.Data))
	}
	var total int
	for _, c := range n.Children {
		total += c.textLen()
	}
	return total
}
