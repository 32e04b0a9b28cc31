// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package sanitizer turns untrusted feed content into a clean document
// fragment: lenient parsing, link resolution against a base URL and a fixed
// denylist of tags and attributes.
package sanitizer // import "planet.pub/internal/reader/sanitizer"

import (
	"net/url"
	"strings"

	"planet.pub/internal/document"
)

var (
	denylistTags = map[string]struct{}{
		"script": {},
		"style":  {},
	}

	denylistAttrs = map[string]struct{}{
		"id": {},
	}
)

// Sanitize parses raw markup and returns a sanitized fragment. When baseURL
// is set, anchor href and image src attributes are resolved against it.
// Denylisted elements are removed with their whole subtree; denylisted
// attributes are removed from every remaining element. Sanitize never
// fails: unparseable input is preserved as escaped text.
func Sanitize(raw string, baseURL *url.URL) document.Document {
	doc := document.Parse(raw)
	if baseURL != nil {
		doc = resolveNodes(doc, baseURL)
	}
	return stripNodes(doc)
}

func resolveNodes(nodes []*document.Node, base *url.URL) []*document.Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]*document.Node, len(nodes))
	for i, n := range nodes {
		out[i] = resolveNode(n, base)
	}
	return out
}

func resolveNode(n *document.Node, base *url.URL) *document.Node {
	if n.Type == document.TextNode {
		return n
	}

	el := &document.Node{
		Type:     document.ElementNode,
		Tag:      n.Tag,
		Attrs:    n.Attrs,
		Children: resolveNodes(n.Children, base),
	}

	var linkAttr string
	switch n.Tag {
	case "a":
		linkAttr = "href"
	case "img":
		linkAttr = "src"
	default:
		return el
	}

	attrs := make([]document.Attr, len(n.Attrs))
	for i, a := range n.Attrs {
		if a.Key == linkAttr {
			a.Val = resolveRef(base, a.Val)
		}
		attrs[i] = a
	}
	el.Attrs = attrs
	return el
}

// resolveRef resolves a possibly relative reference against base. Values
// that do not parse are kept as-is; the denylist pass does not police URL
// schemes, that is the output consumer's concern.
func resolveRef(base *url.URL, val string) string {
	u, err := url.Parse(strings.TrimSpace(val))
	if err != nil {
		return val
	}
	if u.IsAbs() {
		return u.String()
	}
	return base.ResolveReference(u).String()
}

func stripNodes(nodes []*document.Node) []*document.Node {
	var out []*document.Node
	for _, n := range nodes {
		if stripped := stripNode(n); stripped != nil {
			out = append(out, stripped)
		}
	}
	return out
}

// stripNode drops denylisted elements entirely, subtree included, and
// removes denylisted attributes from everything else.
func stripNode(n *document.Node) *document.Node {
	if n.Type == document.TextNode {
		return n
	}
	if _, ok := denylistTags[n.Tag]; ok {
		return nil
	}

	el := &document.Node{
		Type:     document.ElementNode,
		Tag:      n.Tag,
		Children: stripNodes(n.Children),
	}
	for _, a := range n.Attrs {
		if _, ok := denylistAttrs[a.Key]; ok {
			continue
		}
		el.Attrs = append(el.Attrs, a)
	}
	return el
}
