// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package parser // import "planet.pub/internal/reader/parser"

import (
	"bytes"
	"encoding/xml"
	"strings"

	"golang.org/x/net/html/charset"
)

type feedFormat int

const (
	formatUnknown feedFormat = iota
	formatAtom
	formatRSS
)

// detectFormat sniffs the root element of the document. Atom feeds open
// with <feed>, RSS with <rss> (or <RDF> for the 1.0 lineage, which gofeed's
// RSS parser accepts). Any decoding error means unknown.
func detectFormat(b []byte) feedFormat {
	decoder := xml.NewDecoder(bytes.NewReader(b))
	decoder.Strict = false
	decoder.CharsetReader = charset.NewReaderLabel

	for {
		token, err := decoder.Token()
		if err != nil {
			return formatUnknown
		}
		element, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch strings.ToLower(element.Name.Local) {
		case "feed":
			return formatAtom
		case "rss", "rdf":
			return formatRSS
		}
		return formatUnknown
	}
}
