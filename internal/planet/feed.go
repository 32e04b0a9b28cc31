// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package planet // import "planet.pub/internal/planet"

import (
	"encoding/xml"
	"fmt"
)

// Output Atom constructs, marshalled with encoding/xml. Serialization to a
// concrete transport is the caller's concern; Render produces the document
// text.

type Feed struct {
	XMLName xml.Name `xml:"http://www.w3.org/2005/Atom feed"`

	Title     Text      `xml:"title"`
	ID        string    `xml:"id"`
	Updated   string    `xml:"updated"`
	Generator Generator `xml:"generator"`
	Links     []Link
	Entries   []Entry
}

type Entry struct {
	XMLName xml.Name `xml:"entry"`

	Title        Text     `xml:"title"`
	ID           string   `xml:"id"`
	Updated      string   `xml:"updated"`
	Links        []Link
	Author       Person   `xml:"author"`
	Contributors []Person `xml:"contributor"`
	Summary      *Text    `xml:"summary"`
	Content      *Text    `xml:"content"`
}

type Text struct {
	Type string `xml:"type,attr"`
	Body string `xml:",chardata"`
}

type Link struct {
	XMLName struct{} `xml:"link"`

	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr,omitempty"`
}

type Person struct {
	Name  string `xml:"name"`
	URI   string `xml:"uri,omitempty"`
	Email string `xml:"email,omitempty"`
}

type Generator struct {
	URI     string `xml:"uri,attr,omitempty"`
	Version string `xml:"version,attr,omitempty"`
	Name    string `xml:",chardata"`
}

// Render marshals the feed into an Atom document with an XML declaration.
func (f *Feed) Render() (string, error) {
	b, err := xml.MarshalIndent(f, "", "  ")
	if err != nil {
		return "", fmt.Errorf("planet: marshal feed: %w", err)
	}
	return xml.Header + string(b) + "\n", nil
}
