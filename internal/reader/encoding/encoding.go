// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package encoding // import "planet.pub/internal/reader/encoding"

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

// NewCharsetReader returns an io.Reader that converts the content of r to
// UTF-8, using the charset declared in the Content-Type header or sniffed
// from the first bytes of the document.
func NewCharsetReader(r io.Reader, contentType string) (io.Reader, error) {
	reader, err := charset.NewReader(r, contentType)
	switch {
	case errors.Is(err, io.EOF):
		return r, nil
	case err != nil:
		return nil, fmt.Errorf(
			"reader/encoding: new charset reader with contentType=%q: %w",
			contentType, err)
	}
	return reader, nil
}
