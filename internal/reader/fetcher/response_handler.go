// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package fetcher // import "planet.pub/internal/reader/fetcher"

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"planet.pub/internal/reader/encoding"
)

// maxBodySize bounds how much of a feed document is read. Feeds beyond this
// are hostile or broken.
const maxBodySize = 10 << 20

type ResponseHandler struct {
	httpResponse *http.Response
	clientErr    error
}

func (r *ResponseHandler) Err() error { return r.clientErr }

func (r *ResponseHandler) StatusCode() int { return r.httpResponse.StatusCode }

func (r *ResponseHandler) ContentType() string {
	return r.httpResponse.Header.Get("Content-Type")
}

func (r *ResponseHandler) EffectiveURL() string {
	return r.httpResponse.Request.URL.String()
}

func (r *ResponseHandler) Close() {
	if r.Err() != nil {
		return
	}
	r.httpResponse.Body.Close()
}

// ReadBody returns the whole response body converted to UTF-8. It fails on
// transport errors, non-2xx statuses, oversized and empty bodies.
func (r *ResponseHandler) ReadBody() ([]byte, error) {
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("fetcher: http client error: %w", err)
	}

	if code := r.StatusCode(); code < 200 || code >= 300 {
		return nil, fmt.Errorf("fetcher: unexpected status %d fetching %q",
			code, r.EffectiveURL())
	}

	body := http.MaxBytesReader(nil, r.httpResponse.Body, maxBodySize)
	reader, err := encoding.NewCharsetReader(body, r.ContentType())
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	switch _, err := io.Copy(&buffer, reader); {
	case err == nil || errors.Is(err, io.EOF):
	default:
		if maxBytesErr, ok := errors.AsType[*http.MaxBytesError](err); ok {
			return nil, fmt.Errorf("fetcher: response body too large: %d bytes",
				maxBytesErr.Limit)
		}
		return nil, fmt.Errorf("fetcher: unable to read response body: %w", err)
	}

	if buffer.Len() == 0 {
		return nil, errors.New("fetcher: empty response body")
	}
	return buffer.Bytes(), nil
}
