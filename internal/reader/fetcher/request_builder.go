// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package fetcher downloads contributor feeds over HTTP.
package fetcher // import "planet.pub/internal/reader/fetcher"

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzhttp"

	"planet.pub/internal/config"
)

const defaultAcceptHeader = "application/xml, application/atom+xml, application/rss+xml, application/rdf+xml, text/html, */*;q=0.9"

type RequestBuilder struct {
	ctx           context.Context
	headers       http.Header
	clientTimeout time.Duration
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		headers:       make(http.Header),
		clientTimeout: config.Opts.HTTPClientTimeout(),
	}
}

func (r *RequestBuilder) WithContext(ctx context.Context) *RequestBuilder {
	r.ctx = ctx
	return r
}

func (r *RequestBuilder) Context() context.Context {
	if r.ctx != nil {
		return r.ctx
	}
	return context.Background()
}

func (r *RequestBuilder) WithHeader(key, value string) *RequestBuilder {
	r.headers.Set(key, value)
	return r
}

func (r *RequestBuilder) WithUserAgent(userAgent string) *RequestBuilder {
	if userAgent != "" {
		r.headers.Set("User-Agent", userAgent)
	}
	return r
}

func (r *RequestBuilder) WithTimeout(timeout time.Duration) *RequestBuilder {
	r.clientTimeout = timeout
	return r
}

// Request downloads requestURL. Transport decompression is transparent and
// the response handler wraps both the response and the client error, so
// callers have a single place to check.
func (r *RequestBuilder) Request(requestURL string) (*ResponseHandler, error) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet,
		requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetcher: invalid request url %q: %w",
			requestURL, err)
	}

	req.Header = r.headers.Clone()
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", defaultAcceptHeader)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", config.Opts.HTTPClientUserAgent())
	}

	client := &http.Client{
		Timeout:   r.clientTimeout,
		Transport: gzhttp.Transport(http.DefaultTransport.(*http.Transport).Clone()),
	}

	resp, err := client.Do(req)
	return &ResponseHandler{httpResponse: resp, clientErr: err}, nil
}
