// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/boostorg/scope/pkg/defaults"
)

const (
	HttpReaderUserAgent = "scopepkg/1.0"

	HttpReaderDefaultTimeout        = defaults.HTTPClientTimeout
	HttpReaderDefaultConnectTimeout = defaults.HTTPConnectTimeout
	HttpReaderDefaultKeepAlive      = defaults.HTTPKeepAlive

	// HttpReaderMaxBodySize bounds remote documents.
	HttpReaderMaxBodySize = defaults.HTTPMaxBodySize
)

// HttpReaderOption defines a configuration option for HttpReader.
type HttpReaderOption func(*HttpReader)

// HttpReader fetches remote documents such as shared settings profiles.
type HttpReader struct {
	UserAgent          string
	TotalTimeout       time.Duration
	InsecureSkipVerify bool
	Client             *http.Client
}

func WithUserAgent(userAgent string) HttpReaderOption {
	return func(r *HttpReader) {
		r.UserAgent = userAgent
	}
}

func WithTotalTimeout(timeout time.Duration) HttpReaderOption {
	return func(r *HttpReader) {
		r.TotalTimeout = timeout
	}
}

func WithInsecureSkipVerify(skip bool) HttpReaderOption {
	return func(r *HttpReader) {
		r.InsecureSkipVerify = skip
	}
}

// WithClient replaces the HTTP client. Timeout and TLS options are not
// applied to a caller-supplied client.
func WithClient(client *http.Client) HttpReaderOption {
	return func(r *HttpReader) {
		r.Client = client
	}
}

// NewHttpReader creates a new HttpReader with the specified options.
func NewHttpReader(options ...HttpReaderOption) *HttpReader {
	r := &HttpReader{
		UserAgent:    HttpReaderUserAgent,
		TotalTimeout: HttpReaderDefaultTimeout,
	}
	for _, opt := range options {
		opt(r)
	}
	if r.Client == nil {
		r.Client = &http.Client{
			Timeout: r.TotalTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   HttpReaderDefaultConnectTimeout,
					KeepAlive: HttpReaderDefaultKeepAlive,
				}).DialContext,
				TLSHandshakeTimeout: defaults.HTTPTLSHandshakeTimeout,
				ForceAttemptHTTP2:   true,
				TLSClientConfig: &tls.Config{
					MinVersion:         tls.VersionTLS12,
					InsecureSkipVerify: r.InsecureSkipVerify, //nolint:gosec // opt-in for self-signed mirrors
				},
			},
		}
	}
	return r
}

// ReadWithContext fetches url and returns the response body.
// Responses other than 200 OK are errors.
func (r *HttpReader) ReadWithContext(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("url is empty")
	}
	if r.Client == nil {
		return nil, fmt.Errorf("http client is nil")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for url %s: %w", url, err)
	}
	if r.UserAgent != "" {
		req.Header.Set("User-Agent", r.UserAgent)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed for url %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, HttpReaderMaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}
	if len(data) > HttpReaderMaxBodySize {
		return nil, fmt.Errorf("response from %s exceeds %d bytes", url, HttpReaderMaxBodySize)
	}
	return data, nil
}
