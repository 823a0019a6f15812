// Copyright 2025 The Agentwire Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/google/uuid"

	agentwire "github.com/agentwire/agentwire-go"
	"github.com/agentwire/agentwire-go/internal/pool"
)

const (
	sdkVersion = agentwire.Version

	apiPrefix = "/api/v1"
)

// Invoker executes an HTTP request.
type Invoker func(ctx context.Context, req *http.Request) (*http.Response, error)

// Interceptor wraps request execution, e.g. for retries or instrumentation.
type Interceptor func(ctx context.Context, req *http.Request, next Invoker) (*http.Response, error)

// Client is an Agentwire API client. It is safe for concurrent use;
// each streaming call owns its own connection and decoder.
type Client struct {
	opts *options
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	if o.baseURL == "" {
		return nil, &ValidationError{Field: "baseURL", Message: "base URL is required"}
	}
	o.baseURL = strings.TrimRight(o.baseURL, "/")

	if o.httpClient == nil {
		o.httpClient = &http.Client{}
	}

	if o.retryConfig != nil && o.retryConfig.MaxAttempts > 0 {
		o.interceptors = append([]Interceptor{retryInterceptor(o.retryConfig)}, o.interceptors...)
	}

	return &Client{opts: o}, nil
}

// newRequest builds an authenticated request for path (already prefixed)
// with the given body.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.opts.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", c.opts.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	if err := c.applyAuth(req); err != nil {
		return nil, err
	}
	return req, nil
}

// applyAuth injects the bearer token.
func (c *Client) applyAuth(req *http.Request) error {
	if c.opts.tokenProvider != nil {
		token, err := c.opts.tokenProvider()
		if err != nil {
			return fmt.Errorf("get auth token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	}
	if c.opts.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.apiKey)
	}
	return nil
}

// invoke runs the request through the interceptor chain.
func (c *Client) invoke(ctx context.Context, req *http.Request) (*http.Response, error) {
	invoker := func(ctx context.Context, req *http.Request) (*http.Response, error) {
		return c.opts.httpClient.Do(req.WithContext(ctx))
	}
	invoker = chainInterceptors(c.opts.interceptors, invoker)
	return invoker(ctx, req)
}

// chainInterceptors chains multiple interceptors together, first configured
// outermost.
func chainInterceptors(interceptors []Interceptor, invoker Invoker) Invoker {
	for i := len(interceptors) - 1; i >= 0; i-- {
		interceptor := interceptors[i]
		next := invoker
		invoker = func(ctx context.Context, req *http.Request) (*http.Response, error) {
			return interceptor(ctx, req, next)
		}
	}
	return invoker
}

// do issues a buffered JSON request and decodes the response into out (when
// out is non-nil). Non-2xx statuses are mapped to the typed errors in
// errors.go.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.opts.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		buf := pool.Buffer.Get()
		defer pool.Buffer.Put(buf)
		if err := json.MarshalWrite(buf, in); err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(buf.Bytes())
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	c.opts.logger.Debug().Str("method", method).Str("path", path).Msg("request")

	resp, err := c.invoke(ctx, req)
	if err != nil {
		// An interceptor may have already turned a server response into a
		// typed error; RequestError is reserved for transport failures.
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return err
		}
		return &RequestError{Operation: method + " " + path, URL: c.opts.baseURL + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := statusError(resp)
		c.opts.logger.Debug().Int("status", resp.StatusCode).Str("path", path).Err(err).Msg("request failed")
		return err
	}

	if out == nil {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.UnmarshalRead(resp.Body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// stream issues the streaming POST that opens an SSE response body. The
// returned cancel releases the request context and must be called once the
// body is closed.
func (c *Client) stream(ctx context.Context, path string, in any) (*http.Response, context.CancelFunc, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.streamTimeout)

	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		cancel()
		return nil, nil, err
	}
	req.Header.Set("Accept", "text/event-stream")

	c.opts.logger.Debug().Str("path", path).Msg("open stream")

	resp, err := c.invoke(ctx, req)
	if err != nil {
		cancel()
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil, nil, err
		}
		return nil, nil, &RequestError{Operation: "POST " + path, URL: c.opts.baseURL + path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := statusError(resp)
		resp.Body.Close()
		cancel()
		return nil, nil, err
	}

	return resp, cancel, nil
}

// listQuery serializes cursor pagination parameters.
func listQuery(cursor string, limit int) string {
	if cursor == "" && limit <= 0 {
		return ""
	}
	q := url.Values{}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", limit))
	}
	return "?" + q.Encode()
}
