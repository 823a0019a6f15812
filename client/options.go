// Copyright 2025 The Agentwire Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*options) error

// TokenProvider supplies a fresh bearer token per request, for callers whose
// credentials rotate. A static API key set with WithAPIKey is used otherwise.
type TokenProvider func() (string, error)

// options holds all configuration for a Client.
type options struct {
	baseURL    string
	httpClient *http.Client

	apiKey        string
	tokenProvider TokenProvider

	timeout       time.Duration
	streamTimeout time.Duration

	retryConfig  *RetryConfig
	interceptors []Interceptor

	userAgent string
	logger    zerolog.Logger
}

// defaultOptions returns default client options.
func defaultOptions() *options {
	return &options{
		timeout:       30 * time.Second,
		streamTimeout: 5 * time.Minute,
		userAgent:     "agentwire-go/" + sdkVersion,
		logger:        zerolog.Nop(),
	}
}

// WithBaseURL sets the base URL of the Agentwire API.
func WithBaseURL(url string) Option {
	return func(o *options) error {
		if url == "" {
			return &ValidationError{Field: "baseURL", Message: "base URL cannot be empty"}
		}
		o.baseURL = url
		return nil
	}
}

// WithAPIKey sets a static bearer token.
func WithAPIKey(key string) Option {
	return func(o *options) error {
		o.apiKey = key
		return nil
	}
}

// WithTokenProvider sets a per-request token source. It takes precedence
// over WithAPIKey.
func WithTokenProvider(provider TokenProvider) Option {
	return func(o *options) error {
		if provider == nil {
			return &ValidationError{Field: "tokenProvider", Message: "token provider cannot be nil"}
		}
		o.tokenProvider = provider
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client. The client's Timeout should be
// zero; the SDK bounds requests with per-call deadlines so long-lived
// streams are not cut off.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) error {
		if client == nil {
			return &ValidationError{Field: "httpClient", Message: "HTTP client cannot be nil"}
		}
		o.httpClient = client
		return nil
	}
}

// WithTimeout sets the deadline for non-streaming requests.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) error {
		if timeout <= 0 {
			return &ValidationError{Field: "timeout", Message: "timeout must be positive"}
		}
		o.timeout = timeout
		return nil
	}
}

// WithStreamTimeout sets the overall deadline for streaming chat calls.
func WithStreamTimeout(timeout time.Duration) Option {
	return func(o *options) error {
		if timeout <= 0 {
			return &ValidationError{Field: "streamTimeout", Message: "stream timeout must be positive"}
		}
		o.streamTimeout = timeout
		return nil
	}
}

// WithRetryConfig enables retries for non-streaming requests. Streaming
// calls are never retried by the SDK.
func WithRetryConfig(config *RetryConfig) Option {
	return func(o *options) error {
		if config == nil {
			return &ValidationError{Field: "retryConfig", Message: "retry config cannot be nil"}
		}
		if config.MaxAttempts < 0 {
			return &ValidationError{Field: "retryConfig.MaxAttempts", Message: "max attempts must be non-negative"}
		}
		o.retryConfig = config
		return nil
	}
}

// WithInterceptor adds an interceptor to the request chain.
func WithInterceptor(interceptor Interceptor) Option {
	return func(o *options) error {
		if interceptor == nil {
			return &ValidationError{Field: "interceptor", Message: "interceptor cannot be nil"}
		}
		o.interceptors = append(o.interceptors, interceptor)
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) error {
		if ua == "" {
			return &ValidationError{Field: "userAgent", Message: "user agent cannot be empty"}
		}
		o.userAgent = ua
		return nil
	}
}

// WithLogger sets the logger for client debug output. The default logger
// discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}
