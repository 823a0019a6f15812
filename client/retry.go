// Copyright 2025 The Agentwire Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"time"
)

// RetryConfig configures retry behavior for non-streaming requests. The
// zero value disables retries; nothing is retried unless a caller opts in
// with WithRetryConfig.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts, including the first.
	MaxAttempts int
	// InitialDelay is the delay before the second attempt.
	InitialDelay time.Duration
	// MaxDelay caps the exponential backoff.
	MaxDelay time.Duration
	// Multiplier is the exponential backoff multiplier.
	Multiplier float64
	// RetryableErrors decides which errors trigger a retry. Defaults to
	// IsRetryableError.
	RetryableErrors func(error) bool
}

// DefaultRetryConfig returns a three-attempt exponential backoff
// configuration.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:     3,
		InitialDelay:    1 * time.Second,
		MaxDelay:        30 * time.Second,
		Multiplier:      2.0,
		RetryableErrors: IsRetryableError,
	}
}

// IsRetryableError reports whether err is worth retrying: temporary network
// failures and 5xx responses. Auth, validation, not-found, and rate-limit
// errors are not retried.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return true
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}

	return false
}

// retryableFunc is a function that can be retried.
type retryableFunc func(context.Context) error

// withRetry executes fn with exponential backoff per config.
func withRetry(ctx context.Context, config *RetryConfig, operation string, fn retryableFunc) error {
	if config == nil || config.MaxAttempts <= 0 {
		return fn(ctx)
	}

	retryable := config.RetryableErrors
	if retryable == nil {
		retryable = IsRetryableError
	}

	var lastErr error
	delay := config.InitialDelay

	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable(err) {
			return err
		}
		if attempt == config.MaxAttempts-1 {
			break
		}

		// 10% jitter.
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.1)
		select {
		case <-time.After(delay + jitter):
		case <-ctx.Done():
			return ctx.Err()
		}

		delay = time.Duration(float64(delay) * config.Multiplier)
		if delay > config.MaxDelay {
			delay = config.MaxDelay
		}
	}

	return fmt.Errorf("operation %s failed after %d attempts: %w", operation, config.MaxAttempts, lastErr)
}

// retryInterceptor adds retry logic to the request chain. Streaming
// requests pass through untouched: a replayed stream would duplicate
// delivered events.
func retryInterceptor(config *RetryConfig) Interceptor {
	return func(ctx context.Context, req *http.Request, next Invoker) (*http.Response, error) {
		if req.Header.Get("Accept") == "text/event-stream" {
			return next(ctx, req)
		}

		var resp *http.Response
		attempt := 0
		err := withRetry(ctx, config, req.Method+" "+req.URL.Path, func(ctx context.Context) error {
			if attempt > 0 && req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return err
				}
				req.Body = body
			}
			attempt++

			var err error
			resp, err = next(ctx, req)
			if err != nil {
				return err
			}
			if resp.StatusCode >= 500 {
				resp.Body.Close()
				return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return resp, nil
	}
}
