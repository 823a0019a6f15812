// Copyright 2025 The Agentwire Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-json-experiment/json"
)

// Common errors.
var (
	// ErrStreamClosed is returned when reading from a closed stream.
	ErrStreamClosed = errors.New("stream is closed")
)

// ValidationError reports invalid client configuration or request inputs,
// detected before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// RequestError reports a transport-level failure (DNS, TCP, TLS, timeout,
// or a broken stream). It wraps the underlying cause and is never produced
// for responses the server actually returned.
type RequestError struct {
	Operation string
	URL       string
	Err       error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("request error during %s to %s: %v", e.Operation, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response from the server, carrying the structured
// error body when one was supplied.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("agentwire: HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("agentwire: HTTP %d", e.StatusCode)
}

// AuthenticationError is an HTTP 401 response.
type AuthenticationError struct {
	APIError
}

// RateLimitError is an HTTP 429 response. RetryAfter is the server-supplied
// wait hint, or zero when the server sent none; the SDK never retries on its
// own.
type RateLimitError struct {
	APIError
	RetryAfter time.Duration
}

// NotFoundError is an HTTP 404 response.
type NotFoundError struct {
	APIError
}

// InvalidRequestError is an HTTP 400 response.
type InvalidRequestError struct {
	APIError
}

// errorBody is the error envelope the server uses for non-2xx responses.
type errorBody struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details,omitzero"`
	} `json:"error"`
}

// statusError maps a non-2xx response to a typed error, consuming (but not
// closing) the body.
func statusError(resp *http.Response) error {
	apiErr := APIError{StatusCode: resp.StatusCode}

	if body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)); err == nil && len(body) > 0 {
		var eb errorBody
		if err := json.Unmarshal(body, &eb); err == nil && eb.Error.Message != "" {
			apiErr.Code = eb.Error.Code
			apiErr.Message = eb.Error.Message
			apiErr.Details = eb.Error.Details
		} else {
			apiErr.Message = string(body)
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &AuthenticationError{APIError: apiErr}
	case http.StatusTooManyRequests:
		return &RateLimitError{APIError: apiErr, RetryAfter: retryAfter(resp)}
	case http.StatusNotFound:
		return &NotFoundError{APIError: apiErr}
	case http.StatusBadRequest:
		return &InvalidRequestError{APIError: apiErr}
	default:
		return &apiErr
	}
}

// retryAfter parses the Retry-After header as either delta-seconds or an
// HTTP date.
func retryAfter(resp *http.Response) time.Duration {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}
