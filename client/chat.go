// Copyright 2025 The Agentwire Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"io"

	agentwire "github.com/agentwire/agentwire-go"
)

// EventFunc is invoked once per decoded stream event, in the order frames
// completed on the wire. Returning a non-nil error stops consumption; the
// connection is closed before the error is propagated to the caller.
type EventFunc func(agentwire.StreamEvent) error

// chatPath returns the streaming endpoint for a conversation.
func chatPath(conversationID string) string {
	return apiPrefix + "/conversations/" + conversationID + "/chat"
}

// validateChat checks the shared chat-call inputs.
func validateChat(conversationID string, req agentwire.ChatRequest) error {
	if conversationID == "" {
		return &ValidationError{Field: "conversationID", Message: "conversation ID cannot be empty"}
	}
	if err := req.Validate(); err != nil {
		return &ValidationError{Field: "request", Message: err.Error()}
	}
	return nil
}

// ChatStream sends a chat message and pushes each decoded event to fn as its
// bytes arrive. Chunks are decoded the moment they are read, so delta events
// reach fn without waiting for the response body to finish. Consumption
// stops at the first terminal event ("complete" or "error") or at end of
// stream; the connection is closed on every exit path.
func (c *Client) ChatStream(ctx context.Context, conversationID string, req agentwire.ChatRequest, fn EventFunc) error {
	if err := validateChat(conversationID, req); err != nil {
		return err
	}
	if fn == nil {
		return &ValidationError{Field: "fn", Message: "event callback cannot be nil"}
	}

	resp, cancel, err := c.stream(ctx, chatPath(conversationID), req)
	if err != nil {
		return err
	}
	defer cancel()
	defer resp.Body.Close()

	dec := agentwire.NewEventDecoder()
	buf := make([]byte, readChunkSize)

	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			for _, ev := range dec.Write(buf[:n]) {
				if err := fn(ev); err != nil {
					return err
				}
				if ev.IsTerminal() {
					return nil
				}
			}
		}
		if readErr != nil {
			if readErr != io.EOF {
				return &RequestError{Operation: "read stream", URL: c.opts.baseURL + chatPath(conversationID), Err: readErr}
			}
			if ev, ok := dec.Flush(); ok {
				return fn(ev)
			}
			return nil
		}
	}
}

// Chat sends a chat message and returns a pull-style EventStream. The caller
// must Close the stream, including when abandoning it before a terminal
// event. A fresh call opens a fresh connection; streams are not restartable.
func (c *Client) Chat(ctx context.Context, conversationID string, req agentwire.ChatRequest) (*EventStream, error) {
	if err := validateChat(conversationID, req); err != nil {
		return nil, err
	}

	resp, cancel, err := c.stream(ctx, chatPath(conversationID), req)
	if err != nil {
		return nil, err
	}
	return newEventStream(resp.Body, cancel), nil
}

// ChatSync sends a chat message, blocks until the stream finishes, and
// returns the aggregated ChatResponse. Transport failures abort the call
// with an error; an in-band "error" event instead yields a response with
// Success false.
func (c *Client) ChatSync(ctx context.Context, conversationID string, req agentwire.ChatRequest) (*agentwire.ChatResponse, error) {
	stream, err := c.Chat(ctx, conversationID, req)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	var events []agentwire.StreamEvent
	for {
		ev, ok, err := stream.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		events = append(events, ev)
	}

	return agentwire.CollectResponse(events), nil
}
