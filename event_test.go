// Copyright 2025 The Agentwire Authors
// SPDX-License-Identifier: Apache-2.0

package agentwire_test

import (
	"testing"

	agentwire "github.com/agentwire/agentwire-go"
)

func TestStreamEvent_Queries(t *testing.T) {
	tests := map[string]struct {
		event        agentwire.StreamEvent
		wantDelta    bool
		wantTerminal bool
		wantTool     bool
		wantText     string
		wantError    string
	}{
		"response delta": {
			event:     agentwire.StreamEvent{Type: agentwire.EventResponseDelta, Data: map[string]any{"text": "hi"}},
			wantDelta: true,
			wantText:  "hi",
		},
		"reasoning delta": {
			event:     agentwire.StreamEvent{Type: agentwire.EventReasoningDelta, Data: map[string]any{"text": "hm"}},
			wantDelta: true,
			wantText:  "hm",
		},
		"complete": {
			event:        agentwire.StreamEvent{Type: agentwire.EventComplete, Data: map[string]any{"executionId": "e1"}},
			wantTerminal: true,
		},
		"error": {
			event:        agentwire.StreamEvent{Type: agentwire.EventError, Data: map[string]any{"error": "boom"}},
			wantTerminal: true,
			wantError:    "boom",
		},
		"tool start": {
			event:    agentwire.StreamEvent{Type: agentwire.EventToolStart, Data: map[string]any{"toolName": "search"}},
			wantTool: true,
		},
		"non-string field": {
			event: agentwire.StreamEvent{Type: agentwire.EventResponseDelta, Data: map[string]any{"text": float64(7)}},
			// A mistyped field reads as empty rather than panicking.
			wantDelta: true,
			wantText:  "",
		},
		"unknown type": {
			event: agentwire.StreamEvent{Type: "heartbeat", Data: map[string]any{"raw": "ping"}},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ev := tc.event
			if got := ev.IsTextDelta(); got != tc.wantDelta {
				t.Errorf("IsTextDelta() = %v, want %v", got, tc.wantDelta)
			}
			if got := ev.IsTerminal(); got != tc.wantTerminal {
				t.Errorf("IsTerminal() = %v, want %v", got, tc.wantTerminal)
			}
			if got := ev.IsToolEvent(); got != tc.wantTool {
				t.Errorf("IsToolEvent() = %v, want %v", got, tc.wantTool)
			}
			if got := ev.Text(); got != tc.wantText {
				t.Errorf("Text() = %q, want %q", got, tc.wantText)
			}
			if got := ev.ErrorText(); got != tc.wantError {
				t.Errorf("ErrorText() = %q, want %q", got, tc.wantError)
			}
		})
	}
}

func TestStreamEvent_Identifiers(t *testing.T) {
	ev := agentwire.StreamEvent{
		Type: agentwire.EventComplete,
		Data: map[string]any{
			"executionId":        "e1",
			"assistantMessageId": "a1",
			"userMessageId":      "u1",
			"response":           "full text",
			"toolName":           "search",
		},
	}

	if got := ev.ExecutionID(); got != "e1" {
		t.Errorf("ExecutionID() = %q, want %q", got, "e1")
	}
	if got := ev.AssistantMessageID(); got != "a1" {
		t.Errorf("AssistantMessageID() = %q, want %q", got, "a1")
	}
	if got := ev.UserMessageID(); got != "u1" {
		t.Errorf("UserMessageID() = %q, want %q", got, "u1")
	}
	if got := ev.Response(); got != "full text" {
		t.Errorf("Response() = %q, want %q", got, "full text")
	}
	if got := ev.ToolName(); got != "search" {
		t.Errorf("ToolName() = %q, want %q", got, "search")
	}
}
