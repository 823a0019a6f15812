// Copyright 2025 The Agentwire Authors
// SPDX-License-Identifier: Apache-2.0

package agentwire

import (
	"github.com/agentwire/agentwire-go/internal/pool"
)

// CollectResponse folds a finished event sequence into a single ChatResponse.
// It is a pure left-to-right pass: text deltas are concatenated, metadata
// fields are last-write-wins, and Success flips to false only on an error
// event. Event types it does not recognize are skipped, which keeps the fold
// forward-compatible with new server event kinds.
func CollectResponse(events []StreamEvent) *ChatResponse {
	resp := &ChatResponse{Success: true}

	content := pool.Builder.Get()
	defer pool.Builder.Put(content)

	for _, ev := range events {
		switch {
		case ev.IsTextDelta():
			content.WriteString(ev.Text())

		case ev.Type == EventMessageCreated:
			resp.UserMessageID = ev.UserMessageID()

		case ev.IsComplete():
			resp.ExecutionID = ev.ExecutionID()
			resp.AssistantMessageID = ev.AssistantMessageID()
			if stats, ok := ev.Data["stats"].(map[string]any); ok {
				resp.DurationMs = toInt64(stats["durationMs"])
				resp.TokensUsed = toInt64(stats["tokensUsed"])
			}

		case ev.IsError():
			resp.Error = ev.ErrorText()
			resp.Success = false
		}
	}

	// An empty accumulation means no response text at all, not "".
	if content.Len() > 0 {
		s := content.String()
		resp.Content = &s
	}
	return resp
}

// toInt64 converts a decoded JSON number to int64, tolerating the numeric
// types the JSON decoder may produce.
func toInt64(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	}
	return 0
}
