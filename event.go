// Copyright 2025 The Agentwire Authors
// SPDX-License-Identifier: Apache-2.0

package agentwire

// Known stream event types. Servers may emit additional types; unrecognized
// types are preserved on the event rather than rejected.
const (
	EventMessageCreated    = "message_created"
	EventReasoningStart    = "reasoning_start"
	EventReasoningDelta    = "reasoning_delta"
	EventReasoningComplete = "reasoning_complete"
	EventToolStart         = "tool_start"
	EventToolComplete      = "tool_complete"
	EventResponseStart     = "response_start"
	EventResponseDelta     = "response_delta"
	EventResponseComplete  = "response_complete"
	EventComplete          = "complete"
	EventError             = "error"
)

// StreamEvent is one decoded server-sent event from a chat stream. Type is
// never empty; Data holds the decoded JSON payload, or {"raw": <text>} when
// the payload was not valid JSON.
type StreamEvent struct {
	Type string
	Data map[string]any
}

// IsTextDelta reports whether the event carries an incremental text fragment.
func (e StreamEvent) IsTextDelta() bool {
	return e.Type == EventReasoningDelta || e.Type == EventResponseDelta
}

// IsComplete reports whether the event signals successful stream completion.
func (e StreamEvent) IsComplete() bool {
	return e.Type == EventComplete
}

// IsError reports whether the event carries an agent-reported error.
func (e StreamEvent) IsError() bool {
	return e.Type == EventError
}

// IsTerminal reports whether the event ends the stream.
func (e StreamEvent) IsTerminal() bool {
	return e.IsComplete() || e.IsError()
}

// IsToolEvent reports whether the event describes tool execution.
func (e StreamEvent) IsToolEvent() bool {
	return e.Type == EventToolStart || e.Type == EventToolComplete
}

// Text returns the text fragment of a delta event, or "".
func (e StreamEvent) Text() string {
	return e.stringField("text")
}

// ErrorText returns the error message of an error event, or "".
func (e StreamEvent) ErrorText() string {
	return e.stringField("error")
}

// ToolName returns the tool name of a tool event, or "".
func (e StreamEvent) ToolName() string {
	return e.stringField("toolName")
}

// Response returns the full response text carried by the event, or "".
func (e StreamEvent) Response() string {
	return e.stringField("response")
}

// ExecutionID returns the execution identifier carried by the event, or "".
func (e StreamEvent) ExecutionID() string {
	return e.stringField("executionId")
}

// AssistantMessageID returns the assistant message identifier, or "".
func (e StreamEvent) AssistantMessageID() string {
	return e.stringField("assistantMessageId")
}

// UserMessageID returns the user message identifier, or "".
func (e StreamEvent) UserMessageID() string {
	return e.stringField("userMessageId")
}

func (e StreamEvent) stringField(key string) string {
	if s, ok := e.Data[key].(string); ok {
		return s
	}
	return ""
}
