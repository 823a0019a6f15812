// Copyright 2025 The Agentwire Authors
// SPDX-License-Identifier: Apache-2.0

package agentwire

import (
	"fmt"
	"time"
)

// Role identifies the author of a conversation message.
type Role string

// Valid message roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Agent describes a remote conversational agent.
type Agent struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitzero"`
	Model       string    `json:"model,omitzero"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

// Conversation is a message thread owned by a single agent.
type Conversation struct {
	ID        string         `json:"id"`
	AgentID   string         `json:"agentId"`
	Title     string         `json:"title,omitzero"`
	Metadata  map[string]any `json:"metadata,omitzero"`
	CreatedAt time.Time      `json:"createdAt,omitzero"`
	UpdatedAt time.Time      `json:"updatedAt,omitzero"`
}

// Message is a single turn within a conversation.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Role           Role      `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt,omitzero"`
}

// NewConversationParams are the inputs for creating a conversation.
type NewConversationParams struct {
	AgentID  string         `json:"agentId"`
	Title    string         `json:"title,omitzero"`
	Metadata map[string]any `json:"metadata,omitzero"`
}

// Validate ensures the NewConversationParams are valid.
func (p NewConversationParams) Validate() error {
	if p.AgentID == "" {
		return fmt.Errorf("agent ID cannot be empty")
	}
	return nil
}

// ChatRequest is the body of a streaming chat call. Context is a free-form
// mapping forwarded to the agent alongside the message. RuntimeParams are
// opaque key/value pairs substituted into the agent's configuration at
// execution time; the SDK neither interprets nor validates them.
type ChatRequest struct {
	Message       string         `json:"message"`
	Context       map[string]any `json:"context,omitzero"`
	RuntimeParams map[string]any `json:"runtimeParams,omitzero"`
}

// Validate ensures the ChatRequest is valid.
func (r ChatRequest) Validate() error {
	if r.Message == "" {
		return fmt.Errorf("chat message cannot be empty")
	}
	return nil
}

// ChatResponse is the aggregate result of a synchronous chat call, folded
// from the finished event stream. Content is nil when the stream produced
// no response text.
type ChatResponse struct {
	Success            bool    `json:"success"`
	Content            *string `json:"content"`
	ExecutionID        string  `json:"executionId,omitzero"`
	UserMessageID      string  `json:"userMessageId,omitzero"`
	AssistantMessageID string  `json:"assistantMessageId,omitzero"`
	DurationMs         int64   `json:"durationMs,omitzero"`
	TokensUsed         int64   `json:"tokensUsed,omitzero"`
	Error              string  `json:"error,omitzero"`
}

// AgentList is a page of agents.
type AgentList struct {
	Items      []Agent `json:"items"`
	NextCursor string  `json:"nextCursor,omitzero"`
}

// ConversationList is a page of conversations.
type ConversationList struct {
	Items      []Conversation `json:"items"`
	NextCursor string         `json:"nextCursor,omitzero"`
}

// MessageList is a page of messages.
type MessageList struct {
	Items      []Message `json:"items"`
	NextCursor string    `json:"nextCursor,omitzero"`
}
