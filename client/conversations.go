// Copyright 2025 The Agentwire Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"net/http"

	agentwire "github.com/agentwire/agentwire-go"
)

// CreateConversation starts a new conversation with an agent.
func (c *Client) CreateConversation(ctx context.Context, params agentwire.NewConversationParams) (*agentwire.Conversation, error) {
	if err := params.Validate(); err != nil {
		return nil, &ValidationError{Field: "params", Message: err.Error()}
	}

	var conv agentwire.Conversation
	if err := c.do(ctx, http.MethodPost, apiPrefix+"/conversations", params, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// GetConversation retrieves a conversation by ID.
func (c *Client) GetConversation(ctx context.Context, conversationID string) (*agentwire.Conversation, error) {
	if conversationID == "" {
		return nil, &ValidationError{Field: "conversationID", Message: "conversation ID cannot be empty"}
	}

	var conv agentwire.Conversation
	if err := c.do(ctx, http.MethodGet, apiPrefix+"/conversations/"+conversationID, nil, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// ListConversations returns a page of the caller's conversations.
func (c *Client) ListConversations(ctx context.Context, cursor string, limit int) (*agentwire.ConversationList, error) {
	var list agentwire.ConversationList
	if err := c.do(ctx, http.MethodGet, apiPrefix+"/conversations"+listQuery(cursor, limit), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// DeleteConversation deletes a conversation and its messages.
func (c *Client) DeleteConversation(ctx context.Context, conversationID string) error {
	if conversationID == "" {
		return &ValidationError{Field: "conversationID", Message: "conversation ID cannot be empty"}
	}
	return c.do(ctx, http.MethodDelete, apiPrefix+"/conversations/"+conversationID, nil, nil)
}

// ListMessages returns a page of messages within a conversation, oldest
// first.
func (c *Client) ListMessages(ctx context.Context, conversationID, cursor string, limit int) (*agentwire.MessageList, error) {
	if conversationID == "" {
		return nil, &ValidationError{Field: "conversationID", Message: "conversation ID cannot be empty"}
	}

	var list agentwire.MessageList
	path := apiPrefix + "/conversations/" + conversationID + "/messages" + listQuery(cursor, limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
