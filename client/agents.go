// Copyright 2025 The Agentwire Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"net/http"

	agentwire "github.com/agentwire/agentwire-go"
)

// ListAgents returns a page of agents available to the caller. cursor is the
// NextCursor of the previous page, or "" for the first page; limit <= 0 uses
// the server default.
func (c *Client) ListAgents(ctx context.Context, cursor string, limit int) (*agentwire.AgentList, error) {
	var list agentwire.AgentList
	if err := c.do(ctx, http.MethodGet, apiPrefix+"/agents"+listQuery(cursor, limit), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetAgent retrieves a single agent by ID.
func (c *Client) GetAgent(ctx context.Context, agentID string) (*agentwire.Agent, error) {
	if agentID == "" {
		return nil, &ValidationError{Field: "agentID", Message: "agent ID cannot be empty"}
	}

	var agent agentwire.Agent
	if err := c.do(ctx, http.MethodGet, apiPrefix+"/agents/"+agentID, nil, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}
