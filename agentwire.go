// Copyright 2025 The Agentwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package agentwire provides Go types for the Agentwire conversational-agent
// HTTP API: the resource model (agents, conversations, messages), the chat
// streaming event model, and the incremental SSE event decoder shared by
// every stream consumer.
//
// The HTTP client lives in the client subpackage; end-user identity token
// signing lives in the auth subpackage.
package agentwire

// Version is the SDK version reported in the User-Agent header.
const Version = "0.1.0"
