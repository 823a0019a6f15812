// Copyright 2025 The Agentwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package client implements the HTTP client for the Agentwire API.
//
// A Client is configured with functional options and exposes resource
// operations (agents, conversations, messages) plus three ways to consume a
// chat stream:
//
//   - ChatStream invokes a callback per decoded event as bytes arrive.
//   - Chat returns an EventStream the caller pulls with Next and must Close.
//   - ChatSync drains the stream and returns one aggregated ChatResponse.
//
// All three deliver events in the exact order their frames completed on the
// wire. Transport-level failures surface as typed errors (see errors.go);
// an in-band "error" event is a normally decoded event, not a Go error.
package client
