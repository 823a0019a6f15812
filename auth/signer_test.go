// Copyright 2025 The Agentwire Authors
// SPDX-License-Identifier: Apache-2.0

package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/agentwire/agentwire-go/auth"
)

func TestNewSigner(t *testing.T) {
	tests := map[string]struct {
		secret  string
		wantErr bool
	}{
		"valid secret":  {secret: "workspace-secret"},
		"empty secret":  {secret: "", wantErr: true},
		"short secret": {secret: "x"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := auth.NewSigner(tc.secret, 0)
			if tc.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSigner_SignVerify(t *testing.T) {
	signer, err := auth.NewSigner("workspace-secret", time.Minute)
	if err != nil {
		t.Fatalf("failed to create signer: %v", err)
	}

	identity := auth.Identity{
		UserID: "user-42",
		Email:  "user@example.com",
		Name:   "Test User",
	}

	token, err := signer.Sign(identity)
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}
	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Fatalf("expected a compact JWS with 3 segments, got %d", len(parts))
	}

	got, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("failed to verify: %v", err)
	}
	if diff := cmp.Diff(&identity, got); diff != "" {
		t.Errorf("identity mismatch (-want +got):\n%s", diff)
	}
}

func TestSigner_Verify_WrongSecret(t *testing.T) {
	signer, err := auth.NewSigner("workspace-secret", time.Minute)
	if err != nil {
		t.Fatalf("failed to create signer: %v", err)
	}
	other, err := auth.NewSigner("different-secret", time.Minute)
	if err != nil {
		t.Fatalf("failed to create signer: %v", err)
	}

	token, err := signer.Sign(auth.Identity{UserID: "user-42"})
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	if _, err := other.Verify(token); err == nil {
		t.Error("expected verification to fail with the wrong secret")
	}
}

func TestSigner_Verify_Expired(t *testing.T) {
	short, err := auth.NewSigner("workspace-secret", time.Nanosecond)
	if err != nil {
		t.Fatalf("failed to create signer: %v", err)
	}

	token, err := short.Sign(auth.Identity{UserID: "user-42"})
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := short.Verify(token); err == nil {
		t.Error("expected verification of an expired token to fail")
	}
}

func TestSigner_Sign_InvalidIdentity(t *testing.T) {
	signer, err := auth.NewSigner("workspace-secret", time.Minute)
	if err != nil {
		t.Fatalf("failed to create signer: %v", err)
	}

	if _, err := signer.Sign(auth.Identity{}); err == nil {
		t.Error("expected error for identity without user ID")
	}
}
