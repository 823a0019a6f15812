// Copyright 2025 The Agentwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package auth signs end-user identity payloads for the Agentwire API.
//
// A backend holding the workspace signing secret mints a short-lived HS256
// token per end user; the Agentwire service verifies it and scopes the
// conversation to that user. The token is carried as the bearer token of
// the chat calls made on the user's behalf.
package auth

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"
)

// DefaultTokenTTL is the token lifetime used when none is configured.
const DefaultTokenTTL = time.Hour

// Identity is the end-user payload embedded in a signed token.
type Identity struct {
	// UserID identifies the end user; required.
	UserID string `json:"userId"`
	// Email is an optional display email.
	Email string `json:"email,omitzero"`
	// Name is an optional display name.
	Name string `json:"name,omitzero"`
}

// Validate ensures the Identity is valid.
func (i Identity) Validate() error {
	if i.UserID == "" {
		return fmt.Errorf("identity user ID cannot be empty")
	}
	return nil
}

// Signer signs and verifies identity tokens with a shared HMAC secret.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// NewSigner creates a Signer for the given workspace secret. ttl <= 0 uses
// DefaultTokenTTL.
func NewSigner(secret string, ttl time.Duration) (*Signer, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret cannot be empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Signer{secret: []byte(secret), ttl: ttl}, nil
}

// Sign produces a signed token for the identity, expiring after the
// configured TTL.
func (s *Signer) Sign(identity Identity) (string, error) {
	if err := identity.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	builder := jwt.NewBuilder().
		Subject(identity.UserID).
		IssuedAt(now).
		Expiration(now.Add(s.ttl))
	if identity.Email != "" {
		builder = builder.Claim("email", identity.Email)
	}
	if identity.Name != "" {
		builder = builder.Claim("name", identity.Name)
	}

	token, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), s.secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return string(signed), nil
}

// Verify checks the signature and expiry of a token and returns the
// identity it carries.
func (s *Signer) Verify(token string) (*Identity, error) {
	parsed, err := jwt.Parse([]byte(token),
		jwt.WithKey(jwa.HS256(), s.secret),
		jwt.WithValidate(true),
	)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}

	identity := &Identity{}
	if sub, ok := parsed.Subject(); ok {
		identity.UserID = sub
	}
	if identity.UserID == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	// Optional claims; absence is not an error.
	parsed.Get("email", &identity.Email)
	parsed.Get("name", &identity.Name)

	return identity, nil
}
