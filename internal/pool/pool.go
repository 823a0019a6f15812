// Copyright 2025 The Agentwire Authors
// SPDX-License-Identifier: Apache-2.0

// Package pool provides strongly-typed object pooling for the scratch
// buffers used along the request and stream-aggregation paths.
package pool

import (
	"bytes"
	"strings"
	"sync"
)

// Pool is a generics wrapper around [sync.Pool] providing strongly-typed
// object pooling.
type Pool[T any] struct {
	p sync.Pool
}

// Reseter is implemented by pooled objects that can be cleared for reuse.
type Reseter interface {
	Reset()
}

// New returns a new [Pool] for T, using fn to construct new values when the
// pool is empty.
func New[T any](fn func() T) *Pool[T] {
	return &Pool[T]{
		p: sync.Pool{
			New: func() any {
				return fn()
			},
		},
	}
}

// Get gets a T from the pool, or creates a new one if the pool is empty.
func (p *Pool[T]) Get() T {
	return p.p.Get().(T)
}

// Put returns x to the pool, resetting it first when it implements Reseter.
func (p *Pool[T]) Put(x T) {
	if r, ok := any(x).(Reseter); ok {
		r.Reset()
	}
	p.p.Put(x)
}

// Buffer provides the [*bytes.Buffer] pooling objects.
var Buffer = New(func() *bytes.Buffer {
	return &bytes.Buffer{}
})

// Builder provides the [*strings.Builder] pooling objects.
var Builder = New(func() *strings.Builder {
	return &strings.Builder{}
})
