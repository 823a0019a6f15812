// Copyright 2025 The Agentwire Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"io"
	"sync"

	agentwire "github.com/agentwire/agentwire-go"
)

// readChunkSize is the transport read granularity. Frames are decoded as
// soon as their bytes arrive regardless of how reads fragment them.
const readChunkSize = 4096

// EventStream is a pull-style consumer of one chat stream. It is
// forward-only and finite: Next returns events in wire order until a
// terminal event or end of stream, after which ok is false. Callers that
// stop early must still call Close to release the connection; Close is
// idempotent and safe after any exit path.
//
// An EventStream is not restartable and not safe for concurrent use. Each
// stream owns its own decoder; nothing is shared between streams.
type EventStream struct {
	body   io.ReadCloser
	cancel context.CancelFunc

	dec     *agentwire.EventDecoder
	pending []agentwire.StreamEvent
	buf     []byte

	done   bool // terminal event delivered or input exhausted
	closed bool // caller released the stream
	err    error

	closeOnce sync.Once
	closeErr  error
}

func newEventStream(body io.ReadCloser, cancel context.CancelFunc) *EventStream {
	return &EventStream{
		body:   body,
		cancel: cancel,
		dec:    agentwire.NewEventDecoder(),
		buf:    make([]byte, readChunkSize),
	}
}

// Next returns the next decoded event. ok is false once the stream is
// finished; err is non-nil only for transport failures, never for in-band
// error events (those are returned as ordinary events).
func (s *EventStream) Next() (agentwire.StreamEvent, bool, error) {
	for {
		if len(s.pending) > 0 {
			ev := s.pending[0]
			s.pending = s.pending[1:]
			if ev.IsTerminal() {
				// Nothing after a terminal event is delivered, even if the
				// transport already produced more bytes.
				s.pending = nil
				s.done = true
				s.Close()
			}
			return ev, true, nil
		}

		if s.done {
			return agentwire.StreamEvent{}, false, s.err
		}
		if s.closed {
			return agentwire.StreamEvent{}, false, ErrStreamClosed
		}

		n, err := s.body.Read(s.buf)
		if n > 0 {
			s.pending = s.dec.Write(s.buf[:n])
		}
		if err != nil {
			s.done = true
			if err != io.EOF {
				s.err = &RequestError{Operation: "read stream", Err: err}
			} else if ev, ok := s.dec.Flush(); ok {
				// Tolerate a final frame without the trailing blank line.
				s.pending = append(s.pending, ev)
			}
			s.Close()
		}
	}
}

// Close releases the underlying connection. It is safe to call multiple
// times and after the stream has finished on its own.
func (s *EventStream) Close() error {
	s.closed = true
	s.closeOnce.Do(func() {
		s.closeErr = s.body.Close()
		if s.cancel != nil {
			s.cancel()
		}
	})
	return s.closeErr
}
