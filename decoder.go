// Copyright 2025 The Agentwire Authors
// SPDX-License-Identifier: Apache-2.0

package agentwire

import (
	"bytes"
	"strings"

	"github.com/go-json-experiment/json"
)

// frameSep terminates an SSE frame: a blank line between two events.
var frameSep = []byte("\n\n")

// EventDecoder incrementally converts a raw SSE byte stream into StreamEvent
// values. It buffers partial input across Write calls, so a frame (or a
// single field line) may arrive split across any number of chunks. One
// decoder serves exactly one stream; decoders are not safe for concurrent
// use and must never be shared between streams.
type EventDecoder struct {
	buf []byte
}

// NewEventDecoder returns a decoder with an empty buffer.
func NewEventDecoder() *EventDecoder {
	return &EventDecoder{}
}

// Write appends chunk to the internal buffer and returns every event whose
// frame completed, in wire order. Frames missing an event type or carrying
// no data are dropped; malformed framing never produces an error, only
// fewer events.
func (d *EventDecoder) Write(chunk []byte) []StreamEvent {
	d.buf = append(d.buf, chunk...)

	var events []StreamEvent
	for {
		i := bytes.Index(d.buf, frameSep)
		if i < 0 {
			break
		}
		frame := d.buf[:i]
		d.buf = d.buf[i+len(frameSep):]
		if ev, ok := parseFrame(frame); ok {
			events = append(events, ev)
		}
	}
	return events
}

// Flush parses any buffered, unterminated frame left at end of input. Some
// servers omit the trailing blank line on the very last event; Flush applies
// the same frame rules to whatever remains. The buffer is consumed either way.
func (d *EventDecoder) Flush() (StreamEvent, bool) {
	frame := d.buf
	d.buf = nil
	if len(bytes.TrimSpace(frame)) == 0 {
		return StreamEvent{}, false
	}
	return parseFrame(frame)
}

// Reset discards all buffered input, returning the decoder to its initial
// state for reuse.
func (d *EventDecoder) Reset() {
	d.buf = nil
}

// parseFrame scans one frame's lines, accumulating the event type (last
// occurrence wins) and the concatenated data text. Lines other than
// "event:" and "data:" (ids, comments, unknown fields) are ignored.
func parseFrame(frame []byte) (StreamEvent, bool) {
	var typ string
	var data strings.Builder

	for _, line := range strings.Split(string(frame), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "event:"):
			typ = strings.TrimSpace(line[len("event:"):])
		case strings.HasPrefix(line, "data:"):
			data.WriteString(strings.TrimSpace(line[len("data:"):]))
		}
	}

	if typ == "" || data.Len() == 0 {
		return StreamEvent{}, false
	}

	payload := data.String()
	var fields map[string]any
	if err := json.Unmarshal([]byte(payload), &fields); err != nil || fields == nil {
		fields = map[string]any{"raw": payload}
	}
	return StreamEvent{Type: typ, Data: fields}, true
}
