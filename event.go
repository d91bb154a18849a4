/*
Copyright 2026 The ChromoRing Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ccc

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event types fired by Codec when Config.Verbose is set. Named after the
// pipeline stage they bracket.
const (
	EvtCompressionStart   = 0
	EvtDecompressionStart = 1
	EvtBeforeTransform    = 2
	EvtAfterTransform     = 3
	EvtBeforeRing         = 4
	EvtAfterRing          = 5
	EvtBeforeFrame        = 6
	EvtAfterFrame         = 7
	EvtCompressionEnd     = 8
	EvtDecompressionEnd   = 9
	EvtWarning            = 10
)

// Event describes a single point in a compress or decompress call.
type Event struct {
	eventType int
	size      int64
	eventTime time.Time
	traceID   uuid.UUID
	msg       string
}

// NewEvent creates an Event carrying a human-readable message, a stage
// size and the trace ID of the Compress/Decompress call it belongs to.
func NewEvent(evtType int, msg string, size int64, traceID uuid.UUID) *Event {
	return &Event{eventType: evtType, msg: msg, size: size, eventTime: time.Now(), traceID: traceID}
}

// Type returns the event type.
func (e *Event) Type() int { return e.eventType }

// Size returns the size recorded with the event, if any.
func (e *Event) Size() int64 { return e.size }

// Time returns when the event was created.
func (e *Event) Time() time.Time { return e.eventTime }

// TraceID returns the trace ID of the Compress/Decompress call that fired
// this event, letting a caller correlate encode-side and decode-side logs
// for the same Metadata.
func (e *Event) TraceID() uuid.UUID { return e.traceID }

// String renders the event as a compact, single-line message.
func (e *Event) String() string {
	return fmt.Sprintf("[%s] %s (size=%d, trace=%s)", stageName(e.eventType), e.msg, e.size, e.traceID)
}

func stageName(t int) string {
	switch t {
	case EvtCompressionStart:
		return "compression-start"
	case EvtDecompressionStart:
		return "decompression-start"
	case EvtBeforeTransform:
		return "before-transform"
	case EvtAfterTransform:
		return "after-transform"
	case EvtBeforeRing:
		return "before-ring"
	case EvtAfterRing:
		return "after-ring"
	case EvtBeforeFrame:
		return "before-frame"
	case EvtAfterFrame:
		return "after-frame"
	case EvtCompressionEnd:
		return "compression-end"
	case EvtDecompressionEnd:
		return "decompression-end"
	case EvtWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Listener is implemented by event sinks passed via Config.Listener.
type Listener interface {
	// ProcessEvent is called whenever the codec fires an Event.
	ProcessEvent(evt *Event)
}
