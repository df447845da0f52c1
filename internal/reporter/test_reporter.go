// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

package reporter

import "sync"

// TestReporter is an in-memory Subscriber for assertions in package tests
// across this module: it records every Event it receives in order and
// exposes simple accessors instead of requiring callers to parse log text.
type TestReporter struct {
	mu     sync.Mutex
	events []Event
}

// NewTestReporter constructs an empty TestReporter.
func NewTestReporter() *TestReporter {
	return &TestReporter{}
}

// Receive implements Subscriber.
func (t *TestReporter) Receive(e Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, e)
}

// Events returns a copy of every event received so far, in order.
func (t *TestReporter) Events() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Kinds returns the Kind of every event received so far, in order —
// convenient for asserting on event sequencing without matching payloads.
func (t *TestReporter) Kinds() []Kind {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Kind, len(t.events))
	for i, e := range t.events {
		out[i] = e.Message.Kind()
	}
	return out
}

// Last returns the most recently received event matching kind, and
// whether one was found.
func (t *TestReporter) Last(kind Kind) (Event, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := len(t.events) - 1; i >= 0; i-- {
		if t.events[i].Message.Kind() == kind {
			return t.events[i], true
		}
	}
	return Event{}, false
}
