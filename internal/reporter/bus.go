// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

package reporter

import (
	"errors"
	"sync"
)

// ErrBusClosed is returned by Publish/Report/RunScoped once Disconnect
// has been called.
var ErrBusClosed = errors.New("reporter: bus is closed")

// Subscriber receives every Event published to a Bus, in publication
// order. Implementations must not block for long, since the Bus delivers
// synchronously to all subscribers before Publish returns.
type Subscriber interface {
	Receive(Event)
}

// Bus is a push-only fan-out of Events to zero or more Subscribers. It
// is the sole channel through which the Orchestrator, Search, and Check
// packages communicate progress and results to the outside world — none
// of those packages writes to stdout/stderr directly.
//
// Grounded on lfreleng-actions-build-metadata-action's
// internal/environment detection fan-out (one signal, several interested
// readers) generalized from a single check to an ordered, growable
// subscriber list.
type Bus struct {
	mu          sync.Mutex
	subscribers []Subscriber
	closed      bool
}

// NewBus constructs an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers s to receive all events published from this point
// on. Subscribe is not retroactive: s does not see events already
// published.
func (b *Bus) Subscribe(s Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, s)
}

// Publish delivers e to every subscriber, in subscription order. Once
// Disconnect has been called, Publish delivers nothing and returns
// ErrBusClosed.
func (b *Bus) Publish(e Event) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrBusClosed
	}
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.Unlock()

	for _, s := range subs {
		s.Receive(e)
	}
	return nil
}

// Report is a convenience wrapper publishing m as a single-shot event.
func (b *Bus) Report(m Message) error {
	return b.Publish(NewEvent(m))
}

// RunScoped brackets fn with a Start event carrying m and an End event
// carrying the same m. The End event is published via defer, so it fires
// even if fn panics, not just when fn returns an error — the Bus's
// scoped-acquisition guarantee is implemented with the same
// defer-guaranteed-release shape as lockfile.Handle.Restore, never by a
// hand-written pair of calls one of which a panic could skip. This is
// the Go shape of original_source's run_scoped_event.
//
// Grounded on rustup_toolchain_check.rs's run_scoped_event, which wraps
// the whole prepare+run+report sequence of one probe so subscribers can
// render a start/stop spinner or a CI group.
func (b *Bus) RunScoped(m Message, fn func() error) error {
	start := ScopeStart
	if err := b.Publish(Event{Message: m, Scope: &start}); err != nil {
		return err
	}

	end := ScopeEnd
	defer b.Publish(Event{Message: m, Scope: &end})

	return fn()
}

// Disconnect closes the bus. Publish delivers synchronously and
// immediately with nothing buffered, so there is no queue to flush
// before close takes effect; Disconnect's only effect is that every
// subsequent Publish/Report/RunScoped call returns ErrBusClosed instead
// of reaching subscribers. Safe to call more than once.
func (b *Bus) Disconnect() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
}
