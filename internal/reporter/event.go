// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

// Package reporter implements a typed, structured event bus: single-shot
// messages and nested start/end scopes, fanned out to one or more
// subscribers in strict publication order.
package reporter

import (
	"github.com/rust-msrv/msrv-go/internal/toolchain"
	"github.com/rust-msrv/msrv-go/internal/version"
)

// Kind is the closed set of message tags an event can carry.
type Kind string

const (
	KindMeta                   Kind = "meta"
	KindFetchIndex              Kind = "fetch_index"
	KindSetupToolchain           Kind = "setup_toolchain"
	KindNewCompatibilityCheck    Kind = "new_compatibility_check"
	KindCompatibilityCheckMethod Kind = "compatibility_check_method"
	KindCompatibility            Kind = "compatibility"
	KindProgress                 Kind = "progress"
	KindSearch                   Kind = "search"
	KindMsrvResult               Kind = "msrv_result"
	KindListDep                  Kind = "list_dep"
	KindCheckToolchain           Kind = "check_toolchain"
	KindTerminateWithFailure     Kind = "terminate_with_failure"
)

// Scope marks an event as the start or end of a bracketed region of work.
type Scope string

const (
	ScopeStart Scope = "start"
	ScopeEnd   Scope = "end"
)

// Message is anything that can be turned into an Event. Each concrete
// message type in this package implements it.
type Message interface {
	Kind() Kind
}

// Event is a single item on the bus: a message payload plus an optional
// scope marker. A message with no scope is a single-shot event.
type Event struct {
	Message Message
	Scope   *Scope
}

// NewEvent wraps a message as a single-shot event.
func NewEvent(m Message) Event {
	return Event{Message: m}
}

// withScope returns a copy of e carrying the given scope.
func (e Event) withScope(s Scope) Event {
	return Event{Message: e.Message, Scope: &s}
}

// IsScopeStart reports whether this is a Start-scoped event, or a
// single-shot event (treated as "not inside a scope boundary").
func (e Event) IsScopeStart() bool {
	return e.Scope == nil || *e.Scope == ScopeStart
}

// --- concrete messages ---

// Meta is emitted once at the start of a run: tool version and target.
type Meta struct {
	ToolVersion string
	Target      string
}

func (Meta) Kind() Kind { return KindMeta }

// FetchIndex is emitted immediately before the (out-of-scope) release
// index fetcher is invoked.
type FetchIndex struct {
	Source string
}

func (FetchIndex) Kind() Kind { return KindFetchIndex }

// SetupToolchain brackets installing a toolchain via the external
// toolchain manager.
type SetupToolchain struct {
	Toolchain toolchain.Spec
}

func (SetupToolchain) Kind() Kind { return KindSetupToolchain }

// NewCompatibilityCheck brackets one probe: prepare + run + report.
// original_source calls this message CheckToolchain; the wire tag here
// is new_compatibility_check. Both names refer to the same bracket.
type NewCompatibilityCheck struct {
	Toolchain toolchain.Spec
}

func (NewCompatibilityCheck) Kind() Kind { return KindNewCompatibilityCheck }

// Method describes how a compatibility check was performed.
type Method struct {
	Args []string
	Path string // empty when the check ran in the inherited working directory
}

// CompatibilityCheckMethod is emitted right before invoking the
// toolchain manager's run-under-toolchain sub-command.
type CompatibilityCheckMethod struct {
	Toolchain toolchain.Spec
	Method    Method
}

func (CompatibilityCheckMethod) Kind() Kind { return KindCompatibilityCheckMethod }

// CompatibilityReport is isomorphic to Outcome but consumed by the event
// layer: Compatible, or Incompatible with an optional captured error.
type CompatibilityReport struct {
	Compatible bool
	Error      *string // nil when Compatible, or when no_check_feedback suppressed it
}

// Compatibility reports the classified outcome of one probe.
type Compatibility struct {
	Toolchain            toolchain.Spec
	CompatibilityReport CompatibilityReport
}

func (Compatibility) Kind() Kind { return KindCompatibility }

// CompatibleResult builds a Compatibility event for a successful probe.
func CompatibleResult(t toolchain.Spec) Compatibility {
	return Compatibility{Toolchain: t, CompatibilityReport: CompatibilityReport{Compatible: true}}
}

// IncompatibleResult builds a Compatibility event for a failed probe.
// err is nil when no_check_feedback suppressed stderr capture.
func IncompatibleResult(t toolchain.Spec, err *string) Compatibility {
	return Compatibility{Toolchain: t, CompatibilityReport: CompatibilityReport{Compatible: false, Error: err}}
}

// Progress reports strategy advancement through the candidate slice.
type Progress struct {
	Current   version.Version
	Total     int
	Iteration int // 1-based, local to this run
}

func (Progress) Kind() Kind { return KindProgress }

// Search announces which strategy was selected for a run.
type Search struct {
	Method string
}

func (Search) Kind() Kind { return KindSearch }

// MsrvResult is the terminal event of a find run.
type MsrvResult struct {
	Success        bool
	Version        *version.Version
	Target         string
	MinimumVersion version.BareVersion
	MaximumVersion version.BareVersion
	SearchMethod   string
}

func (MsrvResult) Kind() Kind { return KindMsrvResult }

// ListDep reports the MSRV declared by one dependency (the sibling `list`
// subcommand's payload; the core only ever constructs this as a pass-through
// value for that out-of-scope collaborator).
type ListDep struct {
	Name    string
	Version string
}

func (ListDep) Kind() Kind { return KindListDep }

// CheckToolchain is a type alias for NewCompatibilityCheck, kept so
// original_source's name is available; being the same type, its Kind tag
// is new_compatibility_check — see NewCompatibilityCheck's doc comment.
type CheckToolchain = NewCompatibilityCheck

// TerminateWithFailure reports an unrecoverable top-level error.
type TerminateWithFailure struct {
	Message string
}

func (TerminateWithFailure) Kind() Kind { return KindTerminateWithFailure }
