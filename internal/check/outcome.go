// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

// Package check installs a candidate toolchain via the external
// toolchain manager and invokes the verification command under it,
// classifying the result as data (Outcome), never as an error.
package check

import "github.com/rust-msrv/msrv-go/internal/toolchain"

// Outcome is the classified result of one probe: a genuine compile/test
// failure is Failure, not an error — only infrastructure problems
// (the toolchain manager itself failing to spawn or run) are errors.
type Outcome struct {
	Toolchain    toolchain.Spec
	Compatible   bool
	ErrorMessage string // populated only when !Compatible
}

// Success builds a compatible Outcome.
func Success(t toolchain.Spec) Outcome {
	return Outcome{Toolchain: t, Compatible: true}
}

// Failure builds an incompatible Outcome carrying the captured stderr.
func Failure(t toolchain.Spec, errorMessage string) Outcome {
	return Outcome{Toolchain: t, Compatible: false, ErrorMessage: errorMessage}
}

// Prober is the capability a search strategy is polymorphic over: probe
// one toolchain and classify the result. Implemented by RustupRunner —
// kept as a narrow interface so strategies and their tests depend only
// on this, never on *RustupRunner directly.
//
// Grounded on lfreleng-actions-build-metadata-action's extractor.Extractor
// interface: a small, single-method abstraction plugged into a registry,
// generalized here to a single pluggable capability rather than a
// registry of many.
type Prober interface {
	Probe(t toolchain.Spec) (Outcome, error)
}
