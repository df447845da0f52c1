// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

// Package search implements the search strategies: given a newest-first
// candidate slice and a Prober, find the oldest compatible toolchain.
// Two strategies share the same contract — Linear probes every release
// oldest-first and stops at the first Success; Bisect probes O(log n)
// releases assuming compatibility is monotone in version order.
package search

import (
	"github.com/rust-msrv/msrv-go/internal/check"
	"github.com/rust-msrv/msrv-go/internal/reporter"
	"github.com/rust-msrv/msrv-go/internal/toolchain"
	"github.com/rust-msrv/msrv-go/internal/version"
)

// Result is the decision a strategy reaches: either the oldest capable
// toolchain, or a report that none of the candidates were compatible.
type Result struct {
	Found     bool
	Toolchain toolchain.Spec
}

// Capable builds a found Result.
func Capable(t toolchain.Spec) Result {
	return Result{Found: true, Toolchain: t}
}

// NoCompatibleToolchains builds a not-found Result.
func NoCompatibleToolchains() Result {
	return Result{}
}

// Candidate pairs a release version with the target it will be probed
// against, the minimal unit a Strategy iterates over.
type Candidate struct {
	Version version.Version
	Target  string
}

// Strategy is the capability a caller selects between Linear and Bisect.
// Both are polymorphic over Prober, never over a concrete Check type —
// tests substitute a deterministic predicate.
//
// Grounded on lfreleng-actions-build-metadata-action's extractor.Extractor
// interface/Registry pattern: a small interface with interchangeable
// concrete implementations, no inheritance.
type Strategy interface {
	Find(candidates []Candidate, prober check.Prober, bus *reporter.Bus) (Result, error)
}

func toolchainSpec(c Candidate) toolchain.Spec {
	return toolchain.New(c.Version, c.Target)
}

func reportProgress(bus *reporter.Bus, c Candidate, iteration, total int) {
	bus.Report(reporter.Progress{Current: c.Version, Total: total, Iteration: iteration})
}
