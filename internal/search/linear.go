// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

package search

import (
	"github.com/rust-msrv/msrv-go/internal/check"
	"github.com/rust-msrv/msrv-go/internal/reporter"
)

// Linear walks candidates oldest-to-newest and returns the first Success.
//
// Grounded on original_source's search_methods::Linear (referenced from
// subcommands/find.rs's run_with_search_method), generalized to Go's
// Prober interface.
type Linear struct{}

// Find implements Strategy.
func (Linear) Find(candidates []Candidate, prober check.Prober, bus *reporter.Bus) (Result, error) {
	total := len(candidates)

	for i := total - 1; i >= 0; i-- {
		c := candidates[i]
		iteration := total - i
		reportProgress(bus, c, iteration, total)

		outcome, err := prober.Probe(toolchainSpec(c))
		if err != nil {
			return Result{}, err
		}
		if outcome.Compatible {
			return Capable(toolchainSpec(c)), nil
		}
	}

	return NoCompatibleToolchains(), nil
}
