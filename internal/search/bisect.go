// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

package search

import (
	"github.com/rust-msrv/msrv-go/internal/check"
	"github.com/rust-msrv/msrv-go/internal/reporter"
)

// Bisect assumes compatibility is monotone across candidates: in the
// newest-first slice there is a boundary index k such that every index
// below k (newer releases) is Compatible and every index at or above k
// (older releases) is Incompatible. The MSRV is therefore the release at
// index k-1, the largest (oldest) index that still probes Success.
//
// Grounded on original_source's search_methods::Bisect design notes
// referenced from subcommands/find.rs. This implementation tracks the
// best-known-success index directly and always advances lo past mid on
// success or hi past mid on failure, which sidesteps the classic
// hi-lo==1 infinite loop without needing a ceiling-vs-floor mid
// tie-break.
type Bisect struct{}

// Find implements Strategy.
func (Bisect) Find(candidates []Candidate, prober check.Prober, bus *reporter.Bus) (Result, error) {
	total := len(candidates)
	if total == 0 {
		return NoCompatibleToolchains(), nil
	}

	lo, hi := 0, total-1
	bestSuccess := -1
	iteration := 0

	for lo <= hi {
		mid := lo + (hi-lo)/2
		c := candidates[mid]
		iteration++
		reportProgress(bus, c, iteration, total)

		outcome, err := prober.Probe(toolchainSpec(c))
		if err != nil {
			return Result{}, err
		}

		if outcome.Compatible {
			bestSuccess = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	if bestSuccess == -1 {
		return NoCompatibleToolchains(), nil
	}
	return Capable(toolchainSpec(candidates[bestSuccess])), nil
}
