// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

// Package orchestrator composes the release filter, search strategy, and
// reporter for the "find MSRV" flow.
package orchestrator

import (
	"github.com/rust-msrv/msrv-go/internal/check"
	"github.com/rust-msrv/msrv-go/internal/config"
	"github.com/rust-msrv/msrv-go/internal/msrverrors"
	"github.com/rust-msrv/msrv-go/internal/release"
	"github.com/rust-msrv/msrv-go/internal/reporter"
	"github.com/rust-msrv/msrv-go/internal/search"
	"github.com/rust-msrv/msrv-go/internal/version"
)

// Find runs the full "find MSRV" flow: filter the release index, select
// a strategy, drive it, and emit the terminal MsrvResult. It returns the
// found Version, or an error — UnableToFindAnyGoodVersion when every
// candidate failed its probe, EmptyReleaseSet when filtering leaves
// nothing to search, or whatever infrastructure error a probe raised.
//
// Grounded directly on original_source's subcommands/find.rs
// (find_msrv/search/run_with_search_method/run_searcher/report_outcome/
// min_max_releases), translated function-for-function: config.search_method
// selects Linear vs Bisect, and the strategy's Result is turned into an
// MsrvResult event carrying the filtered slice's min/max bounds.
func Find(cfg config.Config, index release.Index, prober check.Prober, bus *reporter.Bus) (version.Version, error) {
	filtered, err := release.Filter(index.Releases(), release.FilterOptions{
		MinimumVersion:          cfg.MinimumVersion,
		MaximumVersion:          cfg.MaximumVersion,
		IncludeAllPatchReleases: cfg.IncludeAllPatchReleases,
	})
	if err != nil {
		bus.Report(reporter.TerminateWithFailure{Message: err.Error()})
		return version.Version{}, err
	}

	strategy := selectStrategy(cfg.SearchMethod)
	bus.Report(reporter.Search{Method: string(cfg.SearchMethod)})

	candidates := toCandidates(filtered, cfg.Target)
	result, err := strategy.Find(candidates, prober, bus)
	if err != nil {
		bus.Report(reporter.TerminateWithFailure{Message: err.Error()})
		return version.Version{}, err
	}

	if err := reportOutcome(bus, result, filtered, string(cfg.SearchMethod)); err != nil {
		return version.Version{}, err
	}

	if !result.Found {
		checkCmd := checkCommandString(cfg)
		finalErr := msrverrors.UnableToFindAnyGoodVersion{Command: checkCmd}
		bus.Report(reporter.TerminateWithFailure{Message: finalErr.Error()})
		return version.Version{}, finalErr
	}

	return result.Toolchain.Version(), nil
}

func selectStrategy(method config.SearchMethod) search.Strategy {
	if method == config.SearchBisect {
		return search.Bisect{}
	}
	return search.Linear{}
}

func toCandidates(releases []release.Release, target string) []search.Candidate {
	out := make([]search.Candidate, len(releases))
	for i, r := range releases {
		out[i] = search.Candidate{Version: r.Version, Target: target}
	}
	return out
}

func reportOutcome(bus *reporter.Bus, result search.Result, filtered []release.Release, method string) error {
	min, max, err := release.MinMax(filtered)
	if err != nil {
		return err
	}

	if result.Found {
		v := result.Toolchain.Version()
		bus.Report(reporter.MsrvResult{
			Success:        true,
			Version:        &v,
			Target:         result.Toolchain.Target(),
			MinimumVersion: min,
			MaximumVersion: max,
			SearchMethod:   method,
		})
		return nil
	}

	bus.Report(reporter.MsrvResult{
		Success:        false,
		MinimumVersion: min,
		MaximumVersion: max,
	})
	return nil
}

func checkCommandString(cfg config.Config) string {
	s := ""
	for i, a := range cfg.CheckCommand {
		if i > 0 {
			s += " "
		}
		s += a
	}
	return s
}
