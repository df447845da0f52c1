// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

// Package release narrows a fetched, newest-first release list down to
// the configured version window and patch-inclusion policy.
package release

import (
	"sort"

	"github.com/rust-msrv/msrv-go/internal/msrverrors"
	"github.com/rust-msrv/msrv-go/internal/version"
)

// Release pairs a concrete version with whatever metadata the external
// index attaches to it. The core treats Metadata as opaque.
type Release struct {
	Version  version.Version
	Metadata map[string]string
}

// Index is the read-only, newest-first release list produced once by an
// external fetcher and held for the duration of a search.
type Index struct {
	releases []Release
}

// NewIndex builds an Index from a newest-first release slice.
func NewIndex(releases []Release) Index {
	out := make([]Release, len(releases))
	copy(out, releases)
	return Index{releases: out}
}

// Releases returns the newest-first release slice.
func (i Index) Releases() []Release {
	return i.releases
}

// FilterOptions carries the subset of Config the filter consumes.
type FilterOptions struct {
	MinimumVersion          *version.BareVersion
	MaximumVersion          *version.BareVersion
	IncludeAllPatchReleases bool
}

// Filter narrows releases to the configured window, applying three rules
// in order: patch collapsing, bound exclusion, then re-assertion of
// newest-first order. It is idempotent: Filter(Filter(r)) == Filter(r),
// since collapsing an already-collapsed list and re-applying the same
// inclusive bounds changes nothing.
//
// Grounded on lfreleng-actions-build-metadata-action's
// internal/detector.DetectAllProjectTypes: sort by a priority/version
// key, then keep the first match per group — here "group" is
// (major, minor) and "first" is the highest patch, since the input is
// already newest-first.
func Filter(releases []Release, opts FilterOptions) ([]Release, error) {
	working := make([]Release, len(releases))
	copy(working, releases)

	if !opts.IncludeAllPatchReleases {
		working = latestPatchPerMinor(working)
	}

	working = applyBounds(working, opts.MinimumVersion, opts.MaximumVersion)

	// Re-assert newest-first ordering; the grouping/bounding steps above
	// preserve input order. This fixes only the output order: patch
	// collapsing has already run and keeps the first release seen per
	// (major, minor), which is the highest patch only for newest-first input.
	sort.SliceStable(working, func(i, j int) bool {
		return working[i].Version.GreaterThan(working[j].Version)
	})

	if len(working) == 0 {
		return nil, msrverrors.EmptyReleaseSet{}
	}

	return working, nil
}

// latestPatchPerMinor keeps only the first (i.e., in a newest-first list,
// the highest-patch) release seen for each (major, minor) pair.
func latestPatchPerMinor(releases []Release) []Release {
	type key struct{ major, minor uint64 }

	seen := make(map[key]bool, len(releases))
	out := make([]Release, 0, len(releases))

	for _, r := range releases {
		k := key{r.Version.Major, r.Version.Minor}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}

	return out
}

// applyBounds drops releases outside the configured inclusive window.
func applyBounds(releases []Release, min, max *version.BareVersion) []Release {
	out := make([]Release, 0, len(releases))

	for _, r := range releases {
		if min != nil && !min.LowerBoundAllows(r.Version) {
			continue
		}
		if max != nil && !max.UpperBoundAllows(r.Version) {
			continue
		}
		out = append(out, r)
	}

	return out
}

// MinMax returns the oldest and newest version in a newest-first slice,
// the way the orchestrator computes the min/max to report alongside an
// MsrvResult.
func MinMax(releases []Release) (min, max version.BareVersion, err error) {
	if len(releases) == 0 {
		return version.BareVersion{}, version.BareVersion{}, msrverrors.EmptyReleaseSet{}
	}
	return version.FromVersion(releases[len(releases)-1].Version),
		version.FromVersion(releases[0].Version),
		nil
}
