// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

// Package version implements the Version and BareVersion data model:
// a semantic-version triple with total ordering, and the author-supplied
// bare form (2- or 3-component) used for human-facing bounds.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Version is a concrete (major, minor, patch) release, as produced by the
// release index. Comparison is total order by the usual component rules.
type Version struct {
	Major, Minor, Patch uint64
}

// New builds a Version from its three components.
func New(major, minor, patch uint64) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Parse reads a "major.minor.patch" string into a Version.
func Parse(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("version %q is not a 3-component version", s)
	}

	nums := make([]uint64, 3)
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("version %q: component %q is not numeric: %w", s, p, err)
		}
		nums[i] = n
	}

	return New(nums[0], nums[1], nums[2]), nil
}

// String renders "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// vstring renders the version with the leading "v" golang.org/x/mod/semver
// requires of its inputs.
func (v Version) vstring() string {
	return "v" + v.String()
}

// Compare returns -1, 0, or 1 as v is less than, equal to, or greater than
// other, using golang.org/x/mod/semver for the actual comparison.
func (v Version) Compare(other Version) int {
	return semver.Compare(v.vstring(), other.vstring())
}

// LessThan reports whether v orders strictly before other.
func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

// GreaterThan reports whether v orders strictly after other.
func (v Version) GreaterThan(other Version) bool {
	return v.Compare(other) > 0
}

// Equal reports whether v and other denote the same release.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// BareVersion is an author-supplied version that may omit the patch
// component. It is used for human-facing bounds (--min, --max, manifest
// rust-version keys) and is compared against concrete Versions through
// LowerBoundAllows and UpperBoundAllows.
type BareVersion struct {
	Major, Minor uint64
	Patch        *uint64 // nil for a 2-component bare version
}

// TwoComponent constructs a bare version with no patch component.
func TwoComponent(major, minor uint64) BareVersion {
	return BareVersion{Major: major, Minor: minor}
}

// ThreeComponent constructs a bare version with an explicit patch component.
func ThreeComponent(major, minor, patch uint64) BareVersion {
	p := patch
	return BareVersion{Major: major, Minor: minor, Patch: &p}
}

// ParseBare reads a "major.minor" or "major.minor.patch" string.
func ParseBare(s string) (BareVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return BareVersion{}, fmt.Errorf("version %q must have 2 or 3 components", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return BareVersion{}, fmt.Errorf("version %q: bad major component: %w", s, err)
	}
	minor, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return BareVersion{}, fmt.Errorf("version %q: bad minor component: %w", s, err)
	}

	if len(parts) == 2 {
		return TwoComponent(major, minor), nil
	}

	patch, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return BareVersion{}, fmt.Errorf("version %q: bad patch component: %w", s, err)
	}
	return ThreeComponent(major, minor, patch), nil
}

// String renders the bare version in whichever form it was constructed.
func (b BareVersion) String() string {
	if b.Patch == nil {
		return fmt.Sprintf("%d.%d", b.Major, b.Minor)
	}
	return fmt.Sprintf("%d.%d.%d", b.Major, b.Minor, *b.Patch)
}

// FromVersion converts a concrete Version into its three-component bare form.
func FromVersion(v Version) BareVersion {
	return ThreeComponent(v.Major, v.Minor, v.Patch)
}

// LowerBound returns the Version this bare version denotes when used as an
// inclusive lower bound: a missing patch component is treated as 0.
func (b BareVersion) LowerBound() Version {
	if b.Patch == nil {
		return New(b.Major, b.Minor, 0)
	}
	return New(b.Major, b.Minor, *b.Patch)
}

// UpperBoundAllows reports whether v satisfies this bare version used as an
// inclusive upper bound: a missing patch component allows any patch of the
// same (major, minor), i.e. the bound's patch is treated as +Inf.
func (b BareVersion) UpperBoundAllows(v Version) bool {
	if b.Patch == nil {
		return v.Major < b.Major || (v.Major == b.Major && v.Minor <= b.Minor)
	}
	return !v.GreaterThan(New(b.Major, b.Minor, *b.Patch))
}

// LowerBoundAllows reports whether v satisfies this bare version used as an
// inclusive lower bound.
func (b BareVersion) LowerBoundAllows(v Version) bool {
	return !v.LessThan(b.LowerBound())
}
