// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

// Package config assembles the Config the core consumes from four
// layers, lowest to highest precedence: the Cargo.toml manifest's
// declared rust-version/MSRV metadata, an optional msrv.hcl declarative
// config, process environment variables, and CLI flags. Each layer only
// overrides fields it actually sets.
package config

import (
	"github.com/rust-msrv/msrv-go/internal/version"
)

// SearchMethod selects the search strategy.
type SearchMethod string

const (
	SearchLinear SearchMethod = "linear"
	SearchBisect SearchMethod = "bisect"
)

// Config holds every option the core consumes.
type Config struct {
	Target                  string
	MinimumVersion          *version.BareVersion
	MaximumVersion          *version.BareVersion
	IncludeAllPatchReleases bool
	SearchMethod            SearchMethod
	CheckCommand            []string
	CratePath               string
	IgnoreLockfile          bool
	NoCheckFeedback         bool
}

// Default returns the baseline Config before any layer is applied: host
// target left empty (resolved by the caller), no bounds, latest patch
// only, Linear search, `cargo check` as the default verification command.
func Default() Config {
	return Config{
		SearchMethod:  SearchLinear,
		CheckCommand:  []string{"cargo", "check"},
	}
}

// Merge layers override onto base: any field override sets non-zero
// replaces base's value. Pointer bound fields replace wholesale rather
// than merging component-wise, since a layer that states a bound means
// it in full.
func Merge(base, override Config) Config {
	out := base

	if override.Target != "" {
		out.Target = override.Target
	}
	if override.MinimumVersion != nil {
		out.MinimumVersion = override.MinimumVersion
	}
	if override.MaximumVersion != nil {
		out.MaximumVersion = override.MaximumVersion
	}
	if override.IncludeAllPatchReleases {
		out.IncludeAllPatchReleases = override.IncludeAllPatchReleases
	}
	if override.SearchMethod != "" {
		out.SearchMethod = override.SearchMethod
	}
	if len(override.CheckCommand) > 0 {
		out.CheckCommand = override.CheckCommand
	}
	if override.CratePath != "" {
		out.CratePath = override.CratePath
	}
	if override.IgnoreLockfile {
		out.IgnoreLockfile = override.IgnoreLockfile
	}
	if override.NoCheckFeedback {
		out.NoCheckFeedback = override.NoCheckFeedback
	}

	return out
}
