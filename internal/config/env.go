// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

package config

import (
	"context"
	"strings"

	"github.com/sethvargo/go-envconfig"

	"github.com/rust-msrv/msrv-go/internal/version"
)

// envConfig mirrors Config's fields for the subset exposed as
// MSRV_-prefixed environment variables, the layer between the manifest
// and CLI flags. Bound fields are read as strings here since
// go-envconfig maps straight onto Go scalar kinds and BareVersion needs
// its own parse step.
type envConfig struct {
	Target                  string `env:"MSRV_TARGET"`
	MinimumVersion           string `env:"MSRV_MIN_VERSION"`
	MaximumVersion           string `env:"MSRV_MAX_VERSION"`
	IncludeAllPatchReleases bool   `env:"MSRV_INCLUDE_ALL_PATCHES"`
	SearchMethod             string `env:"MSRV_SEARCH_METHOD"`
	CheckCommand             string `env:"MSRV_CHECK_COMMAND"`
	CratePath                string `env:"MSRV_CRATE_PATH"`
	IgnoreLockfile           bool   `env:"MSRV_IGNORE_LOCKFILE"`
	NoCheckFeedback          bool   `env:"MSRV_NO_CHECK_FEEDBACK"`
}

// LoadEnv reads the MSRV_* environment variables into a Config.
//
// Grounded on lfreleng-actions-build-metadata-action's sethvargo/go-envconfig
// struct-tag binding style (the library is already an indirect dependency
// of its go.mod; this promotes it to a directly exercised one).
func LoadEnv(ctx context.Context) (Config, error) {
	var ec envConfig
	if err := envconfig.Process(ctx, &ec); err != nil {
		return Config{}, err
	}

	var out Config
	out.Target = ec.Target
	out.IncludeAllPatchReleases = ec.IncludeAllPatchReleases
	out.CratePath = ec.CratePath
	out.IgnoreLockfile = ec.IgnoreLockfile
	out.NoCheckFeedback = ec.NoCheckFeedback

	if ec.MinimumVersion != "" {
		bv, err := version.ParseBare(ec.MinimumVersion)
		if err != nil {
			return Config{}, err
		}
		out.MinimumVersion = &bv
	}
	if ec.MaximumVersion != "" {
		bv, err := version.ParseBare(ec.MaximumVersion)
		if err != nil {
			return Config{}, err
		}
		out.MaximumVersion = &bv
	}
	switch strings.ToLower(ec.SearchMethod) {
	case "bisect":
		out.SearchMethod = SearchBisect
	case "linear":
		out.SearchMethod = SearchLinear
	}
	if ec.CheckCommand != "" {
		out.CheckCommand = strings.Fields(ec.CheckCommand)
	}

	return out, nil
}
