// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvReadsMSRVVariables(t *testing.T) {
	t.Setenv("MSRV_TARGET", "aarch64-apple-darwin")
	t.Setenv("MSRV_MIN_VERSION", "1.58")
	t.Setenv("MSRV_SEARCH_METHOD", "BISECT")
	t.Setenv("MSRV_CHECK_COMMAND", "cargo test --workspace")
	t.Setenv("MSRV_IGNORE_LOCKFILE", "true")

	cfg, err := LoadEnv(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "aarch64-apple-darwin", cfg.Target)
	require.NotNil(t, cfg.MinimumVersion)
	assert.Equal(t, "1.58", cfg.MinimumVersion.String())
	assert.Equal(t, SearchBisect, cfg.SearchMethod)
	assert.Equal(t, []string{"cargo", "test", "--workspace"}, cfg.CheckCommand)
	assert.True(t, cfg.IgnoreLockfile)
}

func TestLoadEnvWithoutVariablesYieldsZeroConfig(t *testing.T) {
	t.Setenv("MSRV_TARGET", "")
	t.Setenv("MSRV_MIN_VERSION", "")
	t.Setenv("MSRV_MAX_VERSION", "")
	t.Setenv("MSRV_SEARCH_METHOD", "")
	t.Setenv("MSRV_CHECK_COMMAND", "")

	cfg, err := LoadEnv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}
