// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
}

func TestFindCrateRootWalksUpward(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ManifestName, "[package]\nname = \"demo\"\n")

	nested := filepath.Join(root, "src", "bin")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := FindCrateRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestFindCrateRootErrorsAtFilesystemRoot(t *testing.T) {
	_, err := FindCrateRoot(t.TempDir())
	assert.Error(t, err, "a directory with no Cargo.toml anywhere above it should fail")
}

func TestLoadManifestReadsRustVersion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ManifestName, "[package]\nname = \"demo\"\nrust-version = \"1.60\"\n")

	cfg, err := LoadManifest(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.MinimumVersion)
	assert.Equal(t, "1.60", cfg.MinimumVersion.String())
}

func TestLoadManifestWithoutRustVersionYieldsZeroConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ManifestName, "[package]\nname = \"demo\"\n")

	cfg, err := LoadManifest(dir)
	require.NoError(t, err)
	assert.Nil(t, cfg.MinimumVersion)
}
