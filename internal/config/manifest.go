// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/rust-msrv/msrv-go/internal/msrverrors"
	"github.com/rust-msrv/msrv-go/internal/version"
)

// ManifestName is the well-known manifest filename searched for when
// locating a crate root.
const ManifestName = "Cargo.toml"

// cargoManifest is the subset of Cargo.toml this tool reads. Unlike
// lfreleng-actions-build-metadata-action's full extractor.CargoToml, the
// core only needs the rust-version bound — everything else in the
// manifest is opaque to it.
//
// Grounded on lfreleng-actions-build-metadata-action's
// internal/extractor/rust.CargoToml and its toml.DecodeFile-based loader.
type cargoManifest struct {
	Package struct {
		RustVersion string `toml:"rust-version"`
	} `toml:"package"`
}

// FindCrateRoot walks upward from start until a directory containing
// Cargo.toml is found, returning that directory. It fails with
// NoCrateRootFound if the filesystem root is reached first.
func FindCrateRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", msrverrors.Io{Source: msrverrors.IoRemoveFile, Path: start, Cause: err}
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ManifestName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", msrverrors.NoCrateRootFound{SearchedFrom: start}
		}
		dir = parent
	}
}

// LoadManifest reads the rust-version field, if present, out of the
// Cargo.toml at crateRoot and returns a Config with MinimumVersion set
// to it. A manifest with no rust-version field yields a zero Config: the
// manifest layer simply has nothing to contribute.
func LoadManifest(crateRoot string) (Config, error) {
	var manifest cargoManifest
	path := filepath.Join(crateRoot, ManifestName)

	if _, err := toml.DecodeFile(path, &manifest); err != nil {
		return Config{}, err
	}

	var out Config
	if manifest.Package.RustVersion != "" {
		bv, err := version.ParseBare(manifest.Package.RustVersion)
		if err != nil {
			return Config{}, err
		}
		out.MinimumVersion = &bv
	}
	return out, nil
}
