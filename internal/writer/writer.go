// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

// Package writer implements the post-search output collaborators the
// core's contract leaves external: writing a rust-toolchain.toml pin and
// recording the found MSRV back into the crate's manifest.
//
// Grounded on lfreleng-actions-build-metadata-action's
// internal/output.ArtifactUploader, which writes a metadata artifact in
// one or more formats to a directory; generalized here from "n formats
// into a fresh artifact dir" to "one fixed file written or patched in
// place", using the same yaml.v3/gopkg.in marshal-then-write idiom.
package writer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/rust-msrv/msrv-go/internal/validator"
	"github.com/rust-msrv/msrv-go/internal/version"
)

// ToolchainFileName is the file `rustup show`/CI matrices read to pin a
// toolchain for a checkout.
const ToolchainFileName = "rust-toolchain.toml"

type toolchainFile struct {
	Toolchain toolchainSection `toml:"toolchain"`
}

type toolchainSection struct {
	Channel string `toml:"channel"`
}

// WriteToolchainFile writes (or overwrites) rust-toolchain.toml at
// crateRoot pinning v as the channel.
func WriteToolchainFile(crateRoot string, v version.Version) error {
	doc := toolchainFile{Toolchain: toolchainSection{Channel: v.String()}}

	buf, err := tomlMarshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", ToolchainFileName, err)
	}

	path := filepath.Join(crateRoot, ToolchainFileName)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", ToolchainFileName, err)
	}
	return nil
}

// tomlMarshal encodes v and round-trip validates the result the same way
// validator.YAMLValidator.MarshalAndValidate does for YAML: marshal, then
// decode the output back into a fresh map and require that to succeed
// before the bytes are trusted to disk. BurntSushi/toml has no
// schema-less Unmarshal-into-interface{} the way yaml.v3 does, so the
// round-trip decodes into map[string]interface{} instead of interface{}.
func tomlMarshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	var roundTrip map[string]interface{}
	if _, err := toml.Decode(buf.String(), &roundTrip); err != nil {
		return nil, fmt.Errorf("toml round-trip validation failed: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteMSRV records v as the `package.rust-version` field of the
// Cargo.toml at crateRoot, changing only that key's value and keeping
// every other key and value as loaded. The file is re-encoded from a
// decoded map, so comments and the original key order and formatting are
// not preserved.
//
// Unlike WriteToolchainFile, the manifest load/modify/save round-trip uses
// yaml.v3's generic map decode idiom (lfreleng-actions-build-metadata-action's
// writeYAML) ported onto TOML's equivalent map[string]interface{} shape,
// so keys this tool does not model survive the rewrite.
func WriteMSRV(crateRoot string, v version.Version) error {
	path := filepath.Join(crateRoot, "Cargo.toml")

	raw := map[string]interface{}{}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	pkg, _ := raw["package"].(map[string]interface{})
	if pkg == nil {
		pkg = map[string]interface{}{}
	}
	pkg["rust-version"] = v.String()
	raw["package"] = pkg

	buf, err := tomlMarshal(raw)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// summaryDoc is the small MSRV result document written alongside the
// manifest for downstream CI steps to consume, in whichever of the two
// supported formats the caller asked for.
type summaryDoc struct {
	MSRV   string `yaml:"msrv" json:"msrv"`
	Target string `yaml:"target" json:"target"`
}

// WriteYAMLSummary writes a small yaml.v3-encoded summary of the search
// result next to the manifest — the analogue of
// lfreleng-actions-build-metadata-action's writeYAML artifact,
// repurposed from a multi-format metadata dump to a single MSRV summary
// document consumed by downstream CI steps.
//
// Marshaling goes through validator.YAMLValidator in strict mode, the
// same MarshalAndValidate round-trip
// lfreleng-actions-build-metadata-action's artifact writer runs before
// anything reaches disk.
func WriteYAMLSummary(crateRoot string, v version.Version, target string) error {
	summary := summaryDoc{MSRV: v.String(), Target: target}

	buf, err := validator.NewYAMLValidator(true).MarshalAndValidate(summary)
	if err != nil {
		return fmt.Errorf("marshal msrv summary: %w", err)
	}

	path := filepath.Join(crateRoot, "msrv-summary.yaml")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write msrv summary: %w", err)
	}
	return nil
}

// WriteJSONSummary writes the same MSRV result document as
// WriteYAMLSummary, JSON-encoded for callers that parse machine output
// rather than YAML (e.g. a downstream step that feeds the result into
// `jq`). Marshaling goes through validator.JSONValidator in strict mode,
// the JSON counterpart of the YAML round-trip above.
func WriteJSONSummary(crateRoot string, v version.Version, target string) error {
	summary := summaryDoc{MSRV: v.String(), Target: target}

	buf, err := validator.NewJSONValidator(true).MarshalAndValidate(summary)
	if err != nil {
		return fmt.Errorf("marshal msrv summary: %w", err)
	}

	path := filepath.Join(crateRoot, "msrv-summary.json")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write msrv summary: %w", err)
	}
	return nil
}
