// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

package release

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/rust-msrv/msrv-go/internal/version"
)

// indexSource is the channel manifest the current stable release number
// is read from. The Filter/Index types in this package treat the result
// as an ordinary fetched Index — fetching itself is the one piece of the
// Release Filter's input the core specification calls an external
// collaborator, specified only at its interface.
const indexSource = "https://static.rust-lang.org/dist/channel-rust-stable.toml"

var stableVersionPattern = regexp.MustCompile(`^(\d+)\.(\d+)`)

// HistoryWindow is how many preceding minor releases are synthesized
// below the detected current stable, standing in for a full release
// history fetch.
const HistoryWindow = 40

// Fetch builds a newest-first Index: the current stable minor release,
// resolved from indexSource, followed by HistoryWindow preceding minor
// releases at patch 0 (Rust's release history has no gaps; the exact
// historical patch count of each older minor isn't needed by the
// search — the Release Filter only ever compares minors once
// include_all_patch_releases collapses to one entry per minor, and
// bounds comparison cares only about major.minor.patch values already
// present in the slice).
//
// Grounded on lfreleng-actions-build-metadata-action's
// internal/extractor/rust.fetchRustVersions: same endpoint, same TOML
// decode of pkg.rust.version and same regexp-extracted (major, minor)
// pair, generalized from "stable ± a few versions for a CI matrix" to
// "stable and every minor behind it the search might need". There is no
// static fallback: a failed fetch is returned as an error.
func Fetch(ctx context.Context) (Index, error) {
	major, minor, err := fetchCurrentStable(ctx)
	if err != nil {
		return Index{}, err
	}

	releases := make([]Release, 0, HistoryWindow+1)
	for i := 0; i <= HistoryWindow && int(minor)-i >= 0; i++ {
		releases = append(releases, Release{Version: version.New(major, minor-uint64(i), 0)})
	}

	return NewIndex(releases), nil
}

func fetchCurrentStable(ctx context.Context) (major, minor uint64, err error) {
	client := &http.Client{Timeout: 5 * time.Second}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, indexSource, nil)
	if err != nil {
		return 0, 0, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("fetch release index: status %d", resp.StatusCode)
	}

	var data map[string]interface{}
	if _, err := toml.DecodeReader(resp.Body, &data); err != nil {
		return 0, 0, err
	}

	pkg, _ := data["pkg"].(map[string]interface{})
	rust, _ := pkg["rust"].(map[string]interface{})
	versionStr, _ := rust["version"].(string)

	matches := stableVersionPattern.FindStringSubmatch(versionStr)
	if len(matches) != 3 {
		return 0, 0, fmt.Errorf("could not parse stable version out of %q", versionStr)
	}

	var major64, minor64 uint64
	if _, err := fmt.Sscanf(matches[1], "%d", &major64); err != nil {
		return 0, 0, err
	}
	if _, err := fmt.Sscanf(matches[2], "%d", &minor64); err != nil {
		return 0, 0, err
	}
	return major64, minor64, nil
}
