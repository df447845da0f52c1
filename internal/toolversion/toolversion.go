// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

// Package toolversion resolves this tool's own version string for the
// Meta event emitted at the start of a run, falling back through git
// tags and commit hashes the same way a release build stamps its
// version when no build-time ldflags were supplied.
//
// Adapted from lfreleng-actions-build-metadata-action's internal/version
// (client.go): that file's multi-language project-version extraction
// (Python/JS/Java/Go/Rust detectors dispatched by project type) served a
// different problem this module does not have — reporting the version
// of an arbitrary scanned project. Only its git-tag/commit fallback
// (extractFromGit, ensureTagsAreFetched, GetLatestGitTag) is relevant
// here, repurposed to resolve msrv-go's own build version instead of a
// target project's,
// and now built on top of the gitutil helper shared with the rest of
// the module instead of its own raw exec.Command calls.
package toolversion

import (
	"fmt"
	"strings"

	"github.com/rust-msrv/msrv-go/internal/gitutil"
)

// Fallback is reported when no version can be resolved at all (no git
// repository, and no build-time override).
const Fallback = "0.0.0-unknown"

// Resolve returns buildVersion if non-empty (the value a release build
// stamps in via -ldflags), otherwise falls back to `git describe` in
// repoPath, then to a short commit hash, then to Fallback.
func Resolve(repoPath, buildVersion string) string {
	if buildVersion != "" {
		return buildVersion
	}

	gitutil.FetchTags(repoPath)

	if tag, err := gitutil.Run(repoPath, "describe", "--tags", "--abbrev=0"); err == nil {
		return strings.TrimPrefix(tag, "v")
	}

	if sha, err := gitutil.Run(repoPath, "rev-parse", "--short", "HEAD"); err == nil {
		return fmt.Sprintf("0.0.0-dev+%s", sha)
	}

	return Fallback
}
