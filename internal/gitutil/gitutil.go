// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

// Package gitutil wraps the handful of read-only git invocations
// msrv-go needs: checking a directory is a repository at all, and
// resolving a human-readable version string from its tags/commits.
//
// Grounded on lfreleng-actions-build-metadata-action's
// internal/repository.DetectRepository, which ran "git remote -v" with
// cmd.Dir set to the project path and parsed its Output(). The
// remote-URL/org/repo parsing that file built on top of that shape
// (GitHub vs. Gerrit vs. local display names) has no analogue here, so
// only the "run git in a directory, return trimmed output or an error"
// shape survives, generalized into a small reusable Run helper the
// version-resolution package builds on.
package gitutil

import (
	"os/exec"
	"strings"
)

// IsRepository reports whether dir is inside a git working tree.
func IsRepository(dir string) bool {
	return exec.Command("git", "-C", dir, "rev-parse", "--git-dir").Run() == nil
}

// Run executes `git -C dir <args...>` and returns its trimmed combined
// output, the same cmd.Dir-plus-Output shape
// lfreleng-actions-build-metadata-action used for `git remote -v`.
func Run(dir string, args ...string) (string, error) {
	cmdArgs := append([]string{"-C", dir}, args...)
	out, err := exec.Command("git", cmdArgs...).CombinedOutput()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// FetchTags best-effort fetches tags into dir, useful for CI checkouts
// that clone shallow and skip tags by default. Failures are ignored:
// callers that need a tag to exist will simply fail at the next step.
func FetchTags(dir string) {
	if !IsRepository(dir) {
		return
	}
	_, _ = Run(dir, "fetch", "--tags", "--quiet")
}
