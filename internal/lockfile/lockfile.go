// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

// Package lockfile implements the Cargo.lock displacement used while
// probing a candidate toolchain with --ignore-lockfile: the lockfile is
// renamed aside before the probe runs and restored afterward on every
// exit path, successful or not.
package lockfile

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/rust-msrv/msrv-go/internal/msrverrors"
)

// FileName is the manifest lockfile name searched for in the crate root.
const FileName = "Cargo.lock"

const shadowCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
const shadowSuffixLen = 8

// Handle tracks a lockfile that has been moved aside so it can be moved
// back later. A zero Handle (no lockfile present, or displacement not
// requested) is safe to Restore: Restore is then a no-op.
//
// Grounded on original_source's LockfileHandler (move_lockfile /
// move_lockfile_back, referenced from check/rustup_toolchain_check.rs)
// and on lfreleng-actions-build-metadata-action's generateSuffix in
// internal/output/artifact.go, adapted here to produce a
// collision-resistant shadow path instead of an artifact-directory
// suffix.
type Handle struct {
	original string
	shadow   string
	moved    bool
}

// Save moves the lockfile at path aside if it exists, returning a Handle
// whose Restore moves it back. If path does not exist, Save returns a
// Handle that does nothing on Restore — callers never need to branch on
// "was there a lockfile to move".
func Save(path string) (*Handle, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Handle{original: path}, nil
		}
		return nil, msrverrors.Io{Source: msrverrors.IoRemoveFile, Path: path, Cause: err}
	}
	if info.IsDir() {
		return nil, msrverrors.Io{Source: msrverrors.IoRemoveFile, Path: path, Cause: fmt.Errorf("is a directory")}
	}

	shadow, err := shadowPath(path)
	if err != nil {
		return nil, msrverrors.Io{Source: msrverrors.IoRenameFile, Path: path, Cause: err}
	}

	if err := os.Rename(path, shadow); err != nil {
		return nil, msrverrors.Io{Source: msrverrors.IoRenameFile, Path: path, Cause: err}
	}

	return &Handle{original: path, shadow: shadow, moved: true}, nil
}

// Restore moves the lockfile back to its original path. Calls after the
// first successful one are no-ops, and it is safe to call on a Handle
// that never moved anything. Callers invoke it via defer immediately after a successful
// Save so it runs on every exit path out of the probe, including a
// panic recovered higher up the call stack.
func (h *Handle) Restore() error {
	if h == nil || !h.moved {
		return nil
	}
	if err := os.Rename(h.shadow, h.original); err != nil {
		return msrverrors.Io{Source: msrverrors.IoRenameFile, Path: h.shadow, Cause: err}
	}
	h.moved = false
	return nil
}

// shadowPath generates path + a random suffix unlikely to collide with
// anything a concurrent probe or a leftover interrupted run might have
// created.
func shadowPath(path string) (string, error) {
	suffix := make([]byte, shadowSuffixLen)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}
	for i := range suffix {
		suffix[i] = shadowCharset[int(suffix[i])%len(shadowCharset)]
	}
	return fmt.Sprintf("%s.msrv-%s", path, suffix), nil
}
