// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

// Package msrverrors implements a closed set of typed errors
// distinguishing infrastructure failure (fatal, aborts the search) from
// genuine incompatibility (not an error, reported as data via the event
// bus instead).
package msrverrors

import (
	"fmt"

	"github.com/rust-msrv/msrv-go/internal/toolchain"
)

// IoErrorSource names the filesystem/process operation an Io error
// occurred during, mirroring original_source/src/errors.rs's IoErrorSource.
type IoErrorSource int

const (
	IoRemoveFile IoErrorSource = iota
	IoRenameFile
	IoSpawnProcess
	IoWaitForProcess
)

func (s IoErrorSource) String() string {
	switch s {
	case IoRemoveFile:
		return "unable to remove file"
	case IoRenameFile:
		return "unable to rename file"
	case IoSpawnProcess:
		return "unable to spawn process"
	case IoWaitForProcess:
		return "unable to collect output from process, or process did not terminate properly"
	default:
		return "unknown IO operation"
	}
}

// EmptyReleaseSet reports that release filtering narrowed the release
// index down to nothing.
type EmptyReleaseSet struct{}

func (EmptyReleaseSet) Error() string {
	return "no rust releases matched the configured version window and include/exclude set"
}

// RustupInstallFailed reports that installing a candidate toolchain via
// the external toolchain manager failed.
type RustupInstallFailed struct {
	Toolchain toolchain.Spec
}

func (e RustupInstallFailed) Error() string {
	return fmt.Sprintf("unable to install toolchain with `rustup install %s`", e.Toolchain)
}

// UnableToRunCheck reports that the check-runner subprocess could not be
// spawned or waited on at all — distinct from the subprocess running and
// exiting non-zero, which is a Failure outcome, not an error.
type UnableToRunCheck struct {
	Cause error
}

func (e UnableToRunCheck) Error() string {
	msg := "unable to run the checking command"
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg + ". If --check <cmd> is specified, try to verify you can run the cmd manually."
}

func (e UnableToRunCheck) Unwrap() error { return e.Cause }

// Io wraps a filesystem or process-management failure with the operation
// and path it occurred on.
type Io struct {
	Source IoErrorSource
	Path   string
	Cause  error
}

func (e Io) Error() string {
	return fmt.Sprintf("IO error: '%s'. path: '%s'. caused by: '%v'", e.Source, e.Path, e.Cause)
}

func (e Io) Unwrap() error { return e.Cause }

// NoCrateRootFound reports that no manifest was found by walking upward
// from the configured path.
type NoCrateRootFound struct {
	SearchedFrom string
}

func (e NoCrateRootFound) Error() string {
	return fmt.Sprintf("no crate root found searching upward from '%s' — check --path", e.SearchedFrom)
}

// UnableToFindAnyGoodVersion reports that every candidate in the filtered
// release slice failed its probe. Command carries the exact check command
// string so the user can reproduce the failure manually.
type UnableToFindAnyGoodVersion struct {
	Command string
}

func (e UnableToFindAnyGoodVersion) Error() string {
	return fmt.Sprintf(`unable to find a Minimum Supported Rust Version (MSRV)

If you think this result is erroneous, please run: %q manually.

If the above does succeed, or you think this tool erred in another way,
please feel free to report the issue upstream.`, e.Command)
}

// RustupRunFailed reports a non-spawn failure while invoking the
// toolchain manager's "run under toolchain" sub-command (used only when
// the caller wants a generic, non-Outcome-carrying error, e.g. around the
// whole check() call).
type RustupRunFailed struct {
	Toolchain toolchain.Spec
}

func (e RustupRunFailed) Error() string {
	return fmt.Sprintf("check toolchain (with `rustup run %s <command>`) failed", e.Toolchain)
}
