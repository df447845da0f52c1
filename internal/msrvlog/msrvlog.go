// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

// Package msrvlog picks the right reporter.Subscriber for the process's
// environment: a plain console renderer on a developer machine, or one
// emitting GitHub Actions workflow commands when running in CI. This is
// the one ambient-logging decision the rest of the module needs — the
// Console/CI subscribers in package reporter do the actual rendering.
//
// Grounded on lfreleng-actions-build-metadata-action's isCI() detection
// and its repeated `if isCI { action.Infof(...) } else { fmt.Printf(...) }`
// branching in cmd/build-metadata/main.go: that same branch, made once
// here instead of at every call site. Platform detection itself now
// lives in internal/environment, which recognizes more than just GitHub
// Actions.
package msrvlog

import (
	"io"

	"github.com/sethvargo/go-githubactions"

	"github.com/rust-msrv/msrv-go/internal/environment"
	"github.com/rust-msrv/msrv-go/internal/reporter"
)

// IsCI reports whether the process appears to be running under a
// recognized CI platform.
func IsCI() bool {
	return environment.IsCI()
}

// NewSubscriber returns a CISubscriber wrapping a githubactions.Action
// when running under GitHub Actions specifically, or a ConsoleSubscriber
// writing to w everywhere else (including other CI platforms, which get
// plain output rather than GitHub's workflow-command syntax).
func NewSubscriber(w io.Writer, verbose bool) reporter.Subscriber {
	if environment.DetectPlatform() == environment.PlatformGitHubActions {
		return reporter.NewCISubscriber(githubactions.New())
	}
	return reporter.NewConsoleSubscriber(w, verbose)
}
