// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

// Package environment reads the ambient process environment for the
// two facts the rest of msrv-go needs and cannot get from Config or a
// flag: which CI platform (if any) it is running under, and which Rust
// target triple this host builds for by default.
//
// Grounded on lfreleng-actions-build-metadata-action's
// internal/environment.collectCIEnvironment and GetCIPlatform: the same
// "check GITHUB_ACTIONS, then GITLAB_CI, then CIRCLECI, then TRAVIS,
// then JENKINS_HOME, then plain CI" ladder, narrowed from a full Metadata
// snapshot (runner OS/arch, setup-action detection, a map of every
// installed tool's version) down to the two values this module's Meta
// event and default Config actually consume. Host-triple resolution is
// new: lfreleng-actions-build-metadata-action never needed one since it
// never shelled out to rustup, but it reuses the same runtime.GOOS/
// GOARCH switch shape collectRuntimeEnvironment used to snapshot OS/Arch.
package environment

import "os"

// Platform identifies a recognized CI platform, or "local" off of CI.
type Platform string

const (
	PlatformGitHubActions Platform = "github"
	PlatformGitLab        Platform = "gitlab"
	PlatformCircleCI      Platform = "circleci"
	PlatformTravis        Platform = "travis"
	PlatformJenkins       Platform = "jenkins"
	PlatformUnknownCI     Platform = "unknown"
	PlatformLocal         Platform = "local"
)

// DetectPlatform identifies which CI platform (if any) the process is
// running under, checking the more specific platform variables before
// falling back to the generic CI flag most platforms also set.
func DetectPlatform() Platform {
	switch {
	case os.Getenv("GITHUB_ACTIONS") == "true":
		return PlatformGitHubActions
	case os.Getenv("GITLAB_CI") == "true":
		return PlatformGitLab
	case os.Getenv("CIRCLECI") == "true":
		return PlatformCircleCI
	case os.Getenv("TRAVIS") == "true":
		return PlatformTravis
	case os.Getenv("JENKINS_HOME") != "":
		return PlatformJenkins
	case os.Getenv("CI") == "true":
		return PlatformUnknownCI
	default:
		return PlatformLocal
	}
}

// IsCI reports whether DetectPlatform found any recognized CI platform.
func IsCI() bool {
	return DetectPlatform() != PlatformLocal
}
