// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

// Package toolchain implements ToolchainSpec: the (version, target-triple)
// pair that flows unchanged through preparation, probing, and reporting.
package toolchain

import (
	"fmt"

	"github.com/rust-msrv/msrv-go/internal/version"
)

// Spec is an immutable (version, target-triple) pair. The rustup spec
// string for it is "<version>-<target>".
type Spec struct {
	version version.Version
	target  string
}

// New constructs a Spec. Values are copied by value from here on, so
// downstream mutation of the config a caller used to build it cannot
// retroactively alter a Spec already handed to an event or a probe.
func New(v version.Version, target string) Spec {
	return Spec{version: v, target: target}
}

// Version returns the toolchain's release version.
func (s Spec) Version() version.Version {
	return s.version
}

// Target returns the toolchain's target triple.
func (s Spec) Target() string {
	return s.target
}

// String renders the rustup-style toolchain spec string.
func (s Spec) String() string {
	return fmt.Sprintf("%s-%s", s.version, s.target)
}
