// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rust-msrv/msrv-go/internal/version"
)

func TestMergeOverridesOnlyNonZeroFields(t *testing.T) {
	base := Default()
	base.Target = "x86_64-unknown-linux-gnu"

	min := version.TwoComponent(1, 56)
	override := Config{MinimumVersion: &min}

	merged := Merge(base, override)

	assert.Equal(t, "x86_64-unknown-linux-gnu", merged.Target, "base's target should survive an override that doesn't set one")
	assert.Same(t, &min, merged.MinimumVersion)
	assert.Equal(t, SearchLinear, merged.SearchMethod, "base's search method should survive an unset override")
}

func TestMergeBoundReplacesWholesale(t *testing.T) {
	oldMin := version.TwoComponent(1, 50)
	newMin := version.TwoComponent(1, 60)

	base := Config{MinimumVersion: &oldMin}
	merged := Merge(base, Config{MinimumVersion: &newMin})

	assert.Same(t, &newMin, merged.MinimumVersion, "override's bound should replace the base's, not merge with it")
}

func TestMergeChecksCommandReplacesWholesale(t *testing.T) {
	base := Default()
	merged := Merge(base, Config{CheckCommand: []string{"cargo", "build", "--all-features"}})

	assert.Equal(t, []string{"cargo", "build", "--all-features"}, merged.CheckCommand)
}

func TestDefaultUsesLinearAndCargoCheck(t *testing.T) {
	d := Default()
	assert.Equal(t, SearchLinear, d.SearchMethod)
	assert.Equal(t, []string{"cargo", "check"}, d.CheckCommand)
}
