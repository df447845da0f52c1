// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

package toolversion

import "testing"

func TestResolvePrefersBuildVersion(t *testing.T) {
	got := Resolve("/nonexistent", "1.2.3")
	if got != "1.2.3" {
		t.Fatalf("got %q, want 1.2.3", got)
	}
}

func TestResolveFallsBackWithoutGit(t *testing.T) {
	got := Resolve("/nonexistent-path-for-test", "")
	if got == "" {
		t.Fatal("expected a non-empty fallback version")
	}
}
