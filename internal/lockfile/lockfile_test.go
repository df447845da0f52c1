// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

package lockfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveRestoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	want := []byte("# fake lockfile contents\n")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	h, err := Save(path)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("expected lockfile to be moved aside")
	}

	if err := h.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("lockfile not restored: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSaveMissingLockfileIsNoop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	h, err := Save(path)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := h.Restore(); err != nil {
		t.Fatalf("Restore on no-op handle should not error: %v", err)
	}
}

func TestRestoreTwiceIsSafe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	h, err := Save(path)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := h.Restore(); err != nil {
		t.Fatalf("first Restore: %v", err)
	}
	if err := h.Restore(); err != nil {
		t.Fatalf("second Restore should be a no-op, got: %v", err)
	}
}
