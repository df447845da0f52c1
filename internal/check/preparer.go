// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

package check

import (
	"context"
	"os"
	"os/exec"

	"github.com/rust-msrv/msrv-go/internal/config"
	"github.com/rust-msrv/msrv-go/internal/lockfile"
	"github.com/rust-msrv/msrv-go/internal/msrverrors"
	"github.com/rust-msrv/msrv-go/internal/reporter"
	"github.com/rust-msrv/msrv-go/internal/toolchain"
)

// Preparer installs a toolchain via the external toolchain manager
// (rustup) if absent, then displaces the lockfile when configured to
// ignore it.
//
// Grounded on original_source's RustupToolchainCheck.prepare, which
// calls ToolchainDownloader.download then, if ignore_lockfile, removes
// the lockfile outright (the move-aside/restore half lives in
// lockfile.Save/Handle.Restore, invoked by the caller around the whole
// probe, matching the Rust source's handle_wrap scoping).
type Preparer struct {
	bus       *reporter.Bus
	crateRoot string
}

// NewPreparer constructs a Preparer. crateRoot is the directory holding
// the package's lockfile.
func NewPreparer(bus *reporter.Bus, crateRoot string) *Preparer {
	return &Preparer{bus: bus, crateRoot: crateRoot}
}

// Prepare installs t via `rustup install` if not already present, then
// removes the lockfile outright if cfg.IgnoreLockfile (RustupRunner's
// earlier lockfile.Save move already leaves nothing to remove in the common
// path; this mirrors the Rust source's belt-and-suspenders removal).
func (p *Preparer) Prepare(ctx context.Context, t toolchain.Spec, cfg config.Config) error {
	start := reporter.ScopeStart
	p.bus.Publish(reporter.Event{Message: reporter.SetupToolchain{Toolchain: t}, Scope: &start})
	err := p.install(ctx, t)
	end := reporter.ScopeEnd
	p.bus.Publish(reporter.Event{Message: reporter.SetupToolchain{Toolchain: t}, Scope: &end})
	if err != nil {
		return msrverrors.RustupInstallFailed{Toolchain: t}
	}

	if cfg.IgnoreLockfile {
		if err := p.removeLockfile(); err != nil {
			return err
		}
	}

	return nil
}

func (p *Preparer) install(ctx context.Context, t toolchain.Spec) error {
	cmd := exec.CommandContext(ctx, "rustup", "install", t.String())
	return cmd.Run()
}

func (p *Preparer) removeLockfile() error {
	path := p.lockfilePath()
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return msrverrors.Io{Source: msrverrors.IoRemoveFile, Path: path, Cause: err}
	}
	if err := os.Remove(path); err != nil {
		return msrverrors.Io{Source: msrverrors.IoRemoveFile, Path: path, Cause: err}
	}
	return nil
}

func (p *Preparer) lockfilePath() string {
	return p.crateRoot + string(os.PathSeparator) + lockfile.FileName
}
