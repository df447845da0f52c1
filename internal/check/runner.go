// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

package check

import (
	"context"
	"os/exec"
	"strings"

	"github.com/rust-msrv/msrv-go/internal/config"
	"github.com/rust-msrv/msrv-go/internal/lockfile"
	"github.com/rust-msrv/msrv-go/internal/msrverrors"
	"github.com/rust-msrv/msrv-go/internal/reporter"
	"github.com/rust-msrv/msrv-go/internal/toolchain"
)

// RustupRunner runs one probe on top of a Preparer: (optional lockfile
// displacement) -> prepare -> run under toolchain -> report -> restore
// lockfile, the whole sequence bracketed by a single
// NewCompatibilityCheck Start/End pair regardless of outcome. The
// lockfile path is the Preparer's, fixed by the crate root it was
// constructed with, so every probe displaces and restores the same file.
//
// Grounded directly on original_source's RustupToolchainCheck.check,
// translating run_scoped_event into Bus.RunScoped and the Rust ?-operator
// early returns into Go's err != nil checks, restoring the lockfile via
// defer so it fires on every exit path including the error ones.
type RustupRunner struct {
	bus      *reporter.Bus
	preparer *Preparer
	cfg      config.Config
	ctx      context.Context
}

// NewRustupRunner constructs a RustupRunner. cfg.CratePath, if empty,
// means the check command inherits the caller's working directory.
func NewRustupRunner(ctx context.Context, bus *reporter.Bus, preparer *Preparer, cfg config.Config) *RustupRunner {
	return &RustupRunner{bus: bus, preparer: preparer, cfg: cfg, ctx: ctx}
}

// Probe implements Prober.
func (r *RustupRunner) Probe(t toolchain.Spec) (Outcome, error) {
	var outcome Outcome
	var probeErr error

	err := r.bus.RunScoped(reporter.NewCompatibilityCheck{Toolchain: t}, func() (retErr error) {
		lockPath := r.preparer.lockfilePath()

		var handle *lockfile.Handle
		if r.cfg.IgnoreLockfile {
			h, err := lockfile.Save(lockPath)
			if err != nil {
				probeErr = err
				return err
			}
			handle = h
			// Restore failure leaves the crate's lockfile displaced, which is
			// fatal to the run regardless of how the probe itself went.
			defer func() {
				if restoreErr := handle.Restore(); restoreErr != nil {
					probeErr = restoreErr
					retErr = restoreErr
				}
			}()
		}

		if err := r.preparer.Prepare(r.ctx, t, r.cfg); err != nil {
			probeErr = err
			return err
		}

		o, err := r.runCheckCommand(t)
		if err != nil {
			probeErr = err
			return err
		}
		outcome = o

		r.reportOutcome(o)
		return nil
	})

	if err != nil && probeErr == nil {
		probeErr = err
	}
	return outcome, probeErr
}

func (r *RustupRunner) runCheckCommand(t toolchain.Spec) (Outcome, error) {
	argv := append([]string{t.String()}, r.cfg.CheckCommand...)

	r.bus.Report(reporter.CompatibilityCheckMethod{
		Toolchain: t,
		Method:    reporter.Method{Args: argv, Path: r.cfg.CratePath},
	})

	cmd := exec.CommandContext(r.ctx, "rustup", append([]string{"run"}, argv...)...)
	if r.cfg.CratePath != "" {
		cmd.Dir = r.cfg.CratePath
	}

	var stderr strings.Builder
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return Success(t), nil
	}

	if _, isExit := err.(*exec.ExitError); isExit {
		return Failure(t, stderr.String()), nil
	}

	return Outcome{}, msrverrors.UnableToRunCheck{Cause: err}
}

func (r *RustupRunner) reportOutcome(o Outcome) {
	if o.Compatible {
		r.bus.Report(reporter.CompatibleResult(o.Toolchain))
		return
	}
	if r.cfg.NoCheckFeedback {
		r.bus.Report(reporter.IncompatibleResult(o.Toolchain, nil))
		return
	}
	msg := o.ErrorMessage
	r.bus.Report(reporter.IncompatibleResult(o.Toolchain, &msg))
}
