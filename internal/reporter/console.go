// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

package reporter

import (
	"fmt"
	"io"
)

// ConsoleSubscriber renders events as plain, human-readable lines. It is
// the local-terminal counterpart to CISubscriber, chosen by cmd/msrv's
// main() the same way lfreleng-actions-build-metadata-action's main()
// branches on isCI() to decide between workflow commands and plain
// stdout lines.
type ConsoleSubscriber struct {
	w       io.Writer
	verbose bool
}

// NewConsoleSubscriber constructs a ConsoleSubscriber writing to w.
// verbose additionally prints a line per Progress event and a line when
// each toolchain install starts. Meta, FetchIndex, Search, Compatibility,
// ListDep, MsrvResult and TerminateWithFailure lines are printed either
// way; NewCompatibilityCheck and CompatibilityCheckMethod are never
// printed.
func NewConsoleSubscriber(w io.Writer, verbose bool) *ConsoleSubscriber {
	return &ConsoleSubscriber{w: w, verbose: verbose}
}

// Receive implements Subscriber.
func (c *ConsoleSubscriber) Receive(e Event) {
	switch m := e.Message.(type) {
	case Meta:
		fmt.Fprintf(c.w, "msrv %s (target %s)\n", m.ToolVersion, m.Target)
	case FetchIndex:
		fmt.Fprintf(c.w, "fetching release index from %s\n", m.Source)
	case Search:
		fmt.Fprintf(c.w, "using search strategy: %s\n", m.Method)
	case Progress:
		if c.verbose {
			fmt.Fprintf(c.w, "  [%d/%d] checking %s\n", m.Iteration, m.Total, m.Current)
		}
	case SetupToolchain:
		if c.verbose && e.Scope != nil && *e.Scope == ScopeStart {
			fmt.Fprintf(c.w, "installing toolchain %s\n", m.Toolchain)
		}
	case Compatibility:
		c.printCompatibility(m)
	case ListDep:
		fmt.Fprintf(c.w, "%s: %s\n", m.Name, m.Version)
	case MsrvResult:
		c.printResult(m)
	case TerminateWithFailure:
		fmt.Fprintf(c.w, "error: %s\n", m.Message)
	}
}

func (c *ConsoleSubscriber) printCompatibility(m Compatibility) {
	if m.CompatibilityReport.Compatible {
		fmt.Fprintf(c.w, "  %s: compatible\n", m.Toolchain)
		return
	}
	if m.CompatibilityReport.Error != nil {
		fmt.Fprintf(c.w, "  %s: incompatible: %s\n", m.Toolchain, *m.CompatibilityReport.Error)
		return
	}
	fmt.Fprintf(c.w, "  %s: incompatible\n", m.Toolchain)
}

func (c *ConsoleSubscriber) printResult(m MsrvResult) {
	if !m.Success || m.Version == nil {
		fmt.Fprintf(c.w, "unable to find an MSRV for target %s within %s..%s\n",
			m.Target, m.MinimumVersion, m.MaximumVersion)
		return
	}
	fmt.Fprintf(c.w, "MSRV: %s (target %s, %s search)\n", m.Version, m.Target, m.SearchMethod)
}
