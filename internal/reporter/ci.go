// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

package reporter

import (
	"fmt"

	"github.com/sethvargo/go-githubactions"
)

// CISubscriber renders events as GitHub Actions workflow commands: groups
// for scoped brackets, plain info log lines and ::warning/::error
// annotations for results, and an output variable carrying the final MSRV
// for downstream steps.
//
// Grounded on lfreleng-actions-build-metadata-action's main() CI branch,
// which calls action.Infof / action.Warningf / action.Fatalf and
// setOutput instead of printing to stdout directly.
type CISubscriber struct {
	action *githubactions.Action
}

// NewCISubscriber constructs a CISubscriber. action is nil-safe to
// construct with githubactions.New() by the caller so tests can supply a
// fake getenv/Writer pair via githubactions.WithGetenv/WithWriter.
func NewCISubscriber(action *githubactions.Action) *CISubscriber {
	return &CISubscriber{action: action}
}

// Receive implements Subscriber.
func (c *CISubscriber) Receive(e Event) {
	switch m := e.Message.(type) {
	case Meta:
		c.action.Infof("msrv %s (target %s)", m.ToolVersion, m.Target)
	case FetchIndex:
		c.action.Infof("fetching release index from %s", m.Source)
	case Search:
		c.action.Infof("using search strategy: %s", m.Method)
	case SetupToolchain:
		c.groupBracket(e, fmt.Sprintf("install toolchain %s", m.Toolchain))
	case NewCompatibilityCheck:
		c.groupBracket(e, fmt.Sprintf("check toolchain %s", m.Toolchain))
	case Compatibility:
		c.reportCompatibility(m)
	case ListDep:
		c.action.Infof("%s: %s", m.Name, m.Version)
	case MsrvResult:
		c.reportResult(m)
	case TerminateWithFailure:
		c.action.Fatalf("%s", m.Message)
	}
}

func (c *CISubscriber) groupBracket(e Event, title string) {
	if e.Scope == nil {
		return
	}
	switch *e.Scope {
	case ScopeStart:
		c.action.Group(title)
	case ScopeEnd:
		c.action.EndGroup()
	}
}

func (c *CISubscriber) reportCompatibility(m Compatibility) {
	if m.CompatibilityReport.Compatible {
		c.action.Infof("%s: compatible", m.Toolchain)
		return
	}
	if m.CompatibilityReport.Error != nil {
		c.action.Warningf("%s: incompatible: %s", m.Toolchain, *m.CompatibilityReport.Error)
		return
	}
	c.action.Warningf("%s: incompatible", m.Toolchain)
}

func (c *CISubscriber) reportResult(m MsrvResult) {
	if !m.Success || m.Version == nil {
		c.action.Warningf("unable to find an MSRV for target %s within %s..%s",
			m.Target, m.MinimumVersion, m.MaximumVersion)
		c.action.SetOutput("msrv_found", "false")
		return
	}
	c.action.Infof("MSRV: %s (target %s, %s search)", m.Version, m.Target, m.SearchMethod)
	c.action.SetOutput("msrv_found", "true")
	c.action.SetOutput("msrv", m.Version.String())
	c.action.SetOutput("target", m.Target)
}
