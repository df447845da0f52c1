// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rust-msrv/msrv-go/internal/check"
	"github.com/rust-msrv/msrv-go/internal/config"
	"github.com/rust-msrv/msrv-go/internal/environment"
	"github.com/rust-msrv/msrv-go/internal/msrvlog"
	"github.com/rust-msrv/msrv-go/internal/orchestrator"
	"github.com/rust-msrv/msrv-go/internal/release"
	"github.com/rust-msrv/msrv-go/internal/reporter"
	"github.com/rust-msrv/msrv-go/internal/toolversion"
	"github.com/rust-msrv/msrv-go/internal/version"
	"github.com/rust-msrv/msrv-go/internal/writer"
)

// buildVersion is stamped at release build time via -ldflags
// "-X main.buildVersion=...". Left empty in a plain `go build`, in which
// case toolversion.Resolve falls back to git.
var buildVersion string

func main() {
	ctx := context.Background()
	isCI := msrvlog.IsCI()

	cfg, crateRoot, err := resolveConfig(ctx)
	if err != nil {
		fail(isCI, "failed to resolve configuration: %v", err)
	}

	bus := reporter.NewBus()
	bus.Subscribe(msrvlog.NewSubscriber(os.Stdout, cfg.flagVerbose))

	bus.Report(reporter.Meta{
		ToolVersion: toolversion.Resolve(crateRoot, buildVersion),
		Target:      cfg.config.Target,
	})
	bus.Report(reporter.FetchIndex{Source: "static.rust-lang.org"})

	index, err := release.Fetch(ctx)
	if err != nil {
		fail(isCI, "failed to fetch release index: %v", err)
	}

	preparer := check.NewPreparer(bus, crateRoot)
	prober := check.NewRustupRunner(ctx, bus, preparer, cfg.config)

	found, err := orchestrator.Find(cfg.config, index, prober, bus)
	if err != nil {
		fail(isCI, "%v", err)
	}

	if cfg.writeToolchainFile {
		if err := writer.WriteToolchainFile(crateRoot, found); err != nil {
			fail(isCI, "failed to write rust-toolchain.toml: %v", err)
		}
	}
	if cfg.writeMSRV {
		if err := writer.WriteMSRV(crateRoot, found); err != nil {
			fail(isCI, "failed to write MSRV to Cargo.toml: %v", err)
		}
	}
	if cfg.writeYAMLSummary {
		if err := writer.WriteYAMLSummary(crateRoot, found, cfg.config.Target); err != nil {
			fail(isCI, "failed to write msrv-summary.yaml: %v", err)
		}
	}
	if cfg.writeJSONSummary {
		if err := writer.WriteJSONSummary(crateRoot, found, cfg.config.Target); err != nil {
			fail(isCI, "failed to write msrv-summary.json: %v", err)
		}
	}
}

// resolvedConfig bundles the merged Config with the main()-local output
// flags the core itself does not know about. The resolved crate root is
// returned by resolveConfig alongside it.
type resolvedConfig struct {
	config             config.Config
	flagVerbose        bool
	writeToolchainFile bool
	writeMSRV          bool
	writeYAMLSummary   bool
	writeJSONSummary   bool
}

// resolveConfig implements the four-layer precedence chain from
// SPEC_FULL.md's ambient config stack: manifest < msrv.hcl < environment
// < CLI flags, lowest to highest.
func resolveConfig(ctx context.Context) (resolvedConfig, string, error) {
	path := flag.String("path", ".", "path to the crate, or a directory beneath it")
	target := flag.String("target", "", "target triple to test against (defaults to host)")
	minVersion := flag.String("min", "", "minimum Rust version to consider")
	maxVersion := flag.String("max", "", "maximum Rust version to consider")
	allPatches := flag.Bool("include-all-patch-releases", false, "probe every patch release, not just the latest per minor")
	searchMethod := flag.String("search-method", "", "linear or bisect")
	checkCmd := flag.String("check", "", "verification command, e.g. \"cargo check\"")
	ignoreLockfile := flag.Bool("ignore-lockfile", false, "displace Cargo.lock before each probe")
	noCheckFeedback := flag.Bool("no-check-feedback", false, "omit captured stderr from incompatible events")
	verbose := flag.Bool("verbose", false, "also print a progress line for every probe and each toolchain install")
	writeToolchainFile := flag.Bool("output-toolchain-file", false, "write rust-toolchain.toml pinning the found MSRV")
	writeMSRV := flag.Bool("write-msrv", false, "record the found MSRV in Cargo.toml")
	writeYAMLSummary := flag.Bool("output-summary-yaml", false, "write msrv-summary.yaml alongside the manifest")
	writeJSONSummary := flag.Bool("output-summary-json", false, "write msrv-summary.json alongside the manifest")
	flag.Parse()

	crateRoot, err := config.FindCrateRoot(*path)
	if err != nil {
		return resolvedConfig{}, "", err
	}

	merged := config.Default()

	manifestCfg, err := config.LoadManifest(crateRoot)
	if err == nil {
		merged = config.Merge(merged, manifestCfg)
	}

	hclCfg, err := config.LoadHCL(crateRoot + string(os.PathSeparator) + config.HCLFileName)
	if err != nil {
		return resolvedConfig{}, "", err
	}
	merged = config.Merge(merged, hclCfg)

	envCfg, err := config.LoadEnv(ctx)
	if err != nil {
		return resolvedConfig{}, "", err
	}
	merged = config.Merge(merged, envCfg)

	flagCfg, err := flagConfig(*target, *minVersion, *maxVersion, *allPatches, *searchMethod, *checkCmd, *ignoreLockfile, *noCheckFeedback)
	if err != nil {
		return resolvedConfig{}, "", err
	}
	merged = config.Merge(merged, flagCfg)

	if merged.CratePath == "" {
		merged.CratePath = crateRoot
	}
	if merged.Target == "" {
		if host, err := environment.HostTarget(); err == nil {
			merged.Target = host
		}
	}

	return resolvedConfig{
		config:             merged,
		flagVerbose:        *verbose,
		writeToolchainFile: *writeToolchainFile,
		writeMSRV:          *writeMSRV,
		writeYAMLSummary:   *writeYAMLSummary,
		writeJSONSummary:   *writeJSONSummary,
	}, crateRoot, nil
}

func flagConfig(target, minVersion, maxVersion string, allPatches bool, searchMethod, checkCmd string, ignoreLockfile, noCheckFeedback bool) (config.Config, error) {
	var out config.Config
	out.Target = target
	out.IncludeAllPatchReleases = allPatches
	out.IgnoreLockfile = ignoreLockfile
	out.NoCheckFeedback = noCheckFeedback

	if minVersion != "" {
		bv, err := parseBareFlag("min", minVersion)
		if err != nil {
			return config.Config{}, err
		}
		out.MinimumVersion = &bv
	}
	if maxVersion != "" {
		bv, err := parseBareFlag("max", maxVersion)
		if err != nil {
			return config.Config{}, err
		}
		out.MaximumVersion = &bv
	}
	switch strings.ToLower(searchMethod) {
	case "bisect":
		out.SearchMethod = config.SearchBisect
	case "linear":
		out.SearchMethod = config.SearchLinear
	}
	if checkCmd != "" {
		out.CheckCommand = strings.Fields(checkCmd)
	}
	return out, nil
}

func parseBareFlag(name, value string) (version.BareVersion, error) {
	bv, err := version.ParseBare(value)
	if err != nil {
		return version.BareVersion{}, fmt.Errorf("--%s: %w", name, err)
	}
	return bv, nil
}

func fail(isCI bool, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if isCI {
		fmt.Fprintf(os.Stderr, "::error::%s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}
	os.Exit(1)
}
