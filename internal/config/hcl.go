// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2026 msrv-go contributors

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/rust-msrv/msrv-go/internal/version"
)

// HCLFileName is the optional declarative config file consulted ahead of
// CLI flags and environment variables. It lets a repository pin search
// behavior (target, bounds, check command) the same way Terraform pins
// provider requirements in a `terraform {}` block.
//
// Example:
//
//	msrv {
//	  target           = "x86_64-unknown-linux-gnu"
//	  minimum_version  = "1.56"
//	  maximum_version  = "1.75.0"
//	  search_method    = "bisect"
//	  check_command    = ["cargo", "check", "--workspace"]
//	  ignore_lockfile  = true
//	}
const HCLFileName = "msrv.hcl"

// LoadHCL reads an msrv.hcl file at path, if present, returning a zero
// Config when the file does not exist so callers can unconditionally
// merge the result.
//
// Grounded on lfreleng-actions-build-metadata-action's
// internal/extractor/terraform block-schema parsing: a fixed BodySchema
// extracts named attributes with
// PartialContent rather than decoding into a Go struct via gohcl, since
// the attributes here are a flat, known set.
func LoadHCL(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, path)
	if diags.HasErrors() {
		return Config{}, diags
	}

	schema := &hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{{Type: "msrv"}},
	}
	bodyContent, _, diags := file.Body.PartialContent(schema)
	if diags.HasErrors() {
		return Config{}, diags
	}

	var out Config
	for _, block := range bodyContent.Blocks {
		if block.Type != "msrv" {
			continue
		}
		if err := parseMsrvBlock(block, &out); err != nil {
			return Config{}, err
		}
	}
	return out, nil
}

func parseMsrvBlock(block *hcl.Block, out *Config) error {
	schema := &hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{
			{Name: "target"},
			{Name: "minimum_version"},
			{Name: "maximum_version"},
			{Name: "include_all_patch_releases"},
			{Name: "search_method"},
			{Name: "check_command"},
			{Name: "crate_path"},
			{Name: "ignore_lockfile"},
			{Name: "no_check_feedback"},
		},
	}
	content, _, diags := block.Body.PartialContent(schema)
	if diags.HasErrors() {
		return diags
	}

	if attr, ok := content.Attributes["target"]; ok {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diags
		}
		out.Target = v.AsString()
	}
	if attr, ok := content.Attributes["minimum_version"]; ok {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diags
		}
		bv, err := version.ParseBare(v.AsString())
		if err != nil {
			return err
		}
		out.MinimumVersion = &bv
	}
	if attr, ok := content.Attributes["maximum_version"]; ok {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diags
		}
		bv, err := version.ParseBare(v.AsString())
		if err != nil {
			return err
		}
		out.MaximumVersion = &bv
	}
	if attr, ok := content.Attributes["include_all_patch_releases"]; ok {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diags
		}
		out.IncludeAllPatchReleases = v.True()
	}
	if attr, ok := content.Attributes["search_method"]; ok {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diags
		}
		switch strings.ToLower(v.AsString()) {
		case "bisect":
			out.SearchMethod = SearchBisect
		case "linear":
			out.SearchMethod = SearchLinear
		default:
			return fmt.Errorf("msrv.hcl: unknown search_method %q", v.AsString())
		}
	}
	if attr, ok := content.Attributes["check_command"]; ok {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diags
		}
		if !v.CanIterateElements() {
			return fmt.Errorf("msrv.hcl: check_command must be a list of strings")
		}
		var argv []string
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			argv = append(argv, elem.AsString())
		}
		out.CheckCommand = argv
	}
	if attr, ok := content.Attributes["crate_path"]; ok {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diags
		}
		out.CratePath = v.AsString()
	}
	if attr, ok := content.Attributes["ignore_lockfile"]; ok {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diags
		}
		out.IgnoreLockfile = v.True()
	}
	if attr, ok := content.Attributes["no_check_feedback"]; ok {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diags
		}
		out.NoCheckFeedback = v.True()
	}

	return nil
}
