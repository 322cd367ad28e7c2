// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package verify runs an external check command over generated files and
// turns its output into diagnostics.
package verify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/petar-djukic/rmodgen/pkg/types"
)

const (
	defaultTimeout = 60 * time.Second
	waitDelay      = 2 * time.Second

	// FilePlaceholder in a command is replaced by each generated path.
	FilePlaceholder = "{file}"
)

// Config configures the verifier.
type Config struct {
	WorkDir string        // Directory the command runs in
	Command string        // Check command, e.g. "rustfmt --check {file}"; empty skips verification
	Files   []string      // Generated files substituted for {file}
	Timeout time.Duration // Per-invocation timeout (default 60s)
}

// Result holds the outcome of a verification.
type Result struct {
	OK          bool               // Every invocation exited zero
	Skipped     bool               // No command configured
	Diagnostics []types.Diagnostic // Parsed from the command output
	Output      string             // Raw combined output of all invocations
}

// Verify runs the check command. With a {file} placeholder the command
// runs once per file, otherwise once in total. A context cancellation or
// a missing executable is reported as a failed result, never a panic.
func Verify(ctx context.Context, cfg Config) *Result {
	parts := strings.Fields(cfg.Command)
	if len(parts) == 0 {
		return &Result{OK: true, Skipped: true}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	var invocations [][]string
	if strings.Contains(cfg.Command, FilePlaceholder) {
		for _, f := range cfg.Files {
			args := make([]string, len(parts))
			for i, p := range parts {
				args[i] = strings.ReplaceAll(p, FilePlaceholder, f)
			}
			invocations = append(invocations, args)
		}
	} else {
		invocations = append(invocations, parts)
	}

	result := &Result{OK: true}
	var out strings.Builder
	for _, args := range invocations {
		output, err := runCommand(ctx, cfg.WorkDir, timeout, args[0], args[1:]...)
		out.WriteString(output)
		if err == nil {
			continue
		}

		result.OK = false
		diags := ParseDiagnostics(output, parts[0])
		var exitErr *exec.ExitError
		if len(diags) == 0 && !errors.As(err, &exitErr) {
			diags = []types.Diagnostic{{
				Source:   parts[0],
				Severity: types.SeverityError,
				Message:  fmt.Sprintf("running %s: %v", args[0], err),
			}}
		}
		result.Diagnostics = append(result.Diagnostics, diags...)
	}
	result.Output = out.String()
	return result
}

// runCommand executes a command with a timeout and captures combined output.
func runCommand(ctx context.Context, dir string, timeout time.Duration, name string, args ...string) (string, error) {
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, name, args...)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	if cmdCtx.Err() != nil {
		return buf.String(), fmt.Errorf("%s: %w", name, cmdCtx.Err())
	}
	return buf.String(), err
}

var (
	// error[E0308]: mismatched types
	headerRegex = regexp.MustCompile(`^(error|warning|note|help)(?:\[\w+\])?: (.+)$`)
	//   --> src/lib.rs:4:5
	arrowRegex = regexp.MustCompile(`^-->\s*(.+?):(\d+):(\d+)$`)
	// src/lib.rs:4:5: error: message
	inlineRegex = regexp.MustCompile(`^(.+?\.rs):(\d+)(?::(\d+))?: (?:(error|warning|note|help)(?:\[\w+\])?: )?(.+)$`)
)

// ParseDiagnostics extracts diagnostics from rustc-style output: a
// "severity: message" header optionally followed by a "--> path:line:col"
// location line, or a single "path:line:col: message" line. Summary lines
// such as "error: aborting due to ..." are dropped.
func ParseDiagnostics(output, source string) []types.Diagnostic {
	var diags []types.Diagnostic
	var pending *types.Diagnostic

	flush := func() {
		if pending != nil {
			diags = append(diags, *pending)
			pending = nil
		}
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := headerRegex.FindStringSubmatch(line); m != nil {
			flush()
			if isSummary(m[2]) {
				continue
			}
			pending = &types.Diagnostic{
				Source:   source,
				Severity: types.ParseSeverity(m[1]),
				Message:  m[2],
			}
			continue
		}

		if m := arrowRegex.FindStringSubmatch(line); m != nil {
			if pending != nil && pending.FilePath == "" {
				pending.FilePath = m[1]
				pending.Line, _ = strconv.Atoi(m[2])
				pending.Column, _ = strconv.Atoi(m[3])
			}
			continue
		}

		if m := inlineRegex.FindStringSubmatch(line); m != nil {
			flush()
			d := types.Diagnostic{
				Source:   source,
				FilePath: m[1],
				Severity: types.SeverityError,
				Message:  m[5],
			}
			d.Line, _ = strconv.Atoi(m[2])
			if m[3] != "" {
				d.Column, _ = strconv.Atoi(m[3])
			}
			if m[4] != "" {
				d.Severity = types.ParseSeverity(m[4])
			}
			diags = append(diags, d)
		}
	}
	flush()
	return diags
}

func isSummary(msg string) bool {
	return strings.HasPrefix(msg, "aborting due to") ||
		strings.HasPrefix(msg, "could not compile") ||
		strings.Contains(msg, "warning emitted") ||
		strings.Contains(msg, "warnings emitted")
}
