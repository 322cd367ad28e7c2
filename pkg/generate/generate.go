// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package generate defines the public interface for rmodgen, a generator
// that turns declarative models and Go types into Rust source files.
package generate

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/petar-djukic/rmodgen/internal/generator"
	"github.com/petar-djukic/rmodgen/pkg/types"
)

// Error types for the Generator API.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoad          = generator.ErrLoad
	ErrCheck         = generator.ErrCheck
)

// Config configures a Generator instance.
type Config struct {
	WorkDir      string             // Directory job paths are relative to (required)
	CheckCmd     string             // External check command, e.g. "rustfmt --check {file}" (empty = skip)
	CheckTimeout time.Duration      // Timeout per check invocation (default 60s)
	NoGit        bool               // Disable git operations
	Commit       bool               // Commit generated files after a successful run
	AllowDirty   bool               // Generate into a work tree with uncommitted changes
	DirtyCommit  bool               // Commit uncommitted changes before generating
	Force        bool               // Write files even when the syntax check fails
	DryRun       bool               // Report diffs without writing or committing
	Derive       string             // Attribute line for structs imported from Go (default derive Debug, Clone, PartialEq)
	Logger       *zap.SugaredLogger // Defaults to a no-op logger
}

// Job names one generated file.
type Job struct {
	Source string `json:"source"`           // Model document or Go package directory
	Output string `json:"output"`           // Rust file to write
	Region string `json:"region,omitempty"` // Marked region to splice into Output
}

// Result holds the outcome of a Generator.Run invocation.
type Result struct {
	Files       []types.GeneratedFile `json:"files"`
	Diagnostics []types.Diagnostic    `json:"diagnostics,omitempty"`
	Diffs       map[string]string     `json:"diffs,omitempty"` // Output path to unified line diff, dry runs only
	Sources     map[string]string     `json:"-"`               // Output path to the content its diagnostics point into
	Success     bool                  `json:"success"`
}

// Generator runs generation jobs against a working directory.
type Generator interface {
	// Run executes every job: load the source, render it, check the
	// syntax, write or splice the output, verify and commit.
	Run(ctx context.Context, jobs []Job) (*Result, error)
}
