// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package generate

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/petar-djukic/rmodgen/internal/generator"
	"github.com/petar-djukic/rmodgen/internal/goimport"
	"github.com/petar-djukic/rmodgen/internal/logging"
)

const defaultCheckTimeout = 60 * time.Second

// New validates the config and returns a ready-to-use Generator.
func New(cfg Config) (Generator, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	applyDefaults(&cfg)

	runner := generator.NewRunner(generator.Deps{
		WorkDir:      cfg.WorkDir,
		CheckCmd:     cfg.CheckCmd,
		CheckTimeout: cfg.CheckTimeout,
		NoGit:        cfg.NoGit,
		Commit:       cfg.Commit,
		AllowDirty:   cfg.AllowDirty,
		DirtyCommit:  cfg.DirtyCommit,
		Force:        cfg.Force,
		DryRun:       cfg.DryRun,
		Derive:       cfg.Derive,
		Logger:       cfg.Logger,
	})

	return &generatorAdapter{runner: runner}, nil
}

// Render loads a model document or Go package directory and returns the
// rendered Rust source without writing anything.
func Render(source, derive string) (string, error) {
	if derive == "" {
		derive = goimport.DefaultDerive
	}
	file, err := generator.Load(source, derive, logging.Nop())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return file.Render(), nil
}

// generatorAdapter adapts internal/generator.Runner to the public Generator interface.
type generatorAdapter struct {
	runner *generator.Runner
}

func (a *generatorAdapter) Run(ctx context.Context, jobs []Job) (*Result, error) {
	internal := make([]generator.Job, len(jobs))
	for i, j := range jobs {
		internal[i] = generator.Job{Source: j.Source, Output: j.Output, Region: j.Region}
	}

	ir, err := a.runner.Run(ctx, internal)
	if ir == nil {
		return &Result{}, err
	}
	return &Result{
		Files:       ir.Files,
		Diagnostics: ir.Diagnostics,
		Diffs:       ir.Diffs,
		Sources:     ir.Sources,
		Success:     ir.Success,
	}, err
}

// validateConfig checks that required fields are present.
func validateConfig(cfg Config) error {
	if cfg.WorkDir == "" {
		return fmt.Errorf("WorkDir is required")
	}
	if info, err := os.Stat(cfg.WorkDir); err != nil || !info.IsDir() {
		return fmt.Errorf("WorkDir %q does not exist or is not a directory", cfg.WorkDir)
	}
	if cfg.CheckTimeout < 0 {
		return fmt.Errorf("CheckTimeout must not be negative")
	}
	if cfg.AllowDirty && cfg.DirtyCommit {
		return fmt.Errorf("AllowDirty and DirtyCommit are mutually exclusive")
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.CheckTimeout == 0 {
		cfg.CheckTimeout = defaultCheckTimeout
	}
	if cfg.Derive == "" {
		cfg.Derive = goimport.DefaultDerive
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Nop()
	}
}
