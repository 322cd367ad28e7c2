// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package generator implements the Runner orchestrator, wiring model
// loading, rendering, checking, writing, verification and git together.
package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"go.uber.org/zap"

	gitpkg "github.com/petar-djukic/rmodgen/internal/git"
	"github.com/petar-djukic/rmodgen/internal/goimport"
	"github.com/petar-djukic/rmodgen/internal/logging"
	"github.com/petar-djukic/rmodgen/internal/output"
	"github.com/petar-djukic/rmodgen/internal/schema"
	"github.com/petar-djukic/rmodgen/internal/syntax"
	"github.com/petar-djukic/rmodgen/internal/verify"
	"github.com/petar-djukic/rmodgen/pkg/rust"
	"github.com/petar-djukic/rmodgen/pkg/types"
)

// Sentinel errors wrapped by Run.
var (
	ErrLoad  = errors.New("loading source failed")
	ErrCheck = errors.New("syntax check failed")
)

var headerTemplate = template.Must(template.New("header").Parse(
	"// Code generated by rmodgen from {{.Source}}. DO NOT EDIT.\n\n"))

// Job describes one generated file.
type Job struct {
	Source string `json:"source"`           // Model document (.yaml, .yml, .json, .toml) or Go package directory
	Output string `json:"output"`           // Rust file to write
	Region string `json:"region,omitempty"` // Marked region to splice into Output; empty replaces the whole file
}

// RunResult holds the outcome of a Runner.Run invocation. This is the
// internal result type; pkg/generate converts it to the public Result.
type RunResult struct {
	Files       []types.GeneratedFile
	Diagnostics []types.Diagnostic
	Diffs       map[string]string
	Sources     map[string]string // Output path to checked content, set when it has diagnostics
	Success     bool
}

// Deps holds injected dependencies for the runner.
type Deps struct {
	WorkDir      string
	CheckCmd     string        // External check command; empty skips it
	CheckTimeout time.Duration // Per-invocation timeout for CheckCmd
	NoGit        bool
	Commit       bool // Commit written files when the run succeeds
	AllowDirty   bool
	DirtyCommit  bool
	Force        bool   // Write files even when the syntax check fails
	DryRun       bool   // Compute diffs without touching the disk or git
	Derive       string // Attribute line for structs imported from Go
	Logger       *zap.SugaredLogger
}

// Runner orchestrates the generation lifecycle.
type Runner struct {
	deps Deps
	log  *zap.SugaredLogger
}

// NewRunner creates a Runner with the given dependencies.
func NewRunner(deps Deps) *Runner {
	if abs, err := filepath.Abs(deps.WorkDir); err == nil {
		deps.WorkDir = abs
	}
	return &Runner{deps: deps, log: logging.OrNop(deps.Logger)}
}

// Run executes every job: load, render, check, write or splice, then
// verifies the written files once and commits them on success.
func (r *Runner) Run(ctx context.Context, jobs []Job) (*RunResult, error) {
	result := &RunResult{Success: true}

	// Step 1: Handle git (dirty files). Git is only touched when committing.
	var gitRepo *gitpkg.Repo
	if r.deps.Commit && !r.deps.NoGit && !r.deps.DryRun {
		repo, err := gitpkg.Open(gitpkg.Config{
			WorkDir:     r.deps.WorkDir,
			AutoCommit:  r.deps.Commit,
			AllowDirty:  r.deps.AllowDirty,
			DirtyCommit: r.deps.DirtyCommit,
		})
		switch {
		case err == nil:
			gitRepo = repo
			if err := repo.HandleDirty(); err != nil {
				result.Success = false
				return result, fmt.Errorf("handling dirty files: %w", err)
			}
		case errors.Is(err, gitpkg.ErrNoGit):
			r.log.Debugw("git disabled", "workdir", r.deps.WorkDir)
		default:
			result.Success = false
			return result, err
		}
	}

	// Step 2: Generate each job.
	var written []string
	blocked := 0
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			result.Success = false
			return result, err
		}

		file, err := r.runJob(ctx, job, result)
		if err != nil {
			result.Success = false
			return result, err
		}
		switch file.Status {
		case types.StatusWritten:
			written = append(written, file.Path)
		case types.StatusSkipped:
			if !r.deps.DryRun {
				blocked++
			}
		}
		result.Files = append(result.Files, file)
	}

	if blocked > 0 {
		result.Success = false
		return result, fmt.Errorf("%w: %d file(s) not written", ErrCheck, blocked)
	}

	// Step 3: Verify written files.
	if len(written) > 0 {
		vr := verify.Verify(ctx, verify.Config{
			WorkDir: r.deps.WorkDir,
			Command: r.deps.CheckCmd,
			Files:   written,
			Timeout: r.deps.CheckTimeout,
		})
		result.Diagnostics = append(result.Diagnostics, vr.Diagnostics...)
		if !vr.OK {
			result.Success = false
			r.log.Warnw("check command failed", "command", r.deps.CheckCmd, "diagnostics", len(vr.Diagnostics))
		}
	}

	// Step 4: Auto-commit on success.
	if result.Success && gitRepo != nil && len(written) > 0 {
		paths := make([]string, len(written))
		for i, w := range written {
			paths[i] = r.resolve(w)
		}
		if err := gitRepo.AutoCommit(paths, summarize(jobs)); err != nil {
			result.Success = false
			return result, fmt.Errorf("auto-commit failed: %w", err)
		}
		r.log.Infow("committed generated files", "files", len(written))
	}

	return result, nil
}

// runJob generates one file and records its diagnostics and diff.
func (r *Runner) runJob(ctx context.Context, job Job, result *RunResult) (types.GeneratedFile, error) {
	out := types.GeneratedFile{Path: job.Output, Source: job.Source, Region: job.Region}
	if job.Output == "" {
		return out, fmt.Errorf("%w: job for %s has no output path", ErrLoad, job.Source)
	}

	model, err := Load(r.resolve(job.Source), r.deps.Derive, r.log)
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	rendered := model.Render()
	out.Bytes = len(rendered)

	path := r.resolve(job.Output)
	prev, exists, err := output.ReadExisting(path)
	if err != nil {
		return out, err
	}

	// Rendered line n lands on line n+shift.line of the output file.
	var next string
	var shift position
	if job.Region != "" {
		if !exists {
			return out, fmt.Errorf("splicing region %q: %s does not exist", job.Region, job.Output)
		}
		if next, err = output.Splice(prev, job.Region, rendered); err != nil {
			return out, fmt.Errorf("splicing %s: %w", job.Output, err)
		}
		shift = regionShift(prev, job.Region)
	} else {
		var header string
		if header, err = r.header(job.Source); err != nil {
			return out, err
		}
		shift.line = strings.Count(header, "\n")
		next = header + rendered
	}

	report, err := syntax.Check(ctx, []byte(rendered))
	if err != nil {
		return out, err
	}
	if len(report.Diagnostics) > 0 {
		if result.Sources == nil {
			result.Sources = make(map[string]string)
		}
		result.Sources[job.Output] = next
	}
	for _, d := range report.Diagnostics {
		d.FilePath = job.Output
		result.Diagnostics = append(result.Diagnostics, shift.apply(d))
	}
	if !report.OK() && !r.deps.Force {
		out.Status = types.StatusSkipped
		r.log.Errorw("generated code does not parse", "output", job.Output, "diagnostics", len(report.Diagnostics))
		return out, nil
	}

	if exists && !output.Changed(prev, next) {
		out.Status = types.StatusUnchanged
		r.log.Debugw("unchanged", "output", job.Output)
		return out, nil
	}

	if r.deps.DryRun {
		if result.Diffs == nil {
			result.Diffs = make(map[string]string)
		}
		result.Diffs[job.Output] = output.Diff(prev, next)
		out.Status = types.StatusSkipped
		added, removed := output.DiffStats(prev, next)
		r.log.Infow("would write", "output", job.Output, "added", added, "removed", removed)
		return out, nil
	}

	if err := output.WriteFile(path, []byte(next)); err != nil {
		return out, err
	}
	out.Status = types.StatusWritten
	r.log.Infow("wrote", "output", job.Output, "source", job.Source, "region", job.Region)
	return out, nil
}

// header renders the generated-code banner naming the source.
func (r *Runner) header(source string) (string, error) {
	var buf strings.Builder
	if err := headerTemplate.Execute(&buf, struct{ Source string }{filepath.ToSlash(source)}); err != nil {
		return "", fmt.Errorf("rendering header: %w", err)
	}
	return buf.String(), nil
}

// position moves diagnostics from rendered text into the output file.
type position struct {
	line   int
	column int // Added on every line; spliced text is indented by the marker
}

func (p position) apply(d types.Diagnostic) types.Diagnostic {
	if d.Line > 0 {
		d.Line += p.line
		if d.Column > 0 {
			d.Column += p.column
		}
	}
	return d
}

// regionShift locates the body of a spliced region. Splice has already
// validated the markers, so a lookup failure leaves the zero shift.
func regionShift(content, name string) position {
	regions, err := output.Regions(content)
	if err != nil {
		return position{}
	}
	for _, reg := range regions {
		if reg.Name == name {
			return position{line: reg.Begin, column: len(reg.Indent)}
		}
	}
	return position{}
}

// resolve makes a job path absolute against the working directory.
func (r *Runner) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.deps.WorkDir, path)
}

// Load builds the file model for a source: a directory is imported as
// Go code, anything else is decoded as a model document.
func Load(source, derive string, log *zap.SugaredLogger) (rust.File, error) {
	log = logging.OrNop(log)

	info, err := os.Stat(source)
	if err != nil {
		return rust.File{}, fmt.Errorf("reading %s: %w", source, err)
	}

	if !info.IsDir() {
		log.Debugw("loading model", "source", source)
		return schema.Load(source)
	}

	log.Debugw("importing Go package", "source", source)
	file, scanErrs, err := goimport.Import(source, goimport.Options{Derive: derive})
	if err != nil {
		return rust.File{}, err
	}
	for _, se := range scanErrs {
		log.Warnw("skipped Go file", "path", se.FilePath, "error", se.Err)
	}
	return file, nil
}

// summarize names the sources of a run for the commit subject.
func summarize(jobs []Job) string {
	seen := make(map[string]bool)
	var sources []string
	for _, j := range jobs {
		if !seen[j.Source] {
			seen[j.Source] = true
			sources = append(sources, filepath.ToSlash(j.Source))
		}
	}
	if len(sources) > 3 {
		return fmt.Sprintf("%d sources", len(sources))
	}
	return strings.Join(sources, ", ")
}
