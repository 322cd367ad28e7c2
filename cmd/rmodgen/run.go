// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	gitpkg "github.com/petar-djukic/rmodgen/internal/git"
	"github.com/petar-djukic/rmodgen/internal/syntax"
	"github.com/petar-djukic/rmodgen/internal/verify"
	"github.com/petar-djukic/rmodgen/pkg/generate"
	"github.com/petar-djukic/rmodgen/pkg/types"
)

var envKeyReplacer = strings.NewReplacer("-", "_")

// diagnosticContextLines is the number of source lines shown around each
// diagnostic on stderr.
const diagnosticContextLines = 3

// newGenerateCmd creates the "generate" command.
func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [source]",
		Short: "Generate Rust files",
		Long: "Generate renders a model document or Go package directory into a Rust file. " +
			"Without a source argument the jobs listed under \"jobs\" in .rmodgen.yaml are run.",
		Args: cobra.MaximumNArgs(1),
		RunE: runGenerate,
	}

	cmd.Flags().StringP("output", "o", "", "Rust file to write (required with a source argument)")
	cmd.Flags().StringP("region", "r", "", "Marked region of the output file to replace")
	cmd.Flags().Bool("dry-run", false, "Print diffs without writing files")
	cmd.Flags().Bool("force", false, "Write files even when the syntax check fails")

	return cmd
}

// runGenerate executes the generation jobs.
func runGenerate(cmd *cobra.Command, args []string) error {
	jobs, err := jobsFromArgs(cmd, args)
	if err != nil {
		return err
	}
	return runJobs(cmd, jobs)
}

// jobsFromArgs builds the job list from the command line or the config file.
func jobsFromArgs(cmd *cobra.Command, args []string) ([]generate.Job, error) {
	output, _ := cmd.Flags().GetString("output")
	region, _ := cmd.Flags().GetString("region")

	if len(args) == 1 {
		if output == "" {
			return nil, fmt.Errorf("--output is required with a source argument")
		}
		return []generate.Job{{Source: args[0], Output: output, Region: region}}, nil
	}

	var jobs []generate.Job
	if err := viper.UnmarshalKey("jobs", &jobs); err != nil {
		return nil, fmt.Errorf("reading jobs from config: %w", err)
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no source given and no jobs configured in .rmodgen.yaml")
	}
	return jobs, nil
}

// runJobs runs jobs with the configured generator and prints the result.
func runJobs(cmd *cobra.Command, jobs []generate.Job) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	force, _ := cmd.Flags().GetBool("force")

	g, err := generate.New(generate.Config{
		WorkDir:      viper.GetString("workdir"),
		CheckCmd:     viper.GetString("check-cmd"),
		CheckTimeout: viper.GetDuration("check-timeout"),
		NoGit:        viper.GetBool("no-git"),
		Commit:       viper.GetBool("commit"),
		AllowDirty:   viper.GetBool("allow-dirty"),
		DirtyCommit:  viper.GetBool("dirty-commit"),
		Force:        force,
		DryRun:       dryRun,
		Derive:       viper.GetString("derive"),
		Logger:       log,
	})
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result, err := g.Run(ctx, jobs)
	if result != nil {
		printDiagnostics(cmd.ErrOrStderr(), result.Diagnostics, result.Sources, viper.GetString("workdir"))
		printJSON(cmd.OutOrStdout(), result)
	}
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("generation finished with errors")
	}
	return nil
}

// newRenderCmd creates the "render" command.
func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <source>",
		Short: "Print the Rust source for a model without writing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := generate.Render(args[0], viper.GetString("derive"))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// newFromGoCmd creates the "from-go" command.
func newFromGoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from-go <dir>",
		Short: "Convert exported Go structs and string enums to Rust",
		Long: "From-go scans a Go package directory and converts exported struct types and typed string " +
			"constant groups into Rust structs and enums. Without --output the result is printed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				out, err := generate.Render(args[0], viper.GetString("derive"))
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}
			region, _ := cmd.Flags().GetString("region")
			return runJobs(cmd, []generate.Job{{Source: args[0], Output: output, Region: region}})
		},
	}

	cmd.Flags().StringP("output", "o", "", "Rust file to write; prints to stdout when empty")
	cmd.Flags().StringP("region", "r", "", "Marked region of the output file to replace")
	cmd.Flags().Bool("dry-run", false, "Print diffs without writing files")
	cmd.Flags().Bool("force", false, "Write files even when the syntax check fails")

	return cmd
}

// checkReport is the JSON shape printed by the check command.
type checkReport struct {
	Path        string             `json:"path"`
	Diagnostics []types.Diagnostic `json:"diagnostics,omitempty"`
	Definitions []types.Definition `json:"definitions,omitempty"`
}

// newCheckCmd creates the "check" command.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.rs>...",
		Short: "Syntax-check Rust files and list their definitions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			var reports []checkReport
			var all []types.Diagnostic
			for _, path := range args {
				report, err := syntax.CheckFile(ctx, path)
				if err != nil {
					return err
				}
				all = append(all, report.Diagnostics...)
				reports = append(reports, checkReport{Path: path, Diagnostics: report.Diagnostics, Definitions: report.Definitions})
			}

			if len(all) > 0 {
				printDiagnostics(cmd.ErrOrStderr(), all, nil, "")
			}
			printJSON(cmd.OutOrStdout(), reports)
			if types.HasErrors(all) {
				return fmt.Errorf("%d syntax error(s)", len(all))
			}
			return nil
		},
	}
}

// newUndoCmd creates the "undo" command.
func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Revert the last rmodgen commit",
		Long:  "Undo performs a soft reset of the last commit if it was made by rmodgen.",
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir := viper.GetString("workdir")

			repo, err := gitpkg.Open(gitpkg.Config{WorkDir: workDir})
			if err != nil {
				return fmt.Errorf("opening repository: %w", err)
			}

			if err := repo.Undo(); err != nil {
				return fmt.Errorf("undo failed: %w", err)
			}

			log.Infow("reverted last rmodgen commit", "workdir", workDir)
			fmt.Fprintln(cmd.OutOrStdout(), "Successfully reverted last rmodgen commit.")
			return nil
		},
	}
}

// printDiagnostics writes diagnostics with source context to w. Paths
// missing from sources are read relative to workDir.
func printDiagnostics(w io.Writer, diags []types.Diagnostic, sources map[string]string, workDir string) {
	if len(diags) == 0 {
		return
	}
	resolved := make(map[string]string, len(sources))
	for path, content := range sources {
		resolved[path] = content
	}
	for _, d := range diags {
		if _, ok := resolved[d.FilePath]; ok || d.FilePath == "" || d.Line == 0 {
			continue
		}
		path := d.FilePath
		if workDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}
		if data, err := os.ReadFile(path); err == nil {
			resolved[d.FilePath] = string(data)
		}
	}
	fmt.Fprint(w, verify.Format(diags, resolved, diagnosticContextLines))
}

// printJSON outputs v as indented JSON.
func printJSON(w io.Writer, v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling result: %v\n", err)
		return
	}
	fmt.Fprintln(w, string(out))
}
