// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command rmodgen generates Rust source files from declarative models and
// Go type definitions.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/petar-djukic/rmodgen/internal/logging"
)

const version = "0.1.0"

// log is replaced in PersistentPreRun once flags and config are read.
var log = logging.Nop()

func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	_ = log.Sync()
	if err != nil {
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		os.Exit(1)
	}
}

// newRootCmd builds the command tree and binds persistent flags to viper.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rmodgen",
		Short: "Structured Rust source generator",
		Long:  "rmodgen renders Rust structs, enums, impls, traits and modules from YAML, JSON or TOML models and from Go type definitions.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log = newLogger()
			return nil
		},
	}

	// Global flags.
	rootCmd.PersistentFlags().String("workdir", ".", "Directory job paths are relative to")
	rootCmd.PersistentFlags().String("check-cmd", "", "Check command run on generated files (e.g., 'rustfmt --check {file}')")
	rootCmd.PersistentFlags().Duration("check-timeout", 0, "Timeout per check command invocation (default 60s)")
	rootCmd.PersistentFlags().String("derive", "", "Attribute line for structs imported from Go")
	rootCmd.PersistentFlags().Bool("no-git", false, "Disable git operations")
	rootCmd.PersistentFlags().Bool("commit", false, "Commit generated files after a successful run")
	rootCmd.PersistentFlags().Bool("allow-dirty", false, "Generate into a work tree with uncommitted changes")
	rootCmd.PersistentFlags().Bool("dirty-commit", false, "Commit uncommitted changes before generating")
	rootCmd.PersistentFlags().Bool("json-log", false, "Log as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug messages")

	// Bind flags to viper.
	for _, name := range []string{
		"workdir", "check-cmd", "check-timeout", "derive", "no-git", "commit",
		"allow-dirty", "dirty-commit", "json-log", "verbose",
	} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	// Env vars: RMODGEN_WORKDIR, RMODGEN_CHECK_CMD, etc.
	viper.SetEnvPrefix("RMODGEN")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".rmodgen")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newFromGoCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newUndoCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newLogger builds the logger selected by the json-log and verbose keys.
func newLogger() *zap.SugaredLogger {
	return logging.New(logging.Options{
		JSON:    viper.GetBool("json-log"),
		Verbose: viper.GetBool("verbose"),
	})
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print rmodgen version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rmodgen %s\n", version)
		},
	}
}
