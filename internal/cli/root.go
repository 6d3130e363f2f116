// Package cli wires the depfetch command surface: fetch, remove, resolve,
// and list, plus logging and configuration setup shared by all commands.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/depfetch/depfetch/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// cfg is the loaded configuration, set during PersistentPreRunE.
var cfg *config.Config //nolint:gochecknoglobals // Set once at startup, read by subcommands

// npmBinary returns the configured package manager executable, or empty for
// the default.
func npmBinary() string {
	if cfg == nil {
		return ""
	}
	return cfg.NPM.Binary
}

// NewRootCmd creates the root Cobra command for the depfetch CLI.
// It wires up configuration, logging, tracing, and subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "depfetch",
		Short:   "Fetch npm packages into a project tree and verify them",
		Long:    "depfetch installs packages via the npm CLI, then locates and validates the on-disk installation",
		Version: ver,
		Example: rootCmdExample,
		// Errors surface once, from main's exit-code mapping.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default ~/.depfetch/config.yaml)")
	cmd.AddCommand(NewFetchCmd(), NewRemoveCmd(), NewResolveCmd(), NewListCmd())

	return cmd
}

const rootCmdExample = `  # Fetch a package satisfying a range into ./my-project
  depfetch fetch left-pad@^1.0.0 --dest ./my-project

  # Fetch and record the dependency with its exact version
  depfetch fetch left-pad@^1.0.0 --dest ./my-project --save-exact

  # Fetch a scoped package
  depfetch fetch @scope/tool --dest ./my-project

  # Remove a package and its manifest entry
  depfetch remove left-pad --dest ./my-project

  # Show where a package is installed (ancestors and NODE_PATH included)
  depfetch resolve left-pad --dest ./my-project/src

  # List declared dependencies and their installed versions
  depfetch list --dest ./my-project`
