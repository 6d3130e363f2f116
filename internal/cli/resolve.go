package cli

import (
	"github.com/spf13/cobra"

	"github.com/depfetch/depfetch/internal/resolver"
)

// NewResolveCmd creates the resolve command, which locates an installed
// package without ever invoking the package manager.
func NewResolveCmd() *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:   "resolve <name>",
		Short: "Locate an installed package on disk",
		Long: `Search for an installed package by name, walking the destination
directory, its ancestors, and NODE_PATH entries in that order. Prints the
directory containing the package's package.json. Read-only; never invokes
the package manager.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := resolver.Resolve(cmd.Context(), args[0], dest)
			if err != nil {
				return err
			}

			cmd.Printf("%s\n", resolved.Path)
			cmd.Printf("  Name:    %s\n", resolved.Manifest.Name)
			cmd.Printf("  Version: %s\n", resolved.Manifest.Version)
			return nil
		},
	}

	cmd.Flags().StringVar(&dest, "dest", ".", "Directory to start the search from")

	return cmd
}
