package cli

import (
	"github.com/spf13/cobra"

	"github.com/depfetch/depfetch/internal/fetcher"
)

// NewRemoveCmd creates the remove command for uninstalling a fetched package.
func NewRemoveCmd() *cobra.Command {
	var (
		dest   string
		noSave bool
	)

	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a previously fetched package",
		Long: `Remove a package from the destination's dependency tree via the package
manager's uninstall command. By default the dependency record is also
removed from package.json; --no-save leaves the manifest untouched.`,
		Example: `  # Remove a package and its manifest entry
  depfetch remove left-pad --dest ./my-project

  # Remove the files but keep the package.json entry
  depfetch remove left-pad --dest ./my-project --no-save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := fetcher.UninstallOptions{
				Save:   !noSave,
				Binary: npmBinary(),
			}

			if err := fetcher.Uninstall(cmd.Context(), args[0], dest, opts); err != nil {
				return err
			}

			cmd.Printf("✓ Package %s removed\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&dest, "dest", ".", "Destination project directory")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Don't remove the dependency record from package.json")

	return cmd
}
