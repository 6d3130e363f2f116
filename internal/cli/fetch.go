package cli

import (
	"github.com/spf13/cobra"

	"github.com/depfetch/depfetch/internal/fetcher"
)

const fetchLong = `Fetch a package into a project's dependency tree.

If an installation satisfying the requested range already exists in the
destination's node_modules, an ancestor's node_modules, or a NODE_PATH
directory, no install is performed and the existing path is returned.
Otherwise the package manager is invoked, its output is parsed for the
concrete installed version, and the result is verified against the request.

Specifiers can be registry names (left-pad, left-pad@^1.0.0,
@scope/name@2.x), git URLs (github.com/user/repo#ref), or local paths.`

const fetchExample = `  # Fetch latest into the current directory
  depfetch fetch left-pad

  # Fetch a range into a project, without touching package.json
  depfetch fetch left-pad@^1.0.0 --dest ./my-project

  # Record the dependency in package.json
  depfetch fetch left-pad@^1.0.0 --dest ./my-project --save

  # Pin the exact resolved version in package.json
  depfetch fetch left-pad@^1.0.0 --dest ./my-project --save-exact`

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	var (
		dest      string
		save      bool
		saveExact bool
	)

	cmd := &cobra.Command{
		Use:     "fetch <specifier>",
		Short:   "Fetch a package and return its installed path",
		Long:    fetchLong,
		Example: fetchExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := fetcher.Options{
				Save:      save,
				SaveExact: saveExact,
				Binary:    npmBinary(),
			}

			path, err := fetcher.Fetch(cmd.Context(), args[0], dest, opts)
			if err != nil {
				return err
			}

			cmd.Printf("✓ Package ready\n")
			cmd.Printf("  Path: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dest, "dest", ".", "Destination project directory")
	cmd.Flags().BoolVar(&save, "save", false, "Record the dependency in package.json")
	cmd.Flags().BoolVar(&saveExact, "save-exact", false, "Record the dependency pinned to the exact installed version")
	cmd.MarkFlagsMutuallyExclusive("save", "save-exact")

	return cmd
}
