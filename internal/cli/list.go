package cli

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/depfetch/depfetch/internal/nodespec"
	"github.com/depfetch/depfetch/internal/resolver"
)

// NewListCmd creates the list command, which prints the destination's
// declared dependencies along with the version actually installed.
func NewListCmd() *cobra.Command {
	var (
		dest string
		dev  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List declared dependencies and their installed versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			absDest, err := filepath.Abs(dest)
			if err != nil {
				return fmt.Errorf("resolving destination: %w", err)
			}

			manifest, err := nodespec.ReadManifest(filepath.Join(absDest, nodespec.ManifestFile))
			if err != nil {
				return fmt.Errorf("no project manifest in %s: %w", absDest, err)
			}

			deps := manifest.Dependencies
			if dev {
				deps = manifest.DevDependencies
			}
			if len(deps) == 0 {
				cmd.Printf("No dependencies declared\n")
				return nil
			}

			names := make([]string, 0, len(deps))
			for name := range deps {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				resolved, rerr := resolver.Resolve(cmd.Context(), name, absDest)
				if rerr != nil {
					cmd.Printf("%s %s (missing)\n", name, deps[name])
					continue
				}
				cmd.Printf("%s %s (installed %s)\n", name, deps[name], resolved.Manifest.Version)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dest, "dest", ".", "Project directory whose manifest to read")
	cmd.Flags().BoolVar(&dev, "dev", false, "List devDependencies instead of dependencies")

	return cmd
}
