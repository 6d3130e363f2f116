// depfetch fetches npm packages into a project tree via the npm CLI and
// verifies the resulting installation.
package main

import (
	"fmt"
	"os"

	"github.com/depfetch/depfetch/internal/cli"
	"github.com/depfetch/depfetch/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps failure onto the exit code.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
