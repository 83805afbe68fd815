package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pomws",
		Short:   "Resolve local Maven projects and multi-module workspaces",
		Version: version,
	}

	cmd.AddCommand(
		newResolveCmd(),
		newListCmd(),
		newLocateCmd(),
		newPathsCmd(),
		newPickCmd(),
	)

	return cmd
}

// argDir returns the directory argument of a command, defaulting to the
// current directory.
func argDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
