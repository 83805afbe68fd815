package main

import (
	"github.com/spf13/cobra"

	"github.com/psycho-ir/quarkus/internal/ui"
	"github.com/psycho-ir/quarkus/internal/workspace"
)

func newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths [dir]",
		Short: "Print the derived build paths of a project",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPaths,
	}
}

func runPaths(cmd *cobra.Command, args []string) error {
	p, err := workspace.Resolve(argDir(args))
	if err != nil {
		return err
	}

	return ui.RenderTable(cmd.OutOrStdout(), nil, [][]string{
		{"sources", p.SourcesDir()},
		{"resources", p.ResourcesDir()},
		{"output", p.OutputDir()},
		{"classes", p.ClassesDir()},
	})
}
