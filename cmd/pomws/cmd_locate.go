package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psycho-ir/quarkus/internal/workspace"
)

func newLocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate [path]",
		Short: "Print the nearest ancestor directory containing a pom.xml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLocate,
	}
}

func runLocate(cmd *cobra.Command, args []string) error {
	dir, err := workspace.LocateProjectDir(argDir(args))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), dir)
	return nil
}
