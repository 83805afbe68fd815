package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/psycho-ir/quarkus/internal/workspace"
)

func newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick [dir]",
		Short: "Interactively pick a project from the workspace and print its directory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPick,
	}
}

func runPick(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("pick requires an interactive terminal")
	}

	p, err := workspace.ResolveWithWorkspace(argDir(args))
	if err != nil {
		return err
	}

	chosen, err := pickProject(p.Workspace().Projects())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), chosen.Dir)
	return nil
}
