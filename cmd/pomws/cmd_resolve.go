package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psycho-ir/quarkus/internal/workspace"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [dir]",
		Short: "Resolve the project for a directory, loading its workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runResolve,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	cmd.Flags().Bool("yaml", false, "Output as YAML")
	cmd.Flags().Bool("no-workspace", false, "Resolve the directory alone, without loading the workspace")
	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	standalone, _ := cmd.Flags().GetBool("no-workspace")

	format, err := outputFlags(asJSON, asYAML)
	if err != nil {
		return err
	}

	dir := argDir(args)
	var p *workspace.Project
	if standalone {
		p, err = workspace.Resolve(dir)
	} else {
		p, err = workspace.ResolveWithWorkspace(dir)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format != "" {
		return writeStructured(out, newProjectInfo(p), format)
	}

	fmt.Fprintf(out, "%s (%s)\n", p.GAV(), p.Packaging())
	fmt.Fprintf(out, "dir: %s\n", p.Dir)
	if ws := p.Workspace(); ws != nil {
		fmt.Fprintf(out, "workspace: %d projects\n", ws.Len())
	}
	return nil
}
