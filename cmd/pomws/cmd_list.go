package main

import (
	"github.com/spf13/cobra"

	"github.com/psycho-ir/quarkus/internal/ui"
	"github.com/psycho-ir/quarkus/internal/workspace"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List every project in the workspace containing a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runList,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	cmd.Flags().Bool("yaml", false, "Output as YAML")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")

	format, err := outputFlags(asJSON, asYAML)
	if err != nil {
		return err
	}

	p, err := workspace.ResolveWithWorkspace(argDir(args))
	if err != nil {
		return err
	}
	projects := p.Workspace().Projects()

	out := cmd.OutOrStdout()
	if format != "" {
		infos := make([]projectInfo, 0, len(projects))
		for _, proj := range projects {
			infos = append(infos, newProjectInfo(proj))
		}
		return writeStructured(out, infos, format)
	}

	rows := make([][]string, 0, len(projects))
	for _, proj := range projects {
		rows = append(rows, []string{
			proj.GroupID, proj.ArtifactID, proj.Version, proj.Packaging(), proj.Dir,
		})
	}
	return ui.RenderTable(out, []string{"GROUP", "ARTIFACT", "VERSION", "PACKAGING", "DIR"}, rows)
}
