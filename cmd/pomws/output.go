package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/psycho-ir/quarkus/internal/workspace"
)

// projectInfo is the structured-output view of a resolved project.
type projectInfo struct {
	GroupID      string `json:"group_id" yaml:"group_id"`
	ArtifactID   string `json:"artifact_id" yaml:"artifact_id"`
	Version      string `json:"version" yaml:"version"`
	Packaging    string `json:"packaging" yaml:"packaging"`
	Dir          string `json:"dir" yaml:"dir"`
	SourcesDir   string `json:"sources_dir" yaml:"sources_dir"`
	ResourcesDir string `json:"resources_dir" yaml:"resources_dir"`
	OutputDir    string `json:"output_dir" yaml:"output_dir"`
	ClassesDir   string `json:"classes_dir" yaml:"classes_dir"`
}

func newProjectInfo(p *workspace.Project) projectInfo {
	return projectInfo{
		GroupID:      p.GroupID,
		ArtifactID:   p.ArtifactID,
		Version:      p.Version,
		Packaging:    p.Packaging(),
		Dir:          p.Dir,
		SourcesDir:   p.SourcesDir(),
		ResourcesDir: p.ResourcesDir(),
		OutputDir:    p.OutputDir(),
		ClassesDir:   p.ClassesDir(),
	}
}

// outputFlags maps the shared --json/--yaml flags to an output format.
// Empty means plain text.
func outputFlags(asJSON, asYAML bool) (string, error) {
	switch {
	case asJSON && asYAML:
		return "", fmt.Errorf("--json and --yaml are mutually exclusive")
	case asJSON:
		return "json", nil
	case asYAML:
		return "yaml", nil
	default:
		return "", nil
	}
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(out io.Writer, v any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling output: %w", err)
		}
		_, err = out.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
