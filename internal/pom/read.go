package pom

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// Read reads and parses the pom.xml at path.
func Read(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	m.Path = path
	return m, nil
}

// Parse parses and validates pom.xml content.
func Parse(data []byte) (*Model, error) {
	var m Model
	if err := xml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshaling pom XML: %w", err)
	}
	normalize(&m)
	if err := validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// normalize trims the surrounding whitespace the XML decoder preserves in
// element character data.
func normalize(m *Model) {
	m.GroupID = strings.TrimSpace(m.GroupID)
	m.ArtifactID = strings.TrimSpace(m.ArtifactID)
	m.Version = strings.TrimSpace(m.Version)
	m.Packaging = strings.TrimSpace(m.Packaging)
	for i, mod := range m.Modules {
		m.Modules[i] = strings.TrimSpace(mod)
	}
	if m.Parent != nil {
		m.Parent.GroupID = strings.TrimSpace(m.Parent.GroupID)
		m.Parent.ArtifactID = strings.TrimSpace(m.Parent.ArtifactID)
		m.Parent.Version = strings.TrimSpace(m.Parent.Version)
		m.Parent.RelativePath = strings.TrimSpace(m.Parent.RelativePath)
	}
	if m.Build != nil {
		m.Build.Directory = strings.TrimSpace(m.Build.Directory)
		m.Build.SourceDirectory = strings.TrimSpace(m.Build.SourceDirectory)
		for i, r := range m.Build.Resources {
			m.Build.Resources[i].Directory = strings.TrimSpace(r.Directory)
		}
	}
}

func validate(m *Model) error {
	if m.ArtifactID == "" {
		return fmt.Errorf("pom: artifactId is required")
	}
	for i, mod := range m.Modules {
		if mod == "" {
			return fmt.Errorf("pom: modules[%d] is empty", i)
		}
	}
	return nil
}
