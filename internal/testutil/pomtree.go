// Package testutil builds pom.xml fixture trees for tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Pom describes a pom.xml fixture to write.
type Pom struct {
	GroupID    string
	ArtifactID string
	Version    string
	Packaging  string
	Parent     *ParentRef
	Modules    []string

	SourceDirectory string
	OutputDirectory string
	ResourceDirs    []string
}

// ParentRef is a fixture parent reference.
type ParentRef struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// WritePom renders p as pom.xml in dir, creating dir if needed.
// Returns the pom.xml path.
func WritePom(t *testing.T, dir string, p Pom) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating project dir %s: %v", dir, err)
	}
	path := filepath.Join(dir, "pom.xml")
	if err := os.WriteFile(path, []byte(renderPom(p)), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func renderPom(p Pom) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<project xmlns="http://maven.apache.org/POM/4.0.0">` + "\n")

	if p.Parent != nil {
		b.WriteString("  <parent>\n")
		writeTag(&b, "    ", "groupId", p.Parent.GroupID)
		writeTag(&b, "    ", "artifactId", p.Parent.ArtifactID)
		writeTag(&b, "    ", "version", p.Parent.Version)
		b.WriteString("  </parent>\n")
	}

	writeTag(&b, "  ", "groupId", p.GroupID)
	writeTag(&b, "  ", "artifactId", p.ArtifactID)
	writeTag(&b, "  ", "version", p.Version)
	writeTag(&b, "  ", "packaging", p.Packaging)

	if len(p.Modules) > 0 {
		b.WriteString("  <modules>\n")
		for _, m := range p.Modules {
			writeTag(&b, "    ", "module", m)
		}
		b.WriteString("  </modules>\n")
	}

	if p.SourceDirectory != "" || p.OutputDirectory != "" || len(p.ResourceDirs) > 0 {
		b.WriteString("  <build>\n")
		writeTag(&b, "    ", "sourceDirectory", p.SourceDirectory)
		writeTag(&b, "    ", "directory", p.OutputDirectory)
		if len(p.ResourceDirs) > 0 {
			b.WriteString("    <resources>\n")
			for _, r := range p.ResourceDirs {
				b.WriteString("      <resource>\n")
				writeTag(&b, "        ", "directory", r)
				b.WriteString("      </resource>\n")
			}
			b.WriteString("    </resources>\n")
		}
		b.WriteString("  </build>\n")
	}

	b.WriteString("</project>\n")
	return b.String()
}

func writeTag(b *strings.Builder, indent, tag, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s<%s>%s</%s>\n", indent, tag, value, tag)
}
