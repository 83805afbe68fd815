package workspace

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/psycho-ir/quarkus/internal/testutil"
)

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePom(t, dir, testutil.Pom{
		GroupID:    "org.acme",
		ArtifactID: "acme-app",
		Version:    "1.0.0",
	})

	p, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if p.GroupID != "org.acme" {
		t.Errorf("GroupID = %q, want %q", p.GroupID, "org.acme")
	}
	if p.ArtifactID != "acme-app" {
		t.Errorf("ArtifactID = %q, want %q", p.ArtifactID, "acme-app")
	}
	if p.Version != "1.0.0" {
		t.Errorf("Version = %q, want %q", p.Version, "1.0.0")
	}
	if p.Dir != dir {
		t.Errorf("Dir = %q, want %q", p.Dir, dir)
	}
	if p.Workspace() != nil {
		t.Error("Workspace() should be nil for a standalone resolve")
	}
	if got, want := p.GAV(), "org.acme:acme-app:1.0.0"; got != want {
		t.Errorf("GAV() = %q, want %q", got, want)
	}
}

func TestResolve_coordinatesFromParent(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePom(t, dir, testutil.Pom{
		ArtifactID: "acme-child",
		Parent: &testutil.ParentRef{
			GroupID:    "org.acme",
			ArtifactID: "acme-parent",
			Version:    "2.1.0",
		},
	})

	p, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if p.GroupID != "org.acme" {
		t.Errorf("GroupID = %q, want inherited %q", p.GroupID, "org.acme")
	}
	if p.Version != "2.1.0" {
		t.Errorf("Version = %q, want inherited %q", p.Version, "2.1.0")
	}
}

func TestResolve_missingCoordinates(t *testing.T) {
	tests := []struct {
		name      string
		pom       testutil.Pom
		wantField string
	}{
		{
			name:      "no groupId anywhere",
			pom:       testutil.Pom{ArtifactID: "a", Version: "1.0"},
			wantField: "groupId",
		},
		{
			name:      "no version anywhere",
			pom:       testutil.Pom{GroupID: "org.acme", ArtifactID: "a"},
			wantField: "version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			testutil.WritePom(t, dir, tt.pom)

			_, err := Resolve(dir)
			if err == nil {
				t.Fatal("Resolve() should fail")
			}
			var mc *MissingCoordinateError
			if !errors.As(err, &mc) {
				t.Fatalf("error = %v, want MissingCoordinateError", err)
			}
			if mc.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", mc.Field, tt.wantField)
			}
			if mc.Path != filepath.Join(dir, "pom.xml") {
				t.Errorf("Path = %q, want %q", mc.Path, filepath.Join(dir, "pom.xml"))
			}
		})
	}
}

func TestResolve_missingPom(t *testing.T) {
	_, err := Resolve(t.TempDir())
	if err == nil {
		t.Fatal("Resolve() should fail without a pom.xml")
	}
}

func TestResolve_idempotent(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePom(t, dir, testutil.Pom{
		GroupID:         "org.acme",
		ArtifactID:      "acme-app",
		Version:         "1.0.0",
		SourceDirectory: "custom/src",
	})

	first, err := Resolve(dir)
	if err != nil {
		t.Fatalf("first Resolve() error: %v", err)
	}
	second, err := Resolve(dir)
	if err != nil {
		t.Fatalf("second Resolve() error: %v", err)
	}

	if first.Key() != second.Key() {
		t.Errorf("keys differ: %v vs %v", first.Key(), second.Key())
	}
	if first.Dir != second.Dir {
		t.Errorf("dirs differ: %q vs %q", first.Dir, second.Dir)
	}
	if first.SourcesDir() != second.SourcesDir() {
		t.Errorf("source dirs differ: %q vs %q", first.SourcesDir(), second.SourcesDir())
	}
	if first.OutputDir() != second.OutputDir() {
		t.Errorf("output dirs differ: %q vs %q", first.OutputDir(), second.OutputDir())
	}
}

func TestDerivedPaths_defaults(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePom(t, dir, testutil.Pom{
		GroupID:    "org.acme",
		ArtifactID: "acme-app",
		Version:    "1.0.0",
	})

	p, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if got, want := p.OutputDir(), filepath.Join(dir, "target"); got != want {
		t.Errorf("OutputDir() = %q, want %q", got, want)
	}
	if got, want := p.ClassesDir(), filepath.Join(dir, "target", "classes"); got != want {
		t.Errorf("ClassesDir() = %q, want %q", got, want)
	}
	if got, want := p.SourcesDir(), filepath.Join(dir, "src", "main", "java"); got != want {
		t.Errorf("SourcesDir() = %q, want %q", got, want)
	}
	if got, want := p.ResourcesDir(), filepath.Join(dir, "src", "main", "resources"); got != want {
		t.Errorf("ResourcesDir() = %q, want %q", got, want)
	}
}

func TestDerivedPaths_overrides(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePom(t, dir, testutil.Pom{
		GroupID:         "org.acme",
		ArtifactID:      "acme-app",
		Version:         "1.0.0",
		SourceDirectory: "custom/src",
		OutputDirectory: "out",
		ResourceDirs:    []string{"custom/resources", "extra/resources"},
	})

	p, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if got, want := p.SourcesDir(), filepath.Join(dir, "custom", "src"); got != want {
		t.Errorf("SourcesDir() = %q, want %q", got, want)
	}
	if got, want := p.OutputDir(), filepath.Join(dir, "out"); got != want {
		t.Errorf("OutputDir() = %q, want %q", got, want)
	}
	if got, want := p.ClassesDir(), filepath.Join(dir, "out", "classes"); got != want {
		t.Errorf("ClassesDir() = %q, want %q", got, want)
	}
	// Only the first resource directory counts.
	if got, want := p.ResourcesDir(), filepath.Join(dir, "custom", "resources"); got != want {
		t.Errorf("ResourcesDir() = %q, want %q", got, want)
	}
}

func TestDerivedPaths_absoluteOverride(t *testing.T) {
	dir := t.TempDir()
	srcDir := filepath.Join(t.TempDir(), "generated-src")
	testutil.WritePom(t, dir, testutil.Pom{
		GroupID:         "org.acme",
		ArtifactID:      "acme-app",
		Version:         "1.0.0",
		SourceDirectory: srcDir,
	})

	p, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got := p.SourcesDir(); got != srcDir {
		t.Errorf("SourcesDir() = %q, want absolute override %q", got, srcDir)
	}
}

func TestPackaging_default(t *testing.T) {
	dir := t.TempDir()
	testutil.WritePom(t, dir, testutil.Pom{
		GroupID:    "org.acme",
		ArtifactID: "acme-app",
		Version:    "1.0.0",
	})

	p, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got := p.Packaging(); got != "jar" {
		t.Errorf("Packaging() = %q, want %q", got, "jar")
	}
}
