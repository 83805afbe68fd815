package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/psycho-ir/quarkus/internal/testutil"
)

// setupTree builds a root project with modules [a, b] and returns the root
// directory.
func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	parent := &testutil.ParentRef{GroupID: "org.acme", ArtifactID: "acme-root", Version: "1.0.0"}

	testutil.WritePom(t, root, testutil.Pom{
		GroupID:    "org.acme",
		ArtifactID: "acme-root",
		Version:    "1.0.0",
		Packaging:  "pom",
		Modules:    []string{"a", "b"},
	})
	testutil.WritePom(t, filepath.Join(root, "a"), testutil.Pom{ArtifactID: "a", Parent: parent})
	testutil.WritePom(t, filepath.Join(root, "b"), testutil.Pom{ArtifactID: "b", Parent: parent})
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRunResolve_text(t *testing.T) {
	root := setupTree(t)

	out, err := execute(t, "resolve", filepath.Join(root, "a"))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !strings.Contains(out, "org.acme:a:1.0.0") {
		t.Errorf("output = %q, should contain the GAV", out)
	}
	if !strings.Contains(out, "3 projects") {
		t.Errorf("output = %q, should report the workspace size", out)
	}
}

func TestRunResolve_json(t *testing.T) {
	root := setupTree(t)

	out, err := execute(t, "resolve", "--json", filepath.Join(root, "a"))
	if err != nil {
		t.Fatalf("resolve --json failed: %v", err)
	}

	var info projectInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if info.ArtifactID != "a" {
		t.Errorf("artifact_id = %q, want %q", info.ArtifactID, "a")
	}
	if info.SourcesDir != filepath.Join(root, "a", "src", "main", "java") {
		t.Errorf("sources_dir = %q, unexpected", info.SourcesDir)
	}
}

func TestRunResolve_noWorkspace(t *testing.T) {
	root := setupTree(t)

	out, err := execute(t, "resolve", "--no-workspace", root)
	if err != nil {
		t.Fatalf("resolve --no-workspace failed: %v", err)
	}
	if strings.Contains(out, "workspace:") {
		t.Errorf("output = %q, should not mention a workspace", out)
	}
}

func TestRunResolve_conflictingFormats(t *testing.T) {
	root := setupTree(t)

	_, err := execute(t, "resolve", "--json", "--yaml", root)
	if err == nil {
		t.Fatal("resolve should reject --json together with --yaml")
	}
}
