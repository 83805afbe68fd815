package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/psycho-ir/quarkus/internal/pom"
)

// descriptorName is the only file probed for project-tree membership.
const descriptorName = "pom.xml"

// Project is one local, buildable module: its coordinates, directory, parsed
// descriptor and derived build paths. Immutable after construction.
type Project struct {
	GroupID    string
	ArtifactID string
	Version    string
	Dir        string // absolute, cleaned
	Model      *pom.Model

	ws *Workspace // nil when loaded standalone
}

// loadProject reads the descriptor in dir and builds a project record.
// When ws is non-nil the project is registered before returning.
func loadProject(dir string, ws *Workspace) (*Project, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving project directory %s: %w", dir, err)
	}

	pomPath := filepath.Join(dir, descriptorName)
	model, err := pom.Read(pomPath)
	if err != nil {
		return nil, err
	}

	groupID := model.EffectiveGroupID()
	if groupID == "" {
		return nil, &MissingCoordinateError{Path: pomPath, Field: "groupId"}
	}
	version := model.EffectiveVersion()
	if version == "" {
		return nil, &MissingCoordinateError{Path: pomPath, Field: "version"}
	}

	p := &Project{
		GroupID:    groupID,
		ArtifactID: model.ArtifactID,
		Version:    version,
		Dir:        dir,
		Model:      model,
		ws:         ws,
	}

	if ws != nil {
		var mod time.Time
		if info, statErr := os.Stat(pomPath); statErr == nil {
			mod = info.ModTime()
		}
		if err := ws.add(p, mod); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Key returns the project's workspace coordinate.
func (p *Project) Key() Key {
	return Key{GroupID: p.GroupID, ArtifactID: p.ArtifactID}
}

// GAV returns the project identity as group:artifact:version.
func (p *Project) GAV() string {
	return fmt.Sprintf("%s:%s:%s", p.GroupID, p.ArtifactID, p.Version)
}

// Packaging returns the declared packaging, defaulting to "jar".
func (p *Project) Packaging() string {
	return p.Model.EffectivePackaging()
}

// Workspace returns the registry this project was loaded into, or nil when
// the project was resolved standalone.
func (p *Project) Workspace() *Workspace {
	return p.ws
}

// OutputDir returns the build output directory, conventionally
// <dir>/target.
func (p *Project) OutputDir() string {
	if out := p.Model.OutputDirectory(); out != "" {
		return p.resolvePath(out)
	}
	return filepath.Join(p.Dir, "target")
}

// ClassesDir returns the compiled-classes directory under the build output.
func (p *Project) ClassesDir() string {
	return filepath.Join(p.OutputDir(), "classes")
}

// SourcesDir returns the source directory, conventionally
// <dir>/src/main/java.
func (p *Project) SourcesDir() string {
	if src := p.Model.SourceDirectory(); src != "" {
		return p.resolvePath(src)
	}
	return filepath.Join(p.Dir, "src", "main", "java")
}

// ResourcesDir returns the resource directory, conventionally
// <dir>/src/main/resources. Only the first declared resource directory is
// honored.
func (p *Project) ResourcesDir() string {
	if res := p.Model.ResourceDirectory(); res != "" {
		return p.resolvePath(res)
	}
	return filepath.Join(p.Dir, "src", "main", "resources")
}

// resolvePath anchors a relative descriptor path at the project directory.
func (p *Project) resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.Dir, path)
}
