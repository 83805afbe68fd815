package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolve builds a project record for dir without workspace semantics: no
// registry is created and declared modules are not loaded.
func Resolve(dir string) (*Project, error) {
	p, err := loadProject(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("resolving local project at %s: %w", dir, err)
	}
	return p, nil
}

// ResolveWithWorkspace locates the workspace containing startDir and returns
// its project record. Candidate roots are tried outermost-first; the first
// root whose module tree reaches startDir wins, so the largest enclosing
// workspace is preferred when it actually declares the start directory.
// Every project in the winning tree is registered in the returned record's
// workspace.
func ResolveWithWorkspace(startDir string) (*Project, error) {
	start, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("resolving start directory %s: %w", startDir, err)
	}

	for _, root := range rootCandidates(start) {
		ws := NewWorkspace()
		p, err := loadTree(ws, root, start)
		if err != nil {
			return nil, fmt.Errorf("resolving local projects for %s: %w", start, err)
		}
		if p != nil {
			return p, nil
		}
	}
	return nil, fmt.Errorf("resolving local projects for %s: %w", start, ErrProjectNotFound)
}

// LocateProjectDir walks upward from path and returns the nearest directory
// containing a pom.xml.
func LocateProjectDir(path string) (string, error) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	for {
		if hasDescriptor(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("locating %s for %s: %w", descriptorName, path, ErrNoDescriptor)
		}
		dir = parent
	}
}

// rootCandidates returns every ancestor of start (start included) containing
// a pom.xml, ordered from the topmost ancestor down to start.
func rootCandidates(start string) []string {
	var dirs []string
	dir := start
	for {
		if hasDescriptor(dir) {
			dirs = append(dirs, dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	for i, j := 0, len(dirs)-1; i < j; i, j = i+1, j-1 {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs
}

func hasDescriptor(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, descriptorName))
	return err == nil
}

// loadTree loads the project in dir into ws, then recurses into each module
// the descriptor declares. It returns the project matching target, from this
// node or any descendant, or nil when the tree does not reach target. An
// empty target means "load only, don't search". Once a match is found,
// sibling recursions are no longer searching: a workspace yields exactly one
// project for the originally requested directory, but every module is still
// loaded into the registry. Any descriptor failure in a module aborts the
// whole tree load.
func loadTree(ws *Workspace, dir, target string) (*Project, error) {
	p, err := loadProject(dir, ws)
	if err != nil {
		return nil, err
	}

	var match *Project
	if target != "" && p.Dir == target {
		match = p
	}

	childTarget := target
	if match != nil {
		childTarget = ""
	}
	for _, module := range p.Model.Modules {
		loaded, err := loadTree(ws, filepath.Join(p.Dir, module), childTarget)
		if err != nil {
			return nil, err
		}
		if loaded != nil && match == nil {
			match = loaded
			childTarget = ""
		}
	}
	return match, nil
}
