package workspace

import (
	"sort"
	"time"
)

// Key identifies a project within a workspace. Version is intentionally not
// part of the identity.
type Key struct {
	GroupID    string
	ArtifactID string
}

func (k Key) String() string {
	return k.GroupID + ":" + k.ArtifactID
}

// Workspace is the registry of local projects loaded during one resolution
// call. It is populated by the tree loader and read-only afterwards; it is
// not safe for concurrent writers.
type Workspace struct {
	projects     map[Key]*Project
	modTimes     map[Key]time.Time
	lastModified time.Time
}

// NewWorkspace creates an empty project registry.
func NewWorkspace() *Workspace {
	return &Workspace{
		projects: make(map[Key]*Project),
		modTimes: make(map[Key]time.Time),
	}
}

// add registers a project together with its descriptor modification time.
// A second project with the same coordinates is rejected.
func (w *Workspace) add(p *Project, modTime time.Time) error {
	key := p.Key()
	if existing, ok := w.projects[key]; ok {
		return &DuplicateProjectError{Key: key, Dir: p.Dir, Existing: existing.Dir}
	}
	w.projects[key] = p
	w.modTimes[key] = modTime
	if modTime.After(w.lastModified) {
		w.lastModified = modTime
	}
	return nil
}

// Get returns the registered project for the given coordinates, or nil.
func (w *Workspace) Get(groupID, artifactID string) *Project {
	return w.projects[Key{GroupID: groupID, ArtifactID: artifactID}]
}

// Projects returns all registered projects ordered by coordinate.
func (w *Workspace) Projects() []*Project {
	ps := make([]*Project, 0, len(w.projects))
	for _, p := range w.projects {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool {
		return ps[i].Key().String() < ps[j].Key().String()
	})
	return ps
}

// Len returns the number of registered projects.
func (w *Workspace) Len() int {
	return len(w.projects)
}

// DescriptorModTime returns the recorded modification time of a registered
// project's pom.xml.
func (w *Workspace) DescriptorModTime(k Key) (time.Time, bool) {
	t, ok := w.modTimes[k]
	return t, ok
}

// LastModified returns the most recent descriptor modification time seen
// while loading the workspace. Recorded for staleness checks; not
// interpreted here.
func (w *Workspace) LastModified() time.Time {
	return w.lastModified
}
