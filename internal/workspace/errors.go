package workspace

import (
	"errors"
	"fmt"
)

// ErrNoDescriptor reports that no pom.xml was found between a path and the
// filesystem root.
var ErrNoDescriptor = errors.New("no pom.xml found")

// ErrProjectNotFound reports that none of the candidate workspace roots
// loaded a project for the requested directory.
var ErrProjectNotFound = errors.New("current project not found among the loaded local projects")

// MissingCoordinateError reports a pom whose groupId or version is declared
// neither directly nor on its parent reference.
type MissingCoordinateError struct {
	Path  string // pom.xml location
	Field string // "groupId" or "version"
}

func (e *MissingCoordinateError) Error() string {
	return fmt.Sprintf("failed to determine %s for %s", e.Field, e.Path)
}

// DuplicateProjectError reports two projects in one workspace sharing a
// (groupId, artifactId) coordinate pair.
type DuplicateProjectError struct {
	Key      Key
	Dir      string // directory of the rejected project
	Existing string // directory of the already registered project
}

func (e *DuplicateProjectError) Error() string {
	return fmt.Sprintf("duplicate project %s at %s: already registered at %s", e.Key, e.Dir, e.Existing)
}
