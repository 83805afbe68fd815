package pom

import "encoding/xml"

// Model represents the raw content of a single pom.xml.
type Model struct {
	XMLName    xml.Name `xml:"project"`
	GroupID    string   `xml:"groupId"`
	ArtifactID string   `xml:"artifactId"`
	Version    string   `xml:"version"`
	Packaging  string   `xml:"packaging"`
	Parent     *Parent  `xml:"parent"`
	Modules    []string `xml:"modules>module"`
	Build      *Build   `xml:"build"`

	// Path is the location the model was read from. Empty when the model
	// was parsed from memory.
	Path string `xml:"-"`
}

// Parent is a reference to the parent project a pom inherits from.
type Parent struct {
	GroupID      string `xml:"groupId"`
	ArtifactID   string `xml:"artifactId"`
	Version      string `xml:"version"`
	RelativePath string `xml:"relativePath"`
}

// Build holds the path overrides of the build section.
type Build struct {
	Directory       string     `xml:"directory"`
	SourceDirectory string     `xml:"sourceDirectory"`
	Resources       []Resource `xml:"resources>resource"`
}

// Resource is a single resource directory declaration.
type Resource struct {
	Directory string `xml:"directory"`
}

// EffectiveGroupID returns the declared groupId, falling back to the parent
// reference. Empty when neither supplies one.
func (m *Model) EffectiveGroupID() string {
	if m.GroupID != "" {
		return m.GroupID
	}
	if m.Parent != nil {
		return m.Parent.GroupID
	}
	return ""
}

// EffectiveVersion returns the declared version, falling back to the parent
// reference. Empty when neither supplies one.
func (m *Model) EffectiveVersion() string {
	if m.Version != "" {
		return m.Version
	}
	if m.Parent != nil {
		return m.Parent.Version
	}
	return ""
}

// EffectivePackaging returns the declared packaging, defaulting to "jar".
func (m *Model) EffectivePackaging() string {
	if m.Packaging != "" {
		return m.Packaging
	}
	return "jar"
}

// SourceDirectory returns the build source directory override, or empty
// when the pom does not declare one.
func (m *Model) SourceDirectory() string {
	if m.Build == nil {
		return ""
	}
	return m.Build.SourceDirectory
}

// OutputDirectory returns the build output directory override, or empty
// when the pom does not declare one.
func (m *Model) OutputDirectory() string {
	if m.Build == nil {
		return ""
	}
	return m.Build.Directory
}

// ResourceDirectory returns the first declared resource directory, or empty
// when the pom declares none.
func (m *Model) ResourceDirectory() string {
	if m.Build == nil || len(m.Build.Resources) == 0 {
		return ""
	}
	return m.Build.Resources[0].Directory
}
