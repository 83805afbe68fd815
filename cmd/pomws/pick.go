package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/psycho-ir/quarkus/internal/workspace"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

// pickModel is the bubbletea model for the project picker: a filter input
// over the workspace's projects plus cursor selection.
type pickModel struct {
	input    textinput.Model
	projects []*workspace.Project
	filtered []*workspace.Project
	cursor   int
	choice   *workspace.Project
	aborted  bool
}

func newPickModel(projects []*workspace.Project) pickModel {
	ti := textinput.New()
	ti.Placeholder = "artifact"
	ti.Focus()
	return pickModel{
		input:    ti,
		projects: projects,
		filtered: projects,
	}
}

func (m pickModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if m.cursor < len(m.filtered) {
				m.choice = m.filtered[m.cursor]
				return m, tea.Quit
			}
			return m, nil
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filtered = filterProjects(m.projects, m.input.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
	return m, cmd
}

func (m pickModel) View() string {
	if m.choice != nil || m.aborted {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pick a project") + "\n")
	b.WriteString(m.input.View() + "\n")
	for i, p := range m.filtered {
		line := fmt.Sprintf("%s  %s", p.GAV(), dimStyle.Render(p.Dir))
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("no matching project") + "\n")
	}
	return b.String()
}

// filterProjects keeps projects whose artifactId or GAV contains the filter,
// case-insensitively. An empty filter keeps everything.
func filterProjects(projects []*workspace.Project, filter string) []*workspace.Project {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return projects
	}
	var matched []*workspace.Project
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.ArtifactID), filter) ||
			strings.Contains(strings.ToLower(p.GAV()), filter) {
			matched = append(matched, p)
		}
	}
	return matched
}

// pickProject runs the interactive picker and returns the chosen project.
func pickProject(projects []*workspace.Project) (*workspace.Project, error) {
	result, err := tea.NewProgram(newPickModel(projects)).Run()
	if err != nil {
		return nil, err
	}
	m := result.(pickModel)
	if m.aborted {
		return nil, fmt.Errorf("user aborted")
	}
	return m.choice, nil
}
