// Package tui implements the interactive dashboard: a full-screen Bubble Tea
// program with login, project browsing and editing, and the team roster.
package tui

import (
	"fmt"

	"pmdeck/internal/auth"
	"pmdeck/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive dashboard and blocks until the user quits.
func Run(dir string, sess *auth.Session, projects *store.ProjectStore) error {
	applyColorProfilePreference()
	applyThemePreference()

	p := tea.NewProgram(newAppModel(dir, sess, projects), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
