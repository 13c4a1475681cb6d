package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// viewLoginScreen renders the centered sign-in card shown until a session
// exists.
func (m appModel) viewLoginScreen() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("pmdeck")
	sub := styleMuted().Render("Sign in to your workspace")

	label := func(focused bool, text string) string {
		if focused {
			return lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render(text)
		}
		return styleMuted().Render(text)
	}

	rows := []string{
		title,
		sub,
		"",
		label(m.loginFocus == loginFieldEmail, "Email"),
		m.emailInput.View(),
		"",
		label(m.loginFocus == loginFieldPassword, "Password"),
		m.passwordInput.View(),
	}
	if m.loginErr != "" {
		rows = append(rows, "", lipgloss.NewStyle().Foreground(colorErrorFg).Render(m.loginErr))
	}
	rows = append(rows, "", styleMuted().Render("tab: switch field   enter: sign in   ctrl+c: quit"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Padding(1, 3).
		Width(46).
		Render(strings.Join(rows, "\n"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
