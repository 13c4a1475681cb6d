package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	if m.view == viewLogin {
		return m.viewLoginScreen()
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	switch m.view {
	case viewDashboard:
		body = m.viewDashboardBody(m.width, bodyHeight)
	case viewProjects:
		body = m.viewProjectsBody(m.width, bodyHeight)
	case viewDetail:
		body = m.viewDetailBody(m.width, bodyHeight)
	case viewTeam:
		body = m.viewTeamBody(m.width, bodyHeight)
	}
	body = normalizePane(body, m.width, bodyHeight)

	screen := header + "\n" + body + "\n" + footer

	switch m.modal {
	case modalForm:
		return placeModal(screen, m.renderFormModal(), m.width, m.height)
	case modalFormConfirm:
		return placeModal(screen, renderConfirmModal(
			m.width, "Confirm", m.formCtl.ConfirmPrompt(), "Confirm", "Cancel", m.confirmFocus,
		), m.width, m.height)
	case modalConfirmDelete:
		body := "Delete this project? This cannot be undone."
		if id, ok := m.deleteGate.Pending(); ok {
			if p, found := m.projects.Lookup(id); found {
				body = fmt.Sprintf("Delete %q? This cannot be undone.", p.Name)
			}
		}
		return placeModal(screen, renderConfirmModal(
			m.width, "Delete Project", body, "Delete", "Cancel", m.confirmFocus,
		), m.width, m.height)
	}
	return screen
}

// renderHeader draws the one-line chrome: app name, the view tabs and the
// signed-in user.
func (m appModel) renderHeader() string {
	name := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("pmdeck")

	tab := func(v view, label string) string {
		if m.view == v || (v == viewProjects && m.view == viewDetail) {
			return lipgloss.NewStyle().Bold(true).Foreground(colorSelectedFg).Background(colorSelectedBg).Render(" " + label + " ")
		}
		return styleMuted().Render(" " + label + " ")
	}
	tabs := tab(viewDashboard, "1 dashboard") + tab(viewProjects, "2 projects") + tab(viewTeam, "3 team")

	who := ""
	if u, ok := m.sess.Current(); ok {
		who = styleMuted().Render(u.FullName() + " (" + u.Position + ")")
	}

	left := name + "  " + tabs
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(who)
	if gap < 1 {
		gap = 1
	}
	return fitLine(left+strings.Repeat(" ", gap)+who, m.width)
}

func (m appModel) renderFooter() string {
	if m.flash != "" {
		return fitLine(lipgloss.NewStyle().Foreground(colorSuccessFg).Render(" "+m.flash), m.width)
	}

	var hints string
	switch m.view {
	case viewDashboard:
		hints = "/: search   n: new project   1/2/3: views   L: logout   q: quit"
	case viewProjects:
		hints = "/: search   s/p: filters   ←/→: page   enter: open   n/e/d: new/edit/delete   q: quit"
	case viewDetail:
		hints = "e: edit   d: delete   esc: back   q: quit"
	case viewTeam:
		hints = "/: search   r: role filter   ↑/↓: move   q: quit"
	}
	return fitLine(styleMuted().Render(" "+hints), m.width)
}
