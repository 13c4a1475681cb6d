package tui

import (
	"fmt"
	"strings"
	"time"

	"pmdeck/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// viewProjectsBody renders the filter bar, the current page of project cards
// and the pagination line.
func (m appModel) viewProjectsBody(width, height int) string {
	var b strings.Builder
	b.WriteString(m.projectsFilterBar(width) + "\n\n")

	page := m.pageRecords()
	if len(page) == 0 {
		b.WriteString(styleMuted().Render("  No projects found"))
		return b.String()
	}

	for i, p := range page {
		b.WriteString(m.renderProjectCard(p, width, i == m.cursor))
		b.WriteString("\n")
	}

	total := len(m.filtered)
	b.WriteString(styleMuted().Render(fmt.Sprintf("  page %d/%d   %d project(s)",
		m.pager.Current(), m.pager.PageCount(total), total)))
	return b.String()
}

func (m appModel) projectsFilterBar(width int) string {
	filter := func(label, value string) string {
		st := styleMuted()
		if value != "all" {
			st = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
		}
		return st.Render(fmt.Sprintf("%s:%s", label, value))
	}
	line := " " + m.searchInput.View() + "   " +
		filter("s", m.statusFilter) + "  " + filter("p", m.priorityFilter)
	return fitLine(line, width)
}

// renderProjectCard draws one two-line row: name with badges, then progress,
// due date, budget, team size and technology tags.
func (m appModel) renderProjectCard(p model.Project, width int, selected bool) string {
	marker := "  "
	nameStyle := lipgloss.NewStyle().Bold(true)
	if selected {
		marker = lipgloss.NewStyle().Foreground(colorAccent).Render("> ")
		nameStyle = nameStyle.Foreground(colorSelectedFg).Background(colorSelectedBg)
	}

	top := marker + nameStyle.Render(fitLine(p.Name, 36)) +
		"  " + statusBadge(p.Status) + " " + priorityBadge(p.Priority)

	days := p.DaysLeft(time.Now())
	due := dueLabel(days)
	if p.Status == model.StatusCompleted {
		due = "done"
	}
	tech := strings.Join(p.Technologies, ", ")
	if len(p.Technologies) > 3 {
		tech = strings.Join(p.Technologies[:3], ", ") + fmt.Sprintf(" +%d", len(p.Technologies)-3)
	}
	bottom := "    " + progressBar(p.Progress, 14) +
		"  " + due +
		"  " + formatBudget(p.Budget) +
		fmt.Sprintf("  %d member(s)", len(p.AssignedUsers))
	if tech != "" {
		bottom += "  " + tech
	}

	return fitLine(top, width) + "\n" + fitLine(styleMuted().Render(bottom), width)
}
