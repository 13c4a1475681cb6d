package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// viewDetailBody renders the single-project page: description as markdown,
// timeline, budget, technologies and the assignment roster.
func (m appModel) viewDetailBody(width, height int) string {
	p, ok := m.projects.Lookup(m.detailID)
	if !ok {
		return styleMuted().Render("\n  Project not found. It may have been deleted.")
	}

	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Render(" " + p.Name)
	b.WriteString("\n" + fitLine(title+"  "+statusBadge(p.Status)+" "+priorityBadge(p.Priority), width) + "\n\n")

	bodyW := width - 4
	if bodyW > 80 {
		bodyW = 80
	}
	b.WriteString(renderMarkdown(p.Description, bodyW) + "\n")

	days := p.DaysLeft(time.Now())
	rows := []string{
		fmt.Sprintf(" Timeline      %s → %s  (%s)", p.StartDate, p.EndDate, dueLabel(days)),
		fmt.Sprintf(" Progress      %s", progressBar(p.Progress, 20)),
		fmt.Sprintf(" Budget        %s", formatBudget(p.Budget)),
	}
	if len(p.Technologies) > 0 {
		rows = append(rows, " Technologies  "+strings.Join(p.Technologies, ", "))
	}
	if creator, ok := m.sess.User(p.CreatedBy); ok {
		rows = append(rows, fmt.Sprintf(" Created       %s by %s", p.CreatedAt.Format("2006-01-02"), creator.FullName()))
	}
	for _, r := range rows {
		b.WriteString(fitLine(styleMuted().Render(r), width) + "\n")
	}

	b.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render(" Team") + "\n")
	if len(p.AssignedUsers) == 0 {
		b.WriteString(styleMuted().Render("   nobody assigned") + "\n")
	}
	for _, id := range p.AssignedUsers {
		u, ok := m.sess.User(id)
		if !ok {
			continue
		}
		line := fmt.Sprintf("   %s %s  %s",
			lipgloss.NewStyle().Bold(true).Render(u.Initials()),
			u.FullName(), styleMuted().Render(u.Position))
		b.WriteString(fitLine(line, width) + "\n")
	}
	return b.String()
}
