package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"pmdeck/internal/model"
	"pmdeck/internal/query"
	"pmdeck/internal/store"

	"github.com/charmbracelet/lipgloss"
)

// viewDashboardBody renders the overview: stat cards, the status
// distribution, the signed-in user's projects and a short focus list.
func (m appModel) viewDashboardBody(width, height int) string {
	visible := m.projects.Visible()
	stats := store.Stats(visible, m.sess.Users())

	var b strings.Builder
	b.WriteString("\n" + m.renderStatCards(stats, width) + "\n\n")
	b.WriteString(m.renderStatusBars(visible, width) + "\n\n")
	b.WriteString(m.renderMyProjects(width) + "\n\n")
	b.WriteString(m.renderTodayFocus(visible, width) + "\n\n")
	b.WriteString(m.renderRecentProjects(visible, width) + "\n\n")
	b.WriteString(m.renderTeamActivity(width))
	return b.String()
}

func (m appModel) renderStatCards(stats model.DashboardStats, width int) string {
	card := func(label, value string) string {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCardBorder).
			Padding(0, 2).
			Render(lipgloss.NewStyle().Bold(true).Render(value) + "\n" + styleMuted().Render(label))
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("projects", fmt.Sprintf("%d", stats.TotalProjects)),
		" ",
		card("active", fmt.Sprintf("%d", stats.ActiveProjects)),
		" ",
		card("completed", fmt.Sprintf("%d", stats.CompletedProjects)),
		" ",
		card("members", fmt.Sprintf("%d", stats.TotalUsers)),
		" ",
		card("budget", formatBudget(stats.TotalBudget)),
	)
	return cards
}

// renderStatusBars draws a one-line-per-status distribution chart.
func (m appModel) renderStatusBars(projects []model.Project, width int) string {
	counts := store.StatusCounts(projects)
	total := len(projects)
	barWidth := width - 30
	if barWidth < 10 {
		barWidth = 10
	}

	var rows []string
	rows = append(rows, lipgloss.NewStyle().Bold(true).Render(" Project status"))
	for _, s := range model.Statuses() {
		n := counts[s]
		filled := 0
		if total > 0 {
			filled = n * barWidth / total
		}
		bar := styleBadge(statusColors[s]).Render(strings.Repeat("█", filled)) +
			styleMuted().Render(strings.Repeat("░", barWidth-filled))
		rows = append(rows, fmt.Sprintf(" %-10s %s %d", s, bar, n))
	}
	return strings.Join(rows, "\n")
}

// renderMyProjects lists the current user's assignments, newest first,
// narrowed by the dashboard search box.
func (m appModel) renderMyProjects(width int) string {
	user, ok := m.sess.Current()
	if !ok {
		return ""
	}

	var mine []model.Project
	for _, p := range m.projects.Visible() {
		if p.Assigned(user.ID) || p.CreatedBy == user.ID {
			mine = append(mine, p)
		}
	}
	mine = query.Projects(mine, query.Filter{
		Query:    m.dashSearch.Value(),
		Status:   query.All,
		Priority: query.All,
	})

	var rows []string
	title := lipgloss.NewStyle().Bold(true).Render(" My projects")
	rows = append(rows, title+"   "+m.dashSearch.View())
	if len(mine) == 0 {
		rows = append(rows, styleMuted().Render("   nothing assigned to you"))
		return strings.Join(rows, "\n")
	}
	const maxRows = 5
	for i, p := range mine {
		if i >= maxRows {
			rows = append(rows, styleMuted().Render(fmt.Sprintf("   ... and %d more", len(mine)-maxRows)))
			break
		}
		line := fmt.Sprintf("   %s  %s %s  %s",
			fitLine(p.Name, 32), statusBadge(p.Status), priorityBadge(p.Priority),
			styleMuted().Render(progressBar(p.Progress, 12)))
		rows = append(rows, fitLine(line, width))
	}
	return strings.Join(rows, "\n")
}

// renderTodayFocus surfaces urgent work: high or critical priority projects,
// or anything due within a week.
func (m appModel) renderTodayFocus(projects []model.Project, width int) string {
	now := time.Now()
	var urgent []model.Project
	for _, p := range projects {
		if p.Status != model.StatusActive {
			continue
		}
		days := p.DaysLeft(now)
		if p.Priority == model.PriorityHigh || p.Priority == model.PriorityCritical || (days >= 0 && days <= 7) {
			urgent = append(urgent, p)
		}
	}

	var rows []string
	rows = append(rows, lipgloss.NewStyle().Bold(true).Render(" Today's focus"))
	if len(urgent) == 0 {
		rows = append(rows, styleMuted().Render("   nothing urgent"))
		return strings.Join(rows, "\n")
	}
	const maxRows = 4
	for i, p := range urgent {
		if i >= maxRows {
			break
		}
		due := dueLabel(p.DaysLeft(now))
		line := fmt.Sprintf("   %s  %s  %s", fitLine(p.Name, 32), priorityBadge(p.Priority), styleMuted().Render(due))
		rows = append(rows, fitLine(line, width))
	}
	return strings.Join(rows, "\n")
}

// renderRecentProjects lists the newest records by creation time.
func (m appModel) renderRecentProjects(projects []model.Project, width int) string {
	recent := append([]model.Project(nil), projects...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}

	var rows []string
	rows = append(rows, lipgloss.NewStyle().Bold(true).Render(" Recent projects"))
	for _, p := range recent {
		line := fmt.Sprintf("   %s  %s  %s",
			fitLine(p.Name, 32), statusBadge(p.Status),
			styleMuted().Render("created "+p.CreatedAt.Format("2006-01-02")))
		rows = append(rows, fitLine(line, width))
	}
	return strings.Join(rows, "\n")
}

// renderTeamActivity shows a short strip of active roster members.
func (m appModel) renderTeamActivity(width int) string {
	var rows []string
	rows = append(rows, lipgloss.NewStyle().Bold(true).Render(" Team activity"))
	shown := 0
	for _, u := range m.sess.Users() {
		if !u.IsActive {
			continue
		}
		line := fmt.Sprintf("   ● %s %s  %s",
			lipgloss.NewStyle().Bold(true).Render(u.Initials()),
			u.FullName(), styleMuted().Render(u.Role))
		rows = append(rows, fitLine(line, width))
		shown++
		if shown == 4 {
			break
		}
	}
	return strings.Join(rows, "\n")
}

func dueLabel(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("overdue by %dd", -days)
	case days == 0:
		return "due today"
	default:
		return fmt.Sprintf("due in %dd", days)
	}
}

func progressBar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf(" %d%%", pct)
}

func formatBudget(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("$%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("$%.0fK", v/1_000)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}
