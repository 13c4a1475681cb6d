package tui

import (
	"fmt"
	"io"
	"strings"

	"pmdeck/internal/model"
	"pmdeck/internal/query"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type rosterItem struct {
	user model.User
}

func (i rosterItem) FilterValue() string { return i.user.FullName() }

// rosterDelegate renders one roster row: initials, name, role, position and
// email, with an activity dot.
type rosterDelegate struct{}

func (d rosterDelegate) Height() int                             { return 2 }
func (d rosterDelegate) Spacing() int                            { return 1 }
func (d rosterDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d rosterDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(rosterItem)
	if !ok {
		return
	}
	contentW := m.Width()
	if contentW < 10 {
		return
	}

	u := it.user
	dot := "○"
	if u.IsActive {
		dot = "●"
	}
	head := fmt.Sprintf("%s %s  %s", dot, u.FullName(), positionTag(u.Position))
	sub := fmt.Sprintf("  %s · %s · joined %s", u.Role, u.Email, u.JoinDate)

	headStyle := lipgloss.NewStyle().Bold(true)
	subStyle := styleMuted()
	if index == m.Index() {
		headStyle = headStyle.Foreground(colorSelectedFg).Background(colorSelectedBg)
		subStyle = subStyle.Background(colorSelectedBg)
	}

	line1 := padANSI(head, contentW)
	line2 := padANSI(sub, contentW)
	fmt.Fprint(w, headStyle.Render(line1)+"\n"+subStyle.Render(line2))
}

func positionTag(p string) string {
	return styleMuted().Render("[" + p + "]")
}

func padANSI(s string, width int) string {
	w := xansi.StringWidth(s)
	if w > width {
		return xansi.Cut(s, 0, width)
	}
	return s + strings.Repeat(" ", width-w)
}

func newRosterList() list.Model {
	l := list.New(nil, rosterDelegate{}, 0, 0)
	l.Title = "Team"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false) // search goes through the query pipeline
	l.SetShowHelp(false)
	return l
}

// refreshTeam recomputes the roster view from the session's user list and the
// team search/role filters.
func (m *appModel) refreshTeam() {
	members := query.Users(m.sess.Users(), m.teamSearch.Value(), m.roleFilter)
	items := make([]list.Item, 0, len(members))
	for _, u := range members {
		items = append(items, rosterItem{user: u})
	}
	m.teamList.SetItems(items)
}

// cycleRole advances the role filter through all -> each distinct role -> all.
func (m *appModel) cycleRole() {
	roles := query.Roles(m.sess.Users())
	if len(roles) == 0 {
		return
	}
	if m.roleFilter == query.All {
		m.roleFilter = roles[0]
		return
	}
	for i, r := range roles {
		if r == m.roleFilter {
			if i+1 < len(roles) {
				m.roleFilter = roles[i+1]
			} else {
				m.roleFilter = query.All
			}
			return
		}
	}
	m.roleFilter = query.All
}

func (m *appModel) viewTeamBody(width, height int) string {
	filters := m.teamFilterBar(width)
	listH := height - lipgloss.Height(filters) - 1
	if listH < 4 {
		listH = 4
	}
	m.teamList.SetSize(width, listH)
	return lipgloss.JoinVertical(lipgloss.Left, filters, "", m.teamList.View())
}

func (m *appModel) teamFilterBar(width int) string {
	search := m.teamSearch.View()
	role := "role: " + m.roleFilter
	if m.roleFilter == query.All {
		role = "role: all"
	}
	bar := search + "   " + styleMuted().Render(role)
	hint := styleMuted().Render("/: search   r: cycle role")
	return fitLine(bar, width) + "\n" + fitLine(hint, width)
}
