package tui

import (
	"context"
	"fmt"

	"pmdeck/internal/model"
	"pmdeck/internal/query"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.teamList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.saveTUIState()
			return m, tea.Quit
		}

		var (
			next appModel
			cmd  tea.Cmd
		)
		switch m.modal {
		case modalForm:
			next, cmd = m.updateFormModal(msg)
			return next, cmd
		case modalFormConfirm:
			next, cmd = m.updateFormConfirm(msg)
			return next, cmd
		case modalConfirmDelete:
			next, cmd = m.updateConfirmDelete(msg)
			return next, cmd
		}

		switch m.view {
		case viewLogin:
			next, cmd = m.updateLogin(msg)
		case viewDashboard:
			next, cmd = m.updateDashboard(msg)
		case viewProjects:
			next, cmd = m.updateProjects(msg)
		case viewDetail:
			next, cmd = m.updateDetail(msg)
		case viewTeam:
			next, cmd = m.updateTeam(msg)
		default:
			next = m
		}
		return next, cmd
	}
	return m, nil
}

// handleGlobalKey covers the keys shared by every logged-in view. Returns
// handled=false when the key should fall through to the view.
func (m appModel) handleGlobalKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		m.saveTUIState()
		return m, tea.Quit, true
	case "1":
		m.gotoView(viewDashboard)
		return m, nil, true
	case "2":
		m.refreshProjects()
		m.gotoView(viewProjects)
		return m, nil, true
	case "3":
		m.refreshTeam()
		m.gotoView(viewTeam)
		return m, nil, true
	case "L":
		_ = m.sess.Logout(context.Background())
		m.view = viewLogin
		m.emailInput.SetValue("")
		m.passwordInput.SetValue("")
		m.loginErr = ""
		m.loginFocus = loginFieldEmail
		m.emailInput.Focus()
		m.passwordInput.Blur()
		return m, nil, true
	}
	return m, nil, false
}

func (m appModel) updateLogin(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		if m.loginFocus == loginFieldEmail {
			m.loginFocus = loginFieldPassword
			m.emailInput.Blur()
			m.passwordInput.Focus()
		} else {
			m.loginFocus = loginFieldEmail
			m.passwordInput.Blur()
			m.emailInput.Focus()
		}
		return m, nil
	case "enter":
		user, err := m.sess.Login(context.Background(), m.emailInput.Value(), m.passwordInput.Value())
		if err != nil {
			m.loginErr = err.Error()
			return m, nil
		}
		m.loginErr = ""
		m.passwordInput.SetValue("")
		m.refreshProjects()
		m.refreshTeam()
		m.gotoView(viewDashboard)
		return m, m.setFlash(fmt.Sprintf("Welcome back, %s", user.FirstName))
	}

	var cmd tea.Cmd
	if m.loginFocus == loginFieldEmail {
		m.emailInput, cmd = m.emailInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateDashboard(msg tea.KeyMsg) (appModel, tea.Cmd) {
	if m.dashSearchFocused {
		switch msg.String() {
		case "esc", "enter":
			m.dashSearchFocused = false
			m.dashSearch.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.dashSearch, cmd = m.dashSearch.Update(msg)
		return m, cmd
	}

	if next, cmd, ok := m.handleGlobalKey(msg); ok {
		return next, cmd
	}

	switch msg.String() {
	case "/":
		m.dashSearchFocused = true
		m.dashSearch.Focus()
		return m, nil
	case "n":
		m.openCreateForm()
		return m, nil
	}
	return m, nil
}

func (m appModel) updateProjects(msg tea.KeyMsg) (appModel, tea.Cmd) {
	if m.searchFocused {
		switch msg.String() {
		case "esc", "enter":
			m.searchFocused = false
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.resetPage()
		return m, cmd
	}

	if next, cmd, ok := m.handleGlobalKey(msg); ok {
		return next, cmd
	}

	switch msg.String() {
	case "/":
		m.searchFocused = true
		m.searchInput.Focus()
		return m, nil
	case "s":
		m.cycleStatusFilter()
		m.resetPage()
		return m, nil
	case "p":
		m.cyclePriorityFilter()
		m.resetPage()
		return m, nil
	case "left", "h":
		m.pager.Prev()
		m.cursor = 0
		return m, nil
	case "right", "l":
		m.pager.Next(len(m.filtered))
		m.cursor = 0
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.pageRecords())-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if p, ok := m.selectedProject(); ok {
			m.detailID = p.ID
			m.returnView = viewProjects
			m.gotoView(viewDetail)
		}
		return m, nil
	case "n":
		m.openCreateForm()
		return m, nil
	case "e":
		if p, ok := m.selectedProject(); ok {
			m.openEditForm(p)
		}
		return m, nil
	case "d":
		if p, ok := m.selectedProject(); ok {
			m.deleteGate.Request(p.ID)
			m.modal = modalConfirmDelete
			m.confirmFocus = confirmFocusCancel
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.KeyMsg) (appModel, tea.Cmd) {
	if next, cmd, ok := m.handleGlobalKey(msg); ok {
		return next, cmd
	}

	switch msg.String() {
	case "esc", "backspace":
		m.gotoView(m.returnView)
		return m, nil
	case "e":
		if p, ok := m.projects.Lookup(m.detailID); ok {
			m.openEditForm(p)
		}
		return m, nil
	case "d":
		if _, ok := m.projects.Lookup(m.detailID); ok {
			m.deleteGate.Request(m.detailID)
			m.modal = modalConfirmDelete
			m.confirmFocus = confirmFocusCancel
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) updateTeam(msg tea.KeyMsg) (appModel, tea.Cmd) {
	if m.teamSearchFocused {
		switch msg.String() {
		case "esc", "enter":
			m.teamSearchFocused = false
			m.teamSearch.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.teamSearch, cmd = m.teamSearch.Update(msg)
		m.refreshTeam()
		return m, cmd
	}

	if next, cmd, ok := m.handleGlobalKey(msg); ok {
		return next, cmd
	}

	switch msg.String() {
	case "/":
		m.teamSearchFocused = true
		m.teamSearch.Focus()
		return m, nil
	case "r":
		m.cycleRole()
		m.refreshTeam()
		return m, nil
	}

	var cmd tea.Cmd
	m.teamList, cmd = m.teamList.Update(msg)
	return m, cmd
}

// updateConfirmDelete drives the delete confirmation modal. Cancel starts
// focused so a double-press of enter never destroys a record.
func (m appModel) updateConfirmDelete(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "tab", "left", "right":
		m.confirmFocus = m.confirmFocus.toggled()
		return m, nil
	case "esc":
		m.deleteGate.Cancel()
		m.modal = modalNone
		return m, nil
	case "enter":
		if m.confirmFocus == confirmFocusCancel {
			m.deleteGate.Cancel()
			m.modal = modalNone
			return m, nil
		}
		id, _ := m.deleteGate.Pending()
		m.deleteGate.Confirm()
		m.modal = modalNone
		m.refreshProjects()
		if m.view == viewDetail && m.detailID == id {
			m.gotoView(m.returnView)
		}
		return m, m.setFlash("Project deleted")
	}
	return m, nil
}

func (m *appModel) cycleStatusFilter() {
	m.statusFilter = cycleChoice(m.statusFilter, statusChoices())
}

func (m *appModel) cyclePriorityFilter() {
	m.priorityFilter = cycleChoice(m.priorityFilter, priorityChoices())
}

func statusChoices() []string {
	out := []string{query.All}
	for _, s := range model.Statuses() {
		out = append(out, string(s))
	}
	return out
}

func priorityChoices() []string {
	out := []string{query.All}
	for _, p := range model.Priorities() {
		out = append(out, string(p))
	}
	return out
}

func cycleChoice(current string, choices []string) string {
	for i, c := range choices {
		if c == current {
			return choices[(i+1)%len(choices)]
		}
	}
	return choices[0]
}
