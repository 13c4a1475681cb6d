package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"pmdeck/internal/form"
	"pmdeck/internal/model"
	"pmdeck/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type userPickItem struct {
	user     model.User
	assigned bool
}

func (i userPickItem) FilterValue() string { return i.user.FullName() }

type userPickDelegate struct{}

func (d userPickDelegate) Height() int                             { return 1 }
func (d userPickDelegate) Spacing() int                            { return 0 }
func (d userPickDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d userPickDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(userPickItem)
	if !ok {
		return
	}
	mark := "[ ]"
	if it.assigned {
		mark = "[x]"
	}
	line := fmt.Sprintf("%s %s (%s)", mark, it.user.FullName(), it.user.Role)
	line = padANSI(line, m.Width())
	if index == m.Index() {
		line = lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Render(line)
	}
	fmt.Fprint(w, line)
}

func newUserPickList() list.Model {
	l := list.New(nil, userPickDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	return l
}

// openCreateForm opens the form modal in create mode. The commit callback
// owns the record assembly: fresh id, active status, zero progress, createdAt
// and createdBy stamped here, never editable afterwards.
func (m *appModel) openCreateForm() {
	user, ok := m.sess.Current()
	if !ok {
		return
	}
	m.formCtl = form.NewCreate(func(res form.Result) error {
		return m.projects.Insert(model.Project{
			ID:            m.projects.NextID(),
			Name:          res.Name,
			Description:   res.Description,
			Status:        model.StatusActive,
			Priority:      res.Priority,
			StartDate:     res.StartDate,
			EndDate:       res.EndDate,
			Budget:        res.Budget,
			Technologies:  res.Technologies,
			AssignedUsers: res.AssignedUsers,
			Progress:      0,
			CreatedAt:     time.Now(),
			CreatedBy:     user.ID,
		})
	})
	m.openFormInputs(m.formCtl.Draft())
}

// openEditForm opens the form modal seeded from the record; re-opening for a
// different record resets the draft wholesale.
func (m *appModel) openEditForm(p model.Project) {
	m.formCtl = form.NewEdit(p.ID, form.DraftFrom(p), func(res form.Result) error {
		return m.projects.Update(p.ID, store.Patch{
			Name:          res.Name,
			Description:   res.Description,
			Priority:      res.Priority,
			StartDate:     res.StartDate,
			EndDate:       res.EndDate,
			Budget:        res.Budget,
			Technologies:  res.Technologies,
			AssignedUsers: res.AssignedUsers,
		})
	})
	m.openFormInputs(m.formCtl.Draft())
}

func (m *appModel) openFormInputs(d form.Draft) {
	m.modal = modalForm
	m.formFocus = formFieldName

	m.nameInput = textinput.New()
	m.nameInput.Placeholder = "Name"
	m.nameInput.CharLimit = 120
	m.nameInput.SetValue(d.Name)

	m.descArea = textarea.New()
	m.descArea.Placeholder = "Description"
	m.descArea.SetHeight(3)
	m.descArea.SetValue(d.Description)

	m.startInput = textinput.New()
	m.startInput.Placeholder = "YYYY-MM-DD"
	m.startInput.CharLimit = 10
	m.startInput.SetValue(d.StartDate)

	m.endInput = textinput.New()
	m.endInput.Placeholder = "YYYY-MM-DD"
	m.endInput.CharLimit = 10
	m.endInput.SetValue(d.EndDate)

	m.budgetInput = textinput.New()
	m.budgetInput.Placeholder = "0"
	m.budgetInput.CharLimit = 20
	m.budgetInput.SetValue(d.Budget)

	m.techInput = textinput.New()
	m.techInput.Placeholder = "React, Node.js, ..."
	m.techInput.CharLimit = 200
	m.techInput.SetValue(d.Technologies)

	m.refreshUserPick()
	m.nameInput.Focus()
}

func (m *appModel) refreshUserPick() {
	if m.formCtl == nil {
		return
	}
	d := m.formCtl.Draft()
	assigned := map[int]bool{}
	for _, id := range d.AssignedUsers {
		assigned[id] = true
	}
	keep := m.userPick.Index()
	items := make([]list.Item, 0, len(m.sess.Users()))
	for _, u := range m.sess.Users() {
		items = append(items, userPickItem{user: u, assigned: assigned[u.ID]})
	}
	m.userPick.SetItems(items)
	if keep >= 0 && keep < len(items) {
		m.userPick.Select(keep)
	}
}

func (m *appModel) closeForm() {
	m.modal = modalNone
	m.formCtl = nil
	m.blurFormInputs()
}

func (m *appModel) blurFormInputs() {
	m.nameInput.Blur()
	m.descArea.Blur()
	m.startInput.Blur()
	m.endInput.Blur()
	m.budgetInput.Blur()
	m.techInput.Blur()
}

// syncDraft copies the current input values into the controller's draft.
// Priority and assigned users are mutated through controller operations, so
// they are preserved as-is.
func (m *appModel) syncDraft() {
	if m.formCtl == nil {
		return
	}
	d := m.formCtl.Draft()
	d.Name = m.nameInput.Value()
	d.Description = m.descArea.Value()
	d.StartDate = m.startInput.Value()
	d.EndDate = m.endInput.Value()
	d.Budget = m.budgetInput.Value()
	d.Technologies = m.techInput.Value()
	m.formCtl.SetDraft(d)
}

func (m *appModel) focusFormField(f formField) {
	m.blurFormInputs()
	m.formFocus = f
	switch f {
	case formFieldName:
		m.nameInput.Focus()
	case formFieldDescription:
		m.descArea.Focus()
	case formFieldStartDate:
		m.startInput.Focus()
	case formFieldEndDate:
		m.endInput.Focus()
	case formFieldBudget:
		m.budgetInput.Focus()
	case formFieldTechnologies:
		m.techInput.Focus()
	}
}

func (m *appModel) cycleFormFocus(back bool) {
	next := m.formFocus
	if back {
		next--
		if next < 0 {
			next = formFieldCount - 1
		}
	} else {
		next++
		if next >= formFieldCount {
			next = 0
		}
	}
	m.focusFormField(next)
}

func (m *appModel) cycleDraftPriority() {
	if m.formCtl == nil {
		return
	}
	d := m.formCtl.Draft()
	ps := model.Priorities()
	for i, p := range ps {
		if p == d.Priority {
			d.Priority = ps[(i+1)%len(ps)]
			m.formCtl.SetDraft(d)
			return
		}
	}
	d.Priority = model.PriorityMedium
	m.formCtl.SetDraft(d)
}

// updateFormModal handles key input while the form modal is open.
func (m appModel) updateFormModal(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return m, nil
	case "tab":
		m.syncDraft()
		m.cycleFormFocus(false)
		return m, nil
	case "shift+tab":
		m.syncDraft()
		m.cycleFormFocus(true)
		return m, nil
	case "ctrl+s":
		m.syncDraft()
		if err := m.formCtl.Submit(); err != nil {
			// Validation failure: the form stays open in Editing; surface the
			// field briefly.
			return m, m.setFlash(err.Error())
		}
		m.modal = modalFormConfirm
		m.confirmFocus = confirmFocusConfirm
		return m, nil
	}

	switch m.formFocus {
	case formFieldPriority:
		switch msg.String() {
		case "left", "right", " ", "enter":
			m.cycleDraftPriority()
		}
		return m, nil
	case formFieldUsers:
		switch msg.String() {
		case " ", "enter":
			if it, ok := m.userPick.SelectedItem().(userPickItem); ok {
				m.formCtl.ToggleUser(it.user.ID)
				m.refreshUserPick()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.userPick, cmd = m.userPick.Update(msg)
		return m, cmd
	case formFieldDescription:
		var cmd tea.Cmd
		m.descArea, cmd = m.descArea.Update(msg)
		return m, cmd
	default:
		var cmd tea.Cmd
		switch m.formFocus {
		case formFieldName:
			m.nameInput, cmd = m.nameInput.Update(msg)
		case formFieldStartDate:
			m.startInput, cmd = m.startInput.Update(msg)
		case formFieldEndDate:
			m.endInput, cmd = m.endInput.Update(msg)
		case formFieldBudget:
			m.budgetInput, cmd = m.budgetInput.Update(msg)
		case formFieldTechnologies:
			m.techInput, cmd = m.techInput.Update(msg)
		}
		return m, cmd
	}
}

// updateFormConfirm handles the PendingConfirm step of the form.
func (m appModel) updateFormConfirm(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "tab", "left", "right":
		m.confirmFocus = m.confirmFocus.toggled()
		return m, nil
	case "esc":
		m.formCtl.Cancel()
		m.closeForm()
		return m, nil
	case "enter":
		if m.confirmFocus == confirmFocusCancel {
			m.formCtl.Cancel()
			m.closeForm()
			return m, nil
		}
		_, isEdit := m.formCtl.Mode().(form.Edit)
		if err := m.formCtl.Confirm(); err != nil {
			return m, m.setFlash(err.Error())
		}
		m.closeForm()
		m.refreshProjects()
		if isEdit {
			return m, m.setFlash("Project updated")
		}
		return m, m.setFlash("Project created")
	}
	return m, nil
}

func (m *appModel) renderFormModal() string {
	if m.formCtl == nil {
		return ""
	}
	title := "New Project"
	if _, ok := m.formCtl.Mode().(form.Edit); ok {
		title = "Edit Project"
	}

	bodyW := modalBodyWidth(m.width)
	label := func(f formField, text string) string {
		st := styleMuted()
		if m.formFocus == f {
			st = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
		}
		return st.Render(text)
	}

	d := m.formCtl.Draft()
	m.userPick.SetSize(bodyW, 5)

	rows := []string{
		label(formFieldName, "Name") + "  " + m.nameInput.View(),
		label(formFieldDescription, "Description"),
		m.descArea.View(),
		label(formFieldStartDate, "Start") + " " + m.startInput.View() +
			"   " + label(formFieldEndDate, "End") + " " + m.endInput.View(),
		label(formFieldBudget, "Budget") + " " + m.budgetInput.View(),
		label(formFieldPriority, "Priority") + "  " + priorityBadge(d.Priority) +
			styleMuted().Render("  (space to cycle)"),
		label(formFieldTechnologies, "Technologies") + "  " + m.techInput.View(),
		label(formFieldUsers, fmt.Sprintf("Assign members (%d)", len(d.AssignedUsers))),
		m.userPick.View(),
		"",
		styleMuted().Render("tab: next field   ctrl+s: submit   esc: cancel"),
	}
	content := strings.Join(rows, "\n")
	return renderModalBox(m.width, title, content)
}
