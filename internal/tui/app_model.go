package tui

import (
	"time"

	"pmdeck/internal/auth"
	"pmdeck/internal/form"
	"pmdeck/internal/model"
	"pmdeck/internal/query"
	"pmdeck/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const projectsPageSize = 6

type view int

const (
	viewLogin view = iota
	viewDashboard
	viewProjects
	viewDetail
	viewTeam
)

func viewToString(v view) string {
	switch v {
	case viewDashboard:
		return "dashboard"
	case viewProjects:
		return "projects"
	case viewDetail:
		return "detail"
	case viewTeam:
		return "team"
	default:
		return "login"
	}
}

func viewFromString(s string) (view, bool) {
	switch s {
	case "dashboard":
		return viewDashboard, true
	case "projects":
		return viewProjects, true
	case "detail":
		return viewDetail, true
	case "team":
		return viewTeam, true
	}
	return viewLogin, false
}

type modalKind int

const (
	modalNone modalKind = iota
	modalForm
	modalFormConfirm
	modalConfirmDelete
)

type flashDoneMsg struct{ seq int }

type loginField int

const (
	loginFieldEmail loginField = iota
	loginFieldPassword
)

// formField is the focus cycle inside the project form modal.
type formField int

const (
	formFieldName formField = iota
	formFieldDescription
	formFieldStartDate
	formFieldEndDate
	formFieldBudget
	formFieldPriority
	formFieldTechnologies
	formFieldUsers

	formFieldCount
)

type appModel struct {
	dir      string
	sess     *auth.Session
	projects *store.ProjectStore

	width  int
	height int

	view       view
	returnView view // where esc from detail goes back to

	// Projects view state. filtered is derived and recomputed from the store
	// before every render that could observe a change.
	searchInput    textinput.Model
	searchFocused  bool
	statusFilter   string
	priorityFilter string
	pager          *query.Paginator
	cursor         int
	filtered       []model.Project

	// Dashboard search (over "my projects").
	dashSearch        textinput.Model
	dashSearchFocused bool

	detailID int

	teamList          list.Model
	teamSearch        textinput.Model
	teamSearchFocused bool
	roleFilter        string

	emailInput    textinput.Model
	passwordInput textinput.Model
	loginFocus    loginField
	loginErr      string

	modal        modalKind
	confirmFocus confirmModalFocus

	formCtl     *form.Controller
	formFocus   formField
	nameInput   textinput.Model
	descArea    textarea.Model
	startInput  textinput.Model
	endInput    textinput.Model
	budgetInput textinput.Model
	techInput   textinput.Model
	userPick    list.Model

	deleteGate *form.Gate[int]

	flash    string
	flashSeq int
}

func newAppModel(dir string, sess *auth.Session, projects *store.ProjectStore) appModel {
	m := appModel{
		dir:            dir,
		sess:           sess,
		projects:       projects,
		view:           viewLogin,
		returnView:     viewProjects,
		statusFilter:   query.All,
		priorityFilter: query.All,
		roleFilter:     query.All,
		pager:          query.NewPaginator(projectsPageSize),
	}

	m.searchInput = newSearchInput("Search projects...")
	m.dashSearch = newSearchInput("Search projects...")
	m.teamSearch = newSearchInput("Search team members...")

	m.emailInput = textinput.New()
	m.emailInput.Placeholder = "you@company.com"
	m.emailInput.Prompt = "> "
	m.emailInput.CharLimit = 120
	m.passwordInput = textinput.New()
	m.passwordInput.Placeholder = "password"
	m.passwordInput.Prompt = "> "
	m.passwordInput.CharLimit = 120
	m.passwordInput.EchoMode = textinput.EchoPassword
	m.passwordInput.EchoCharacter = '•'

	m.teamList = newRosterList()
	m.userPick = newUserPickList()

	// The gate mutates through the shared store pointer; NotFound means the
	// record vanished between request and confirm, which callers treat as a
	// no-op.
	m.deleteGate = form.NewGate(func(id int) { _ = projects.Hide(id) })

	// Session restored from a previous run: skip the login screen and pick up
	// the last view.
	if _, ok := sess.Current(); ok {
		m.view = viewDashboard
		if st, err := store.LoadTUIState(dir); err == nil {
			if v, ok := viewFromString(st.View); ok {
				m.view = v
				if v == viewDetail {
					if _, found := projects.Lookup(st.SelectedProjectID); found {
						m.detailID = st.SelectedProjectID
					} else {
						m.view = viewProjects
					}
				}
			}
		}
	} else {
		m.emailInput.Focus()
	}

	m.refreshProjects()
	m.refreshTeam()
	return m
}

func (m appModel) Init() tea.Cmd { return textinput.Blink }

func newSearchInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "/ "
	in.CharLimit = 120
	return in
}

// refreshProjects recomputes the derived project list from the latest store
// state and clamps pagination and the row cursor.
func (m *appModel) refreshProjects() {
	m.filtered = query.Projects(m.projects.Visible(), query.Filter{
		Query:    m.searchInput.Value(),
		Status:   m.statusFilter,
		Priority: m.priorityFilter,
	})
	m.pager.Clamp(len(m.filtered))
	page := query.Page(m.pager, m.filtered)
	if m.cursor >= len(page) {
		m.cursor = len(page) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// resetPage goes back to page 1; used on every filter change so a shrunken
// result set never renders an out-of-range page.
func (m *appModel) resetPage() {
	m.pager.Reset()
	m.cursor = 0
	m.refreshProjects()
}

func (m *appModel) pageRecords() []model.Project {
	return query.Page(m.pager, m.filtered)
}

func (m *appModel) selectedProject() (model.Project, bool) {
	page := m.pageRecords()
	if m.cursor < 0 || m.cursor >= len(page) {
		return model.Project{}, false
	}
	return page[m.cursor], true
}

func (m *appModel) setFlash(text string) tea.Cmd {
	m.flash = text
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}

func (m *appModel) saveTUIState() {
	_ = store.SaveTUIState(m.dir, &store.TUIState{
		Version:           1,
		View:              viewToString(m.view),
		SelectedProjectID: m.detailID,
	})
}

func (m *appModel) gotoView(v view) {
	m.view = v
	m.saveTUIState()
}
