package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"pmdeck/internal/model"
)

// run executes the root command with the given args against an isolated
// config dir and returns the decoded JSON output.
func run(t *testing.T, dir string, out any, args ...string) error {
	t.Helper()
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append(args, "--config-dir", dir))
	if err := cmd.Execute(); err != nil {
		return err
	}
	if out != nil {
		if err := json.Unmarshal(buf.Bytes(), out); err != nil {
			t.Fatalf("decode %q: %v", buf.String(), err)
		}
	}
	return nil
}

func TestProjectsList(t *testing.T) {
	dir := t.TempDir()

	var page projectsPage
	if err := run(t, dir, &page, "projects", "list"); err != nil {
		t.Fatalf("projects list: %v", err)
	}
	if page.Total != 20 || page.Page != 1 || page.PageCount != 4 {
		t.Fatalf("page meta: %+v", page)
	}
	if len(page.Projects) != 6 {
		t.Fatalf("page has %d records, want 6", len(page.Projects))
	}
}

func TestProjectsListFilters(t *testing.T) {
	dir := t.TempDir()

	var page projectsPage
	if err := run(t, dir, &page, "projects", "list", "--status", "active", "--priority", "high"); err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	for _, p := range page.Projects {
		if p.Status != model.StatusActive || p.Priority != model.PriorityHigh {
			t.Fatalf("record %d leaked through the filters", p.ID)
		}
	}

	// An out-of-range page clamps instead of erroring.
	if err := run(t, dir, &page, "projects", "list", "--page", "99"); err != nil {
		t.Fatalf("clamped list: %v", err)
	}
	if page.Page != page.PageCount {
		t.Fatalf("page %d, want the last page %d", page.Page, page.PageCount)
	}
}

func TestProjectsShow(t *testing.T) {
	dir := t.TempDir()

	var p model.Project
	if err := run(t, dir, &p, "projects", "show", "1"); err != nil {
		t.Fatalf("projects show: %v", err)
	}
	if p.ID != 1 || p.Name == "" {
		t.Fatalf("got %+v", p)
	}

	if err := run(t, dir, nil, "projects", "show", "999"); err == nil {
		t.Fatal("unknown id should error")
	}
	if err := run(t, dir, nil, "projects", "show", "abc"); err == nil {
		t.Fatal("non-numeric id should error")
	}
}

func TestLoginWhoamiLogout(t *testing.T) {
	dir := t.TempDir()

	if err := run(t, dir, nil, "whoami"); err == nil {
		t.Fatal("whoami without a session should error")
	}

	var sv sessionView
	err := run(t, dir, &sv, "login", "--email", "alice.martin@company.com", "--password", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sv.Token != "mock-token-1" {
		t.Fatalf("token = %q", sv.Token)
	}
	if sv.User.Password != "" {
		t.Fatal("output must not include the password")
	}

	// The session persists across invocations.
	if err := run(t, dir, &sv, "whoami"); err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if sv.User.Email != "alice.martin@company.com" {
		t.Fatalf("whoami user: %+v", sv.User)
	}

	if err := run(t, dir, nil, "logout"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := run(t, dir, nil, "whoami"); err == nil {
		t.Fatal("whoami after logout should error")
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	dir := t.TempDir()
	err := run(t, dir, nil, "login", "--email", "alice.martin@company.com", "--password", "nope")
	if err == nil {
		t.Fatal("bad password should error")
	}
}

func TestStats(t *testing.T) {
	dir := t.TempDir()

	var st model.DashboardStats
	if err := run(t, dir, &st, "stats"); err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.TotalProjects != 20 || st.TotalUsers != 12 {
		t.Fatalf("stats: %+v", st)
	}
	if st.ActiveProjects+st.CompletedProjects+st.PausedProjects+st.CancelledProjects != st.TotalProjects {
		t.Fatalf("status counts do not add up: %+v", st)
	}
}

func TestTeamRoleFilter(t *testing.T) {
	dir := t.TempDir()

	var users []model.User
	if err := run(t, dir, &users, "team", "--role", "Backend Developer"); err != nil {
		t.Fatalf("team: %v", err)
	}
	if len(users) == 0 {
		t.Fatal("no backend developers in the seed roster")
	}
	for _, u := range users {
		if u.Role != "Backend Developer" {
			t.Fatalf("user %d has role %q", u.ID, u.Role)
		}
		if u.Password != "" {
			t.Fatal("roster output must not include passwords")
		}
	}
}
