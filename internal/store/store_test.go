package store

import (
	"errors"
	"testing"
	"time"

	"pmdeck/internal/model"
)

func testProject(id int, name string) model.Project {
	return model.Project{
		ID:        id,
		Name:      name,
		Status:    model.StatusActive,
		Priority:  model.PriorityMedium,
		StartDate: "2026-01-01",
		EndDate:   "2026-06-01",
		CreatedAt: time.Now(),
		CreatedBy: 1,
	}
}

func TestNextIDSkipsHidden(t *testing.T) {
	s := NewProjectStore(model.SeedProjects())
	if got := s.NextID(); got != 21 {
		t.Fatalf("NextID() = %d, want 21", got)
	}

	// Hiding the record with the max id must not free its id for reuse.
	if err := s.Hide(20); err != nil {
		t.Fatalf("Hide(20): %v", err)
	}
	if got := s.NextID(); got != 21 {
		t.Fatalf("NextID() after hiding 20 = %d, want 21", got)
	}
}

func TestInsertPrependsAndRejectsDuplicates(t *testing.T) {
	s := NewProjectStore(model.SeedProjects())
	p := testProject(s.NextID(), "Brand New")
	if err := s.Insert(p); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	visible := s.Visible()
	if visible[0].ID != p.ID {
		t.Fatalf("new record should render first, got id %d", visible[0].ID)
	}

	err := s.Insert(testProject(p.ID, "Dup"))
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("duplicate insert: got %v, want ValidationError", err)
	}
}

func TestInsertRejectsHiddenID(t *testing.T) {
	s := NewProjectStore([]model.Project{testProject(1, "One")})
	if err := s.Hide(1); err != nil {
		t.Fatalf("Hide: %v", err)
	}
	if err := s.Insert(testProject(1, "Again")); err == nil {
		t.Fatal("insert with a hidden record's id should fail")
	}
}

func TestUpdatePreservesImmutableFields(t *testing.T) {
	orig := testProject(7, "Before")
	orig.Progress = 55
	s := NewProjectStore([]model.Project{orig})

	err := s.Update(7, Patch{
		Name:          "After",
		Description:   "changed",
		Priority:      model.PriorityHigh,
		StartDate:     "2026-02-01",
		EndDate:       "2026-07-01",
		Budget:        1234,
		Technologies:  []string{"Go"},
		AssignedUsers: []int{2, 3},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, ok := s.Get(7)
	if !ok {
		t.Fatal("record vanished")
	}
	if got.Name != "After" || got.Priority != model.PriorityHigh {
		t.Fatalf("patch not applied: %+v", got)
	}
	if got.ID != orig.ID || !got.CreatedAt.Equal(orig.CreatedAt) || got.CreatedBy != orig.CreatedBy {
		t.Fatalf("identity fields changed: %+v", got)
	}
	if got.Status != orig.Status || got.Progress != 55 {
		t.Fatalf("status/progress should survive an edit: %+v", got)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	s := NewProjectStore(nil)
	err := s.Update(99, Patch{Name: "x"})
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}

func TestHideIsIdempotentAndSticky(t *testing.T) {
	s := NewProjectStore([]model.Project{testProject(1, "One"), testProject(2, "Two")})

	if err := s.Hide(1); err != nil {
		t.Fatalf("Hide: %v", err)
	}
	if err := s.Hide(1); err != nil {
		t.Fatalf("second Hide should be a no-op, got %v", err)
	}

	if got := len(s.Visible()); got != 1 {
		t.Fatalf("Visible() has %d records, want 1", got)
	}
	if _, ok := s.Lookup(1); ok {
		t.Fatal("Lookup must exclude hidden records")
	}
	if _, ok := s.Get(1); !ok {
		t.Fatal("Get must still find hidden records")
	}

	var nf NotFoundError
	if err := s.Hide(42); !errors.As(err, &nf) {
		t.Fatalf("hiding an unknown id: got %v, want NotFoundError", err)
	}
}

func TestVisibleReturnsFreshSlice(t *testing.T) {
	s := NewProjectStore([]model.Project{testProject(1, "One")})
	a := s.Visible()
	a[0].Name = "mutated"
	if b := s.Visible(); b[0].Name != "One" {
		t.Fatalf("store state leaked through Visible(): %q", b[0].Name)
	}
}

func TestStats(t *testing.T) {
	projects := []model.Project{
		{ID: 1, Status: model.StatusActive, Budget: 100},
		{ID: 2, Status: model.StatusActive, Budget: 200},
		{ID: 3, Status: model.StatusCompleted, Budget: 50},
		{ID: 4, Status: model.StatusPaused},
	}
	users := model.SeedUsers()

	st := Stats(projects, users)
	if st.TotalProjects != 4 || st.ActiveProjects != 2 || st.CompletedProjects != 1 || st.PausedProjects != 1 {
		t.Fatalf("unexpected stats: %+v", st)
	}
	if st.TotalUsers != len(users) {
		t.Fatalf("TotalUsers = %d, want %d", st.TotalUsers, len(users))
	}
	if st.TotalBudget != 350 {
		t.Fatalf("TotalBudget = %v, want 350", st.TotalBudget)
	}

	counts := StatusCounts(projects)
	if counts[model.StatusActive] != 2 || counts[model.StatusCancelled] != 0 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}
