package store

import (
	"pmdeck/internal/model"
)

// ProjectStore owns the in-memory project collection. Records are kept in
// visible order (newest created first); deletion is a soft hide, so ids are
// never reused and hidden records stay retrievable by id.
//
// All access happens on the UI event loop; there is no concurrent writer and
// no locking.
type ProjectStore struct {
	projects []model.Project
	hidden   map[int]struct{}
}

// Patch carries the editable fields of a project. Update replaces all of them
// wholesale; id, createdAt and createdBy are never touched, and neither are
// status and progress, which the edit form does not expose.
type Patch struct {
	Name          string
	Description   string
	Priority      model.Priority
	StartDate     string
	EndDate       string
	Budget        float64
	Technologies  []string
	AssignedUsers []int
}

func NewProjectStore(seed []model.Project) *ProjectStore {
	s := &ProjectStore{hidden: map[int]struct{}{}}
	s.projects = append(s.projects, seed...)
	return s
}

// NextID returns max(existing ids)+1 over live and hidden records alike.
func (s *ProjectStore) NextID() int {
	max := 0
	for _, p := range s.projects {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// Insert prepends the record so the newest creation renders first. A
// duplicate id, including the id of a hidden record, is a ValidationError.
func (s *ProjectStore) Insert(p model.Project) error {
	for _, existing := range s.projects {
		if existing.ID == p.ID {
			return ValidationError{Field: "id", Reason: "duplicate project id"}
		}
	}
	s.projects = append([]model.Project{p}, s.projects...)
	return nil
}

// Update replaces every patch field on the record with the given id.
func (s *ProjectStore) Update(id int, patch Patch) error {
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		p := &s.projects[i]
		p.Name = patch.Name
		p.Description = patch.Description
		p.Priority = patch.Priority
		p.StartDate = patch.StartDate
		p.EndDate = patch.EndDate
		p.Budget = patch.Budget
		p.Technologies = patch.Technologies
		p.AssignedUsers = patch.AssignedUsers
		return nil
	}
	return NotFoundError{Kind: "project", ID: id}
}

// Hide soft-deletes the record. Hiding an already-hidden id is a no-op;
// hiding an id that was never inserted is a NotFoundError (callers treat it
// as a no-op).
func (s *ProjectStore) Hide(id int) error {
	found := false
	for _, p := range s.projects {
		if p.ID == id {
			found = true
			break
		}
	}
	if !found {
		return NotFoundError{Kind: "project", ID: id}
	}
	s.hidden[id] = struct{}{}
	return nil
}

func (s *ProjectStore) Hidden(id int) bool {
	_, ok := s.hidden[id]
	return ok
}

// Visible returns a fresh slice of the non-hidden records in store order.
// It is recomputed from current state on every call.
func (s *ProjectStore) Visible() []model.Project {
	out := make([]model.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if _, hidden := s.hidden[p.ID]; hidden {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Get looks a record up by id, hidden or not.
func (s *ProjectStore) Get(id int) (model.Project, bool) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return model.Project{}, false
}

// Lookup is like Get but excludes hidden records, matching what the detail
// view may navigate to.
func (s *ProjectStore) Lookup(id int) (model.Project, bool) {
	if s.Hidden(id) {
		return model.Project{}, false
	}
	return s.Get(id)
}

func (s *ProjectStore) Len() int { return len(s.projects) }
