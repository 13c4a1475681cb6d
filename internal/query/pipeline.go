// Package query derives filtered views of the in-memory collections. All
// functions are pure: they never mutate their inputs and are recomputed from
// the latest store state before every render.
package query

import (
	"strings"

	"pmdeck/internal/model"
)

// All is the wildcard value for status/priority/role filters.
const All = "all"

// Filter is the project list filter state. Zero value matches everything.
type Filter struct {
	// Query is matched case-insensitively as a substring of name OR description.
	Query string
	// Status is a model.Status value or All.
	Status string
	// Priority is a model.Priority value or All.
	Priority string
}

func (f Filter) matches(p model.Project) bool {
	q := strings.ToLower(f.Query)
	if q != "" &&
		!strings.Contains(strings.ToLower(p.Name), q) &&
		!strings.Contains(strings.ToLower(p.Description), q) {
		return false
	}
	if f.Status != "" && f.Status != All && string(p.Status) != f.Status {
		return false
	}
	if f.Priority != "" && f.Priority != All && string(p.Priority) != f.Priority {
		return false
	}
	return true
}

// Projects returns the subset of records satisfying all three predicates, in
// input order.
func Projects(records []model.Project, f Filter) []model.Project {
	out := make([]model.Project, 0, len(records))
	for _, p := range records {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Users filters the team roster: free-text match over first name, last name,
// email and role, AND an exact role filter (All matches every role).
func Users(users []model.User, q, role string) []model.User {
	qq := strings.ToLower(strings.TrimSpace(q))
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if qq != "" &&
			!strings.Contains(strings.ToLower(u.FirstName), qq) &&
			!strings.Contains(strings.ToLower(u.LastName), qq) &&
			!strings.Contains(strings.ToLower(u.Email), qq) &&
			!strings.Contains(strings.ToLower(u.Role), qq) {
			continue
		}
		if role != "" && role != All && u.Role != role {
			continue
		}
		out = append(out, u)
	}
	return out
}

// Roles returns the distinct roles present in the roster, in first-seen order.
func Roles(users []model.User) []string {
	seen := map[string]bool{}
	var out []string
	for _, u := range users {
		if !seen[u.Role] {
			seen[u.Role] = true
			out = append(out, u.Role)
		}
	}
	return out
}
