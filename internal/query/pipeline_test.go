package query

import (
	"testing"

	"pmdeck/internal/model"
)

var pipelineFixtures = []model.Project{
	{ID: 1, Name: "E-Commerce Platform", Description: "storefront rebuild", Status: model.StatusActive, Priority: model.PriorityHigh},
	{ID: 2, Name: "Mobile Banking App", Description: "secure payments", Status: model.StatusActive, Priority: model.PriorityCritical},
	{ID: 3, Name: "Data Warehouse", Description: "reporting platform", Status: model.StatusCompleted, Priority: model.PriorityMedium},
	{ID: 4, Name: "CRM Integration", Description: "sales pipeline sync", Status: model.StatusPaused, Priority: model.PriorityLow},
}

func ids(ps []model.Project) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestProjectsFilter(t *testing.T) {
	cases := []struct {
		name string
		f    Filter
		want []int
	}{
		{"zero value matches everything", Filter{}, []int{1, 2, 3, 4}},
		{"all wildcards match everything", Filter{Status: All, Priority: All}, []int{1, 2, 3, 4}},
		{"query matches name case-insensitively", Filter{Query: "banking"}, []int{2}},
		{"query matches description too", Filter{Query: "PLATFORM"}, []int{1, 3}},
		{"whitespace query matches literally", Filter{Query: " "}, []int{1, 2, 3, 4}},
		{"padded query is not trimmed", Filter{Query: "  crm  "}, nil},
		{"status narrows", Filter{Status: "active"}, []int{1, 2}},
		{"priority narrows", Filter{Priority: "critical"}, []int{2}},
		{"predicates are ANDed", Filter{Query: "platform", Status: "active"}, []int{1}},
		{"conjunction can be empty", Filter{Query: "banking", Status: "completed"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Projects(pipelineFixtures, tc.f))
			if !equalIDs(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestProjectsPreservesOrderAndInput(t *testing.T) {
	in := append([]model.Project(nil), pipelineFixtures...)
	got := Projects(in, Filter{Status: All})
	if !equalIDs(ids(got), []int{1, 2, 3, 4}) {
		t.Fatalf("order not preserved: %v", ids(got))
	}
	got[0].Name = "mutated"
	if in[0].Name != "E-Commerce Platform" {
		t.Fatal("filter must not alias its input")
	}
}

func TestUsersFilter(t *testing.T) {
	users := []model.User{
		{ID: 1, FirstName: "John", LastName: "Doe", Email: "john.doe@company.com", Role: "Senior"},
		{ID: 2, FirstName: "Jane", LastName: "Smith", Email: "jane.smith@company.com", Role: "Junior"},
		{ID: 3, FirstName: "Mike", LastName: "Johnson", Email: "mike.johnson@company.com", Role: "Senior"},
	}

	if got := Users(users, "jane", All); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("name search: %v", got)
	}
	if got := Users(users, "john", All); len(got) != 2 {
		t.Fatalf("search spans last name and email: %v", got)
	}
	if got := Users(users, "", "Senior"); len(got) != 2 {
		t.Fatalf("role filter: %v", got)
	}
	if got := Users(users, "mike", "Junior"); len(got) != 0 {
		t.Fatalf("filters are ANDed: %v", got)
	}
}

func TestRoles(t *testing.T) {
	users := []model.User{
		{Role: "Senior"}, {Role: "Junior"}, {Role: "Senior"}, {Role: "Lead"},
	}
	got := Roles(users)
	want := []string{"Senior", "Junior", "Lead"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
