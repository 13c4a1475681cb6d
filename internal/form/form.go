// Package form implements the project create/edit pipeline: a draft record,
// required-field validation, a confirm-before-commit step, and normalization
// of the free-text fields into a well-formed project record.
package form

import (
	"strconv"
	"strings"

	"pmdeck/internal/model"
	"pmdeck/internal/store"
)

// Mode is the tagged create/edit variant. Edit carries the id of the record
// being replaced; there are no ad hoc presence checks on the draft itself.
type Mode interface{ isMode() }

type Create struct{}

type Edit struct{ OriginalID int }

func (Create) isMode() {}
func (Edit) isMode()   {}

type Phase int

const (
	Editing Phase = iota
	PendingConfirm
	Committed
	Cancelled
)

// Draft holds the raw form field values. Budget and Technologies stay as
// entered text until commit-time normalization.
type Draft struct {
	Name          string
	Description   string
	StartDate     string
	EndDate       string
	Budget        string
	Priority      model.Priority
	Technologies  string
	AssignedUsers []int
}

// DraftFrom seeds an edit draft from an existing record.
func DraftFrom(p model.Project) Draft {
	return Draft{
		Name:          p.Name,
		Description:   p.Description,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		Budget:        strconv.FormatFloat(p.Budget, 'f', -1, 64),
		Priority:      p.Priority,
		Technologies:  strings.Join(p.Technologies, ", "),
		AssignedUsers: append([]int(nil), p.AssignedUsers...),
	}
}

// Result is the normalized draft handed to the commit callback.
type Result struct {
	Mode          Mode
	Name          string
	Description   string
	StartDate     string
	EndDate       string
	Budget        float64
	Priority      model.Priority
	Technologies  []string
	AssignedUsers []int
}

// CommitFunc applies a normalized result to the store. Supplied by the owning
// view; the controller itself never touches the store.
type CommitFunc func(Result) error

// Controller is the create/edit state machine:
//
//	Editing -> PendingConfirm -> Committed | Cancelled
//
// Submitting with a required field missing fails validation and stays in
// Editing. Nothing is committed until Confirm.
type Controller struct {
	mode     Mode
	phase    Phase
	draft    Draft
	onCommit CommitFunc
}

func NewCreate(onCommit CommitFunc) *Controller {
	return &Controller{
		mode:     Create{},
		phase:    Editing,
		draft:    Draft{Priority: model.PriorityMedium},
		onCommit: onCommit,
	}
}

func NewEdit(originalID int, initial Draft, onCommit CommitFunc) *Controller {
	c := &Controller{
		mode:     Edit{OriginalID: originalID},
		phase:    Editing,
		onCommit: onCommit,
	}
	c.Reset(initial)
	return c
}

// Reset replaces the draft wholesale with the given values, discarding any
// unsaved edits in progress. Re-entering edit mode always goes through here.
func (c *Controller) Reset(initial Draft) {
	if initial.Priority == "" {
		initial.Priority = model.PriorityMedium
	}
	c.draft = initial
	c.phase = Editing
}

func (c *Controller) Mode() Mode   { return c.mode }
func (c *Controller) Phase() Phase { return c.phase }
func (c *Controller) Draft() Draft { return c.draft }

func (c *Controller) SetDraft(d Draft) {
	if c.phase != Editing {
		return
	}
	c.draft = d
}

// ToggleUser adds the user id to the assignment set, or removes it when
// already present.
func (c *Controller) ToggleUser(id int) {
	if c.phase != Editing {
		return
	}
	for i, existing := range c.draft.AssignedUsers {
		if existing == id {
			c.draft.AssignedUsers = append(c.draft.AssignedUsers[:i], c.draft.AssignedUsers[i+1:]...)
			return
		}
	}
	c.draft.AssignedUsers = append(c.draft.AssignedUsers, id)
}

// Validate checks the required fields without changing phase.
func (c *Controller) Validate() error {
	d := c.draft
	if strings.TrimSpace(d.Name) == "" {
		return store.ValidationError{Field: "name", Reason: "required"}
	}
	if strings.TrimSpace(d.Description) == "" {
		return store.ValidationError{Field: "description", Reason: "required"}
	}
	if strings.TrimSpace(d.StartDate) == "" {
		return store.ValidationError{Field: "startDate", Reason: "required"}
	}
	// No startDate <= endDate ordering is enforced.
	if strings.TrimSpace(d.EndDate) == "" {
		return store.ValidationError{Field: "endDate", Reason: "required"}
	}
	if strings.TrimSpace(d.Budget) == "" {
		return store.ValidationError{Field: "budget", Reason: "required"}
	}
	if _, err := parseBudget(d.Budget); err != nil {
		return err
	}
	return nil
}

// Submit moves Editing -> PendingConfirm on a valid draft. On validation
// failure the form stays open and unchanged.
func (c *Controller) Submit() error {
	if c.phase != Editing {
		return nil
	}
	if err := c.Validate(); err != nil {
		return err
	}
	c.phase = PendingConfirm
	return nil
}

// ConfirmPrompt distinguishes the pending action for the confirm modal.
func (c *Controller) ConfirmPrompt() string {
	if _, ok := c.mode.(Edit); ok {
		return "Save the changes to this project?"
	}
	return "Create this project?"
}

// Confirm normalizes the draft, invokes the commit callback and closes the
// form. A commit error leaves the controller in PendingConfirm.
func (c *Controller) Confirm() error {
	if c.phase != PendingConfirm {
		return nil
	}
	budget, err := parseBudget(c.draft.Budget)
	if err != nil {
		return err
	}
	res := Result{
		Mode:          c.mode,
		Name:          strings.TrimSpace(c.draft.Name),
		Description:   strings.TrimSpace(c.draft.Description),
		StartDate:     strings.TrimSpace(c.draft.StartDate),
		EndDate:       strings.TrimSpace(c.draft.EndDate),
		Budget:        budget,
		Priority:      c.draft.Priority,
		Technologies:  ParseTechnologies(c.draft.Technologies),
		AssignedUsers: append([]int(nil), c.draft.AssignedUsers...),
	}
	if c.onCommit != nil {
		if err := c.onCommit(res); err != nil {
			return err
		}
	}
	c.phase = Committed
	return nil
}

// Cancel discards the pending action and closes the form without committing.
func (c *Controller) Cancel() {
	if c.phase != PendingConfirm {
		return
	}
	c.phase = Cancelled
}

// ParseTechnologies splits comma-separated input into an order-preserving
// sequence of trimmed, non-empty, deduplicated tags.
func ParseTechnologies(s string) []string {
	var out []string
	seen := map[string]bool{}
	for _, part := range strings.Split(s, ",") {
		t := strings.TrimSpace(part)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func parseBudget(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, store.ValidationError{Field: "budget", Reason: "not a number"}
	}
	if v < 0 {
		return 0, store.ValidationError{Field: "budget", Reason: "must be non-negative"}
	}
	return v, nil
}
