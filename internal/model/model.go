package model

import "time"

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every valid project status in display order.
func Statuses() []Status {
	return []Status{StatusActive, StatusCompleted, StatusPaused, StatusCancelled}
}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusPaused, StatusCancelled:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role"`
	Position  string `json:"position"`
	JoinDate  string `json:"joinDate"` // YYYY-MM-DD
	IsActive  bool   `json:"isActive"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Initials returns the two-letter avatar fallback (first letters of first/last name).
func (u User) Initials() string {
	out := ""
	if u.FirstName != "" {
		out += string([]rune(u.FirstName)[0])
	}
	if u.LastName != "" {
		out += string([]rune(u.LastName)[0])
	}
	return out
}

type Project struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	Status   Status   `json:"status"`
	Priority Priority `json:"priority"`

	StartDate string `json:"startDate"` // YYYY-MM-DD
	EndDate   string `json:"endDate"`   // YYYY-MM-DD

	// AssignedUsers holds user ids; membership is toggled, so no duplicates by construction.
	AssignedUsers []int `json:"assignedUsers"`

	// Progress is a whole percentage in [0, 100].
	Progress int `json:"progress"`

	Budget       float64  `json:"budget"`
	Technologies []string `json:"technologies,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	CreatedBy int       `json:"createdBy"`
}

// DaysLeft returns the number of whole days from now until EndDate, rounded up.
// Negative or zero means the project is due or overdue. An unparseable end date
// counts as 0.
func (p Project) DaysLeft(now time.Time) int {
	end, err := time.Parse("2006-01-02", p.EndDate)
	if err != nil {
		return 0
	}
	d := end.Sub(now)
	days := int(d.Hours() / 24)
	if d > 0 && d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// Assigned reports whether userID is in the project's assignment set.
func (p Project) Assigned(userID int) bool {
	for _, id := range p.AssignedUsers {
		if id == userID {
			return true
		}
	}
	return false
}

type DashboardStats struct {
	TotalProjects     int     `json:"totalProjects"`
	ActiveProjects    int     `json:"activeProjects"`
	CompletedProjects int     `json:"completedProjects"`
	PausedProjects    int     `json:"pausedProjects"`
	CancelledProjects int     `json:"cancelledProjects"`
	TotalUsers        int     `json:"totalUsers"`
	TotalBudget       float64 `json:"totalBudget"`
}
