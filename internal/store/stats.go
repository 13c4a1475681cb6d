package store

import "pmdeck/internal/model"

// Stats derives the dashboard summary from the current visible set and the
// roster. Like every derived view it is recomputed per call, never cached.
func Stats(projects []model.Project, users []model.User) model.DashboardStats {
	st := model.DashboardStats{
		TotalProjects: len(projects),
		TotalUsers:    len(users),
	}
	for _, p := range projects {
		switch p.Status {
		case model.StatusActive:
			st.ActiveProjects++
		case model.StatusCompleted:
			st.CompletedProjects++
		case model.StatusPaused:
			st.PausedProjects++
		case model.StatusCancelled:
			st.CancelledProjects++
		}
		st.TotalBudget += p.Budget
	}
	return st
}

// StatusCounts returns the per-status distribution in display order, for the
// dashboard chart.
func StatusCounts(projects []model.Project) map[model.Status]int {
	out := map[model.Status]int{}
	for _, p := range projects {
		out[p.Status]++
	}
	return out
}
