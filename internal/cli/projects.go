package cli

import (
	"errors"
	"strconv"

	"pmdeck/internal/model"
	"pmdeck/internal/query"

	"github.com/spf13/cobra"
)

type projectsPage struct {
	Projects  []model.Project `json:"projects"`
	Total     int             `json:"total"`
	Page      int             `json:"page"`
	PageCount int             `json:"pageCount"`
}

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Inspect the project collection",
	}
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsShowCmd(app))
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	var (
		search   string
		status   string
		priority string
		mine     bool
		page     int
		pageSize int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects with search, filters and pagination",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, projects, _, err := bootstrap(app)
			if err != nil {
				return err
			}

			records := projects.Visible()
			if mine {
				u, ok := sess.Current()
				if !ok {
					return errors.New("--mine requires a session; run `pmdeck login`")
				}
				var own []model.Project
				for _, p := range records {
					if p.Assigned(u.ID) {
						own = append(own, p)
					}
				}
				records = own
			}

			filtered := query.Projects(records, query.Filter{
				Query:    search,
				Status:   status,
				Priority: priority,
			})

			pag := query.NewPaginator(pageSize)
			pag.Goto(page, len(filtered))
			pag.Clamp(len(filtered))

			return writeOut(cmd, app, projectsPage{
				Projects:  query.Page(pag, filtered),
				Total:     len(filtered),
				Page:      pag.Current(),
				PageCount: pag.PageCount(len(filtered)),
			})
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Substring match against name or description")
	cmd.Flags().StringVar(&status, "status", query.All, "Status filter (all|active|completed|paused|cancelled)")
	cmd.Flags().StringVar(&priority, "priority", query.All, "Priority filter (all|low|medium|high|critical)")
	cmd.Flags().BoolVar(&mine, "mine", false, "Only projects assigned to the current user")
	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	cmd.Flags().IntVar(&pageSize, "page-size", 6, "Records per page")
	return cmd
}

func newProjectsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, projects, _, err := bootstrap(app)
			if err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.New("project id must be an integer")
			}
			p, ok := projects.Lookup(id)
			if !ok {
				return errors.New("project not found")
			}
			return writeOut(cmd, app, p)
		},
	}
}
