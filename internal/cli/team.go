package cli

import (
	"pmdeck/internal/model"
	"pmdeck/internal/query"
	"pmdeck/internal/store"

	"github.com/spf13/cobra"
)

func newTeamCmd(app *App) *cobra.Command {
	var search, role string
	cmd := &cobra.Command{
		Use:   "team",
		Short: "List team members",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, _, err := bootstrap(app)
			if err != nil {
				return err
			}
			members := query.Users(sess.Users(), search, role)
			out := make([]model.User, 0, len(members))
			for _, u := range members {
				out = append(out, redact(u))
			}
			return writeOut(cmd, app, out)
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Substring match against name, email or role")
	cmd.Flags().StringVar(&role, "role", query.All, "Role filter (\"all\" matches every role)")
	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Dashboard summary over the visible project set",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, projects, _, err := bootstrap(app)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, store.Stats(projects.Visible(), sess.Users()))
		},
	}
}
