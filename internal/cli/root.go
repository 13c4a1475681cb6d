package cli

import (
	"context"
	"os"
	"strings"

	"pmdeck/internal/auth"
	"pmdeck/internal/format"
	"pmdeck/internal/model"
	"pmdeck/internal/store"
	"pmdeck/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir    string
	Pretty bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "pmdeck",
		Short:        "Project-management dashboard (TUI + scriptable CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive dashboard
  pmdeck

  # Scriptable commands
  pmdeck login --email alice.martin@company.com --password password123
  pmdeck projects list --status active --priority high
  pmdeck team --role "Backend Developer"
  pmdeck stats`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "config-dir", envOr("PMDECK_DIR", ""), "Path to the pmdeck config dir (session db, TUI state)")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newTeamCmd(app))
	cmd.AddCommand(newStatsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	sess, projects, dir, err := bootstrap(app)
	if err != nil {
		return err
	}
	return tui.Run(dir, sess, projects)
}

// bootstrap seeds the in-memory collections and restores any persisted
// session. Project records always start from the seed set: a restart is the
// "page reload".
func bootstrap(app *App) (*auth.Session, *store.ProjectStore, string, error) {
	dir := app.Dir
	if dir == "" {
		d, err := store.ConfigDir()
		if err != nil {
			return nil, nil, "", err
		}
		dir = d
	}

	sess := auth.NewSession(model.SeedUsers(), store.SessionStore{Dir: dir})
	if err := sess.Bootstrap(context.Background()); err != nil {
		return nil, nil, "", err
	}
	return sess, store.NewProjectStore(model.SeedProjects()), dir, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.Pretty)
}
