package cli

import (
	"context"
	"errors"

	"pmdeck/internal/model"

	"github.com/spf13/cobra"
)

// sessionView is the whoami/login output shape: the user snapshot without the
// mock password, plus the token.
type sessionView struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

func redact(u model.User) model.User {
	u.Password = ""
	return u
}

func newLoginCmd(app *App) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with a mock account and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, _, err := bootstrap(app)
			if err != nil {
				return err
			}
			u, err := sess.Login(context.Background(), email, password)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, sessionView{Token: sess.Token(), User: redact(u)})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Tear the persisted session down",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, _, err := bootstrap(app)
			if err != nil {
				return err
			}
			if err := sess.Logout(context.Background()); err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]bool{"loggedOut": true})
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, _, err := bootstrap(app)
			if err != nil {
				return err
			}
			u, ok := sess.Current()
			if !ok {
				return errors.New("not logged in; run `pmdeck login`")
			}
			return writeOut(cmd, app, sessionView{Token: sess.Token(), User: redact(u)})
		},
	}
}

func newRegisterCmd(app *App) *cobra.Command {
	var first, last, email, password, role string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a mock account and log in as it",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, _, err := bootstrap(app)
			if err != nil {
				return err
			}
			u, err := sess.Register(context.Background(), first, last, email, password, role)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, sessionView{Token: sess.Token(), User: redact(u)})
		},
	}
	cmd.Flags().StringVar(&first, "first-name", "", "First name")
	cmd.Flags().StringVar(&last, "last-name", "", "Last name")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&role, "role", "", "Role, e.g. \"Backend Developer\"")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
