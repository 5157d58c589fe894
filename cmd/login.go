package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/lms-cli/internal/application"
	"github.com/bnema/lms-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and cache the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(password) == "" {
				return errors.New("password must not be empty")
			}

			var session domain.Session
			err := runCall(cmd, "Signing in...", asJSON, func(ctx context.Context) error {
				var loginErr error
				session, loginErr = app.service.Login(ctx, application.LoginCommand{
					Email:    email,
					Password: password,
				})
				return loginErr
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), sessionOutput{
					SignedIn: true,
					UserID:   session.User.ID,
					Email:    session.User.Email,
					Role:     string(session.User.Role),
				})
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", session.User.Email, roleOrNA(session.User.Role))
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove every cached credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.Logout(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return err
		},
	}
}

func roleOrNA(role domain.Role) string {
	if role == "" {
		return "no role"
	}
	return string(role)
}
