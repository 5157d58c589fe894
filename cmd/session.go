package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/lms-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Show the cached user and whether its token still matches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := app.service.CurrentSession(cmd.Context())
			if errors.Is(err, domain.ErrNoSession) {
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), sessionOutput{})
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return err
			}
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), newSessionOutput(status))
			}

			rendered, err := app.sessionRenderer(status, app.renderOptions())
			if err != nil {
				return fmt.Errorf("render session: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}
