package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEndpointsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "endpoints",
		Short: "Inspect the endpoint catalogue used by probe",
	}

	cmd.AddCommand(newEndpointsListCmd(app))

	return cmd
}

func newEndpointsListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List features and their candidate routes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			features, err := app.service.ListFeatures(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), newFeatureOutputs(features))
			}

			rendered, err := app.featureRenderer(features, app.renderOptions())
			if err != nil {
				return fmt.Errorf("render endpoints: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}
