package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/lms-cli/internal/application"
	"github.com/bnema/lms-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newProbeCmd(app *app) *cobra.Command {
	var params []string
	var method string
	var paths []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "probe [FEATURE]",
		Short: "Try candidate routes in order and keep the first one that exists",
		Example: `  lms probe schedules.delete --param id=42
  lms probe income-heads.list
  lms probe --method GET --path /instructor/students --path /students`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if len(paths) > 0 {
					return errors.New("use either a FEATURE or --path, not both")
				}
				parsed, err := parseParams(params)
				if err != nil {
					return err
				}
				return runProbeFeature(cmd, app, application.ProbeFeatureCommand{
					Name:   domain.FeatureName(args[0]),
					Params: parsed,
				}, asJSON)
			}

			if len(paths) == 0 {
				return errors.New("a FEATURE or at least one --path is required")
			}

			candidates := make([]domain.Request, 0, len(paths))
			for _, path := range paths {
				candidates = append(candidates, domain.NewRequest(method, path))
			}

			var outcome domain.Outcome
			err := runCall(cmd, "Probing "+strings.Join(paths, ", "), asJSON, func(ctx context.Context) error {
				var probeErr error
				outcome, probeErr = app.service.Probe(ctx, candidates)
				return probeErr
			})
			if err != nil {
				return err
			}

			return writeOutcome(cmd, app, outcome, asJSON)
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "Placeholder value as key=value (repeatable)")
	cmd.Flags().StringVar(&method, "method", http.MethodGet, "Method for --path candidates")
	cmd.Flags().StringArrayVar(&paths, "path", nil, "Candidate path, tried in order (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func runProbeFeature(cmd *cobra.Command, app *app, probe application.ProbeFeatureCommand, asJSON bool) error {
	var result application.ProbeResult
	err := runCall(cmd, "Probing "+string(probe.Name), asJSON, func(ctx context.Context) error {
		var probeErr error
		result, probeErr = app.service.ProbeFeature(ctx, probe)
		return probeErr
	})
	if err != nil {
		return err
	}

	if asJSON {
		if err := writeJSON(cmd.OutOrStdout(), probeOutput{
			outcomeOutput: newOutcomeOutput(result.Outcome),
			Feature:       result.Feature.Name,
			Resolved:      result.Resolved,
		}); err != nil {
			return err
		}
		return result.Outcome.Err()
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s resolved to %s\n", result.Feature.Name, result.Resolved); err != nil {
		return err
	}

	return writeOutcome(cmd, app, result.Outcome, false)
}

func parseParams(raw []string) (map[string]string, error) {
	params := make(map[string]string, len(raw))
	for _, item := range raw {
		key, value, ok := strings.Cut(item, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid param %q, expected key=value", item)
		}
		params[key] = value
	}

	return params, nil
}
