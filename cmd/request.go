package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/lms-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRequestCmd(app *app) *cobra.Command {
	var data string
	var headers []string
	var retries int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "request METHOD PATH",
		Short: "Send one authenticated API call with retries",
		Example: `  lms request GET /instructor/students
  lms request POST /schedules --data '{"title":"Algebra"}'
  lms request DELETE /schedules/12 -H 'X-Branch: north' --retries 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildRequest(args[0], args[1], data, headers)
			if err != nil {
				return err
			}
			if retries < 0 {
				return fmt.Errorf("--retries must not be negative, got %d", retries)
			}

			var outcome domain.Outcome
			err = runCall(cmd, req.String(), asJSON, func(ctx context.Context) error {
				var sendErr error
				outcome, sendErr = app.service.SendAttempts(ctx, req, retries)
				return sendErr
			})
			if err != nil {
				return err
			}

			return writeOutcome(cmd, app, outcome, asJSON)
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON request body")
	cmd.Flags().StringArrayVarP(&headers, "header", "H", nil, "Extra header as 'Key: Value' (repeatable)")
	cmd.Flags().IntVar(&retries, "retries", 0, "Total attempts (0 uses api.max_retries)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func buildRequest(method, path, data string, headers []string) (domain.Request, error) {
	req := domain.NewRequest(method, path)
	if req.Method == "" {
		return domain.Request{}, errors.New("method must not be empty")
	}
	if req.Path == "" {
		return domain.Request{}, errors.New("path must not be empty")
	}

	for _, raw := range headers {
		key, value, err := parseHeader(raw)
		if err != nil {
			return domain.Request{}, err
		}
		req.Header.Set(key, value)
	}

	if data != "" {
		if !json.Valid([]byte(data)) {
			return domain.Request{}, errors.New("--data must be valid JSON")
		}
		req = req.WithBody([]byte(data))
	}

	return req, nil
}

func parseHeader(raw string) (string, string, error) {
	key, value, ok := strings.Cut(raw, ":")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", fmt.Errorf("invalid header %q, expected 'Key: Value'", raw)
	}

	return key, strings.TrimSpace(value), nil
}
