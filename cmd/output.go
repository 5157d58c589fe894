package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bnema/lms-cli/internal/application"
	"github.com/bnema/lms-cli/internal/domain"
	"github.com/spf13/cobra"
)

type outcomeOutput struct {
	Kind       domain.OutcomeKind `json:"kind"`
	Method     string             `json:"method"`
	Path       string             `json:"path"`
	Status     int                `json:"status"`
	StatusText string             `json:"status_text,omitempty"`
	Attempts   int                `json:"attempts"`
	RequestID  string             `json:"request_id,omitempty"`
	Error      string             `json:"error,omitempty"`
	Body       any                `json:"body,omitempty"`
}

type probeOutput struct {
	outcomeOutput
	Feature  domain.FeatureName `json:"feature,omitempty"`
	Resolved string             `json:"resolved,omitempty"`
}

// failureOutput is printed under --json when a call ends without an HTTP
// outcome.
type failureOutput struct {
	Kind    string   `json:"kind"`
	Error   string   `json:"error"`
	BaseURL string   `json:"base_url,omitempty"`
	Tried   []string `json:"tried,omitempty"`
}

type sessionOutput struct {
	SignedIn  bool       `json:"signed_in"`
	UserID    string     `json:"user_id,omitempty"`
	Email     string     `json:"email,omitempty"`
	Role      string     `json:"role,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Expired   bool       `json:"expired"`
	Mismatch  string     `json:"mismatch,omitempty"`
}

type candidateOutput struct {
	Method  string            `json:"method"`
	Path    string            `json:"path"`
	Headers map[string]string `json:"headers,omitempty"`
}

type featureOutput struct {
	Name         domain.FeatureName `json:"name"`
	Description  string             `json:"description,omitempty"`
	Candidates   []candidateOutput  `json:"candidates"`
	Params       []string           `json:"params,omitempty"`
	LastResolved string             `json:"last_resolved,omitempty"`
	ResolvedAt   *time.Time         `json:"resolved_at,omitempty"`
}

func newOutcomeOutput(outcome domain.Outcome) outcomeOutput {
	out := outcomeOutput{
		Kind:       outcome.Kind,
		Method:     outcome.Method,
		Path:       outcome.Path,
		Status:     outcome.Status,
		StatusText: outcome.StatusText,
		Attempts:   outcome.Attempts,
		RequestID:  outcome.RequestID,
		Error:      outcome.Message(),
	}

	if len(outcome.Body) > 0 {
		if json.Valid(outcome.Body) {
			out.Body = json.RawMessage(outcome.Body)
		} else {
			out.Body = string(outcome.Body)
		}
	}

	return out
}

func newSessionOutput(status application.SessionStatus) sessionOutput {
	out := sessionOutput{
		SignedIn: true,
		UserID:   status.Session.User.ID,
		Email:    status.Session.User.Email,
		Role:     string(status.Session.User.Role),
		Expired:  status.Expired,
		Mismatch: status.Check.Detail,
	}
	if status.ClaimsOK && !status.Claims.ExpiresAt.IsZero() {
		expiresAt := status.Claims.ExpiresAt.UTC()
		out.ExpiresAt = &expiresAt
	}

	return out
}

func newFeatureOutputs(features []domain.Feature) []featureOutput {
	out := make([]featureOutput, 0, len(features))
	for _, feature := range features {
		item := featureOutput{
			Name:         feature.Name,
			Description:  feature.Description,
			Candidates:   make([]candidateOutput, 0, len(feature.Candidates)),
			Params:       feature.Placeholders(),
			LastResolved: feature.LastResolved,
		}
		for _, candidate := range feature.Candidates {
			item.Candidates = append(item.Candidates, candidateOutput{
				Method:  candidate.Method,
				Path:    candidate.Path,
				Headers: candidate.Header,
			})
		}
		if !feature.ResolvedAt.IsZero() {
			resolvedAt := feature.ResolvedAt.UTC()
			item.ResolvedAt = &resolvedAt
		}
		out = append(out, item)
	}

	return out
}

func newFailureOutput(err error) failureOutput {
	out := failureOutput{Kind: "error", Error: err.Error()}

	var networkErr *domain.NetworkError
	var noEndpointErr *domain.NoEndpointError
	var httpErr *domain.HTTPError
	switch {
	case errors.As(err, &networkErr):
		out.Kind = "network_failure"
		out.BaseURL = networkErr.BaseURL
	case errors.As(err, &noEndpointErr):
		out.Kind = "not_found"
		out.Tried = noEndpointErr.Tried
	case errors.As(err, &httpErr):
		out.Kind = httpErr.Kind.String()
	case errors.Is(err, domain.ErrTokenMismatch):
		out.Kind = "token_mismatch"
	case errors.Is(err, domain.ErrFeatureNotFound):
		out.Kind = "feature_not_found"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		out.Kind = "canceled"
	}

	return out
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode json output: %w", err)
	}

	return nil
}

// writeOutcome prints the outcome and returns its error so failed calls exit
// non-zero in both output modes.
func writeOutcome(cmd *cobra.Command, app *app, outcome domain.Outcome, asJSON bool) error {
	if asJSON {
		if err := writeJSON(cmd.OutOrStdout(), newOutcomeOutput(outcome)); err != nil {
			return err
		}
		return outcome.Err()
	}

	rendered, err := app.outcomeRenderer(outcome, app.renderOptions())
	if err != nil {
		return fmt.Errorf("render outcome: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
		return err
	}

	return outcome.Err()
}

// runCall runs call behind a spinner on stderr unless the output is JSON. In
// JSON mode a failed call is also printed as a failureOutput.
func runCall(cmd *cobra.Command, label string, asJSON bool, call func(context.Context) error) error {
	if asJSON {
		err := call(cmd.Context())
		if err != nil {
			if writeErr := writeJSON(cmd.OutOrStdout(), newFailureOutput(err)); writeErr != nil {
				return errors.Join(err, writeErr)
			}
		}
		return err
	}

	return runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), label, call)
}
