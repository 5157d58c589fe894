package status

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bnema/lms-cli/internal/application"
	"github.com/bnema/lms-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const defaultBodyLimit = 4096

type RenderOptions struct {
	Now time.Time
	// BodyLimit caps the printed response body in bytes. Zero uses 4096,
	// a negative value prints everything.
	BodyLimit int
}

func RenderOutcome(outcome domain.Outcome, opts RenderOptions) (string, error) {
	return render(func(s styles) string { return outcomeView(outcome, opts, s) })
}

func RenderSession(status application.SessionStatus, opts RenderOptions) (string, error) {
	return render(func(s styles) string { return sessionView(status, opts, s) })
}

func RenderFeatures(features []domain.Feature, opts RenderOptions) (string, error) {
	return render(func(s styles) string { return featuresView(features, opts, s) })
}

func outcomeView(outcome domain.Outcome, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("%s %s", outcome.Method, outcome.Path)),
		lipgloss.JoinHorizontal(lipgloss.Top,
			statusStyle(outcome.Kind, s).Render(statusLabel(outcome)),
			" ",
			s.meta.Render(attemptsLabel(outcome.Attempts)),
		),
	}

	if outcome.RequestID != "" {
		lines = append(lines, s.header.Render("request id: "+outcome.RequestID))
	}
	if !outcome.OK() {
		lines = append(lines, s.warning.Render("error: "+outcome.Message()))
	}

	if body := formatBody(outcome.Body, opts.BodyLimit); body != "" {
		lines = append(lines, s.section.Render(s.body.Render(body)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func sessionView(status application.SessionStatus, opts RenderOptions, s styles) string {
	user := status.Session.User
	lines := []string{
		s.title.Render("LMS Session"),
		s.feature.Render("Signed in as " + valueOrNA(user.Email)),
		keyValue("role", valueOrNA(string(user.Role)), s),
		keyValue("user id", valueOrNA(user.ID), s),
	}

	switch {
	case !status.ClaimsOK:
		lines = append(lines, keyValue("token", "opaque (claims unavailable)", s))
	case status.Claims.ExpiresAt.IsZero():
		lines = append(lines, keyValue("token", "no expiry claim", s))
	default:
		expiry := formatExpiry(status.Claims.ExpiresAt, opts.Now)
		if status.Expired {
			lines = append(lines, keyValue("token", expiry, s)+" "+s.warning.Render("[expired]"))
		} else {
			lines = append(lines, keyValue("token", expiry, s))
		}
	}

	if !status.Check.OK() {
		lines = append(lines, s.warning.Render("[mismatch] "+status.Check.Detail))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func featuresView(features []domain.Feature, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Endpoint Catalogue"),
		s.header.Render(fmt.Sprintf("features: %d", len(features))),
	}

	if len(features) == 0 {
		lines = append(lines, s.empty.Render("No features configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, feature := range features {
		lines = append(lines, s.section.Render(featureBlock(feature, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func featureBlock(feature domain.Feature, opts RenderOptions, s styles) string {
	parts := []string{s.feature.Render(string(feature.Name))}
	if feature.Description != "" {
		parts = append(parts, s.detail.Render(feature.Description))
	}

	for i, candidate := range feature.Candidates {
		line := s.key.Render(fmt.Sprintf("%d. %s %s", i+1, candidate.Method, candidate.Path))
		if candidate.Path == feature.LastResolved {
			line += " " + s.success.Render("*")
		}
		parts = append(parts, line)
	}

	if params := feature.Placeholders(); len(params) > 0 {
		parts = append(parts, s.meta.Render("params: "+strings.Join(params, ", ")))
	}
	if feature.LastResolved != "" {
		parts = append(parts, s.meta.Render(fmt.Sprintf("last resolved: %s (%s)", feature.LastResolved, formatSeen(feature.ResolvedAt, opts.Now))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func statusStyle(kind domain.OutcomeKind, s styles) lipgloss.Style {
	switch kind {
	case domain.OutcomeSuccess:
		return s.success
	case domain.OutcomeClientError:
		return s.clientError
	default:
		return s.serverError
	}
}

func statusLabel(outcome domain.Outcome) string {
	if outcome.StatusText == "" {
		return fmt.Sprintf("%d", outcome.Status)
	}

	return fmt.Sprintf("%d %s", outcome.Status, outcome.StatusText)
}

func attemptsLabel(attempts int) string {
	if attempts == 1 {
		return "(1 attempt)"
	}

	return fmt.Sprintf("(%d attempts)", attempts)
}

func keyValue(key, value string, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(key+":"), " ", s.detail.Render(value))
}

func valueOrNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return "n/a"
	}

	return value
}

func formatBody(body []byte, limit int) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	var pretty bytes.Buffer
	if json.Valid(trimmed) && json.Indent(&pretty, trimmed, "", "  ") == nil {
		trimmed = pretty.Bytes()
	}

	if limit == 0 {
		limit = defaultBodyLimit
	}
	if limit < 0 || len(trimmed) <= limit {
		return string(trimmed)
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(trimmed[cut]) {
		cut--
	}

	return fmt.Sprintf("%s\n... (%d more bytes)", trimmed[:cut], len(trimmed)-cut)
}

func formatExpiry(expiresAt, now time.Time) string {
	if now.IsZero() {
		return "expires " + expiresAt.Format(time.RFC3339)
	}
	if !expiresAt.After(now) {
		return "expired at " + expiresAt.Format("15:04 on 02 Jan")
	}

	remaining := expiresAt.Sub(now)
	if remaining < 24*time.Hour {
		hours := int(math.Ceil(remaining.Hours()))
		suffix := "hours"
		if hours == 1 {
			suffix = "hour"
		}
		return fmt.Sprintf("expires in %d %s (%s)", hours, suffix, expiresAt.Format("15:04"))
	}

	days := int(math.Ceil(remaining.Hours() / 24))
	suffix := "days"
	if days == 1 {
		suffix = "day"
	}

	return fmt.Sprintf("expires in %d %s (%s)", days, suffix, expiresAt.Format("15:04 on 02 Jan"))
}

func formatSeen(at, now time.Time) string {
	if at.IsZero() {
		return "unknown"
	}
	if now.IsZero() {
		return at.Format(time.RFC3339)
	}

	yearA, monthA, dayA := now.Date()
	yearB, monthB, dayB := at.Date()
	if yearA == yearB && monthA == monthB && dayA == dayB {
		return at.Format("15:04")
	}

	return at.Format("15:04 on 02 Jan")
}
