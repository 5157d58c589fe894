package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota + 1
	OutcomeClientError
	OutcomeServerError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeClientError:
		return "client_error"
	case OutcomeServerError:
		return "server_error"
	default:
		return "unknown"
	}
}

func (k OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ClassifyStatus maps an HTTP status to its outcome family. Anything below 400
// counts as transport-level success.
func ClassifyStatus(status int) OutcomeKind {
	switch {
	case status >= 500:
		return OutcomeServerError
	case status >= 400:
		return OutcomeClientError
	default:
		return OutcomeSuccess
	}
}

type Outcome struct {
	Kind       OutcomeKind
	Method     string
	Path       string
	Status     int
	StatusText string
	Header     http.Header
	Body       []byte
	Attempts   int
	RequestID  string
}

func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}

func (o Outcome) DecodeJSON(v any) error {
	if len(bytes.TrimSpace(o.Body)) == 0 {
		return fmt.Errorf("decode %s response: empty body", o.Path)
	}
	if err := json.Unmarshal(o.Body, v); err != nil {
		return fmt.Errorf("decode %s response: %w", o.Path, err)
	}

	return nil
}

// Message returns the server-provided error text for a failed outcome: the
// detail or message field of a JSON body, or "HTTP <status>: <statusText>".
func (o Outcome) Message() string {
	if o.OK() {
		return ""
	}

	return ErrorMessage(o.Status, o.StatusText, o.Body)
}

func (o Outcome) Err() error {
	if o.OK() {
		return nil
	}

	return &HTTPError{
		Kind:       o.Kind,
		Status:     o.Status,
		StatusText: o.StatusText,
		Message:    o.Message(),
	}
}

func ErrorMessage(status int, statusText string, body []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"detail", "message"} {
			raw, ok := payload[key]
			if !ok || string(raw) == "null" {
				continue
			}

			var text string
			if err := json.Unmarshal(raw, &text); err == nil {
				if strings.TrimSpace(text) != "" {
					return text
				}
				continue
			}

			var compact bytes.Buffer
			if err := json.Compact(&compact, raw); err == nil {
				return compact.String()
			}
		}
	}

	if statusText == "" {
		statusText = http.StatusText(status)
	}

	return fmt.Sprintf("HTTP %d: %s", status, statusText)
}
