package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoSession       = errors.New("no cached session")
	ErrTokenMismatch   = errors.New("token subject does not match cached user")
	ErrNoEndpoint      = errors.New("no candidate endpoint exists")
	ErrNetwork         = errors.New("api server unreachable")
	ErrFeatureNotFound = errors.New("feature not found")
	ErrSecretNotFound  = errors.New("secret not found")
)

// HTTPError is the error form of a ClientError or ServerError outcome.
type HTTPError struct {
	Kind       OutcomeKind
	Status     int
	StatusText string
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

type NetworkError struct {
	BaseURL  string
	Attempts int
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("cannot reach API server at %s after %d attempt(s): %v", e.BaseURL, e.Attempts, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

type NoEndpointError struct {
	Tried []string
}

func (e *NoEndpointError) Error() string {
	if len(e.Tried) == 0 {
		return ErrNoEndpoint.Error()
	}

	return fmt.Sprintf("%s (tried: %s)", ErrNoEndpoint, strings.Join(e.Tried, ", "))
}

func (e *NoEndpointError) Is(target error) bool {
	return target == ErrNoEndpoint
}
