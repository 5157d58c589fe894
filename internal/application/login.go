package application

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/lms-cli/internal/domain"
)

type loginResponse struct {
	AccessToken string     `json:"access_token"`
	Token       string     `json:"token"`
	Role        string     `json:"role"`
	User        *loginUser `json:"user"`
}

type loginUser struct {
	ID    flexibleID `json:"id"`
	Email string     `json:"email"`
	Role  string     `json:"role"`
}

// flexibleID accepts both numeric and string ids.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	*f = flexibleID(n.String())
	return nil
}

// Login exchanges credentials for a token and replaces the cached session.
// User fields missing from the response are taken from the token claims.
func (s *Service) Login(ctx context.Context, cmd LoginCommand) (domain.Session, error) {
	email := strings.TrimSpace(cmd.Email)
	if email == "" {
		return domain.Session{}, errors.New("email is required")
	}
	if cmd.Password == "" {
		return domain.Session{}, errors.New("password is required")
	}

	req, err := domain.NewRequest(http.MethodPost, s.loginPath).WithJSONBody(map[string]string{
		"email":    email,
		"password": cmd.Password,
	})
	if err != nil {
		return domain.Session{}, err
	}

	outcome, err := s.dispatcher.Send(ctx, req)
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}
	if !outcome.OK() {
		return domain.Session{}, fmt.Errorf("login: %w", outcome.Err())
	}

	var payload loginResponse
	if err := outcome.DecodeJSON(&payload); err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	token := strings.TrimSpace(payload.AccessToken)
	if token == "" {
		token = strings.TrimSpace(payload.Token)
	}
	if token == "" {
		return domain.Session{}, errors.New("login: response did not include an access token")
	}

	session := domain.Session{AccessToken: token, User: s.loginUser(token, payload, email)}

	if check := s.guard.Validate(token, session.User); !check.OK() {
		return domain.Session{}, fmt.Errorf("login: %w: %s", domain.ErrTokenMismatch, check.Detail)
	}

	if err := s.sessions.Set(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	s.logger.InfoContext(ctx, "logged in", "email", session.User.Email, "role", session.User.Role)
	return session, nil
}

func (s *Service) loginUser(token string, payload loginResponse, email string) domain.User {
	var user domain.User
	if payload.User != nil {
		user = domain.User{
			ID:    string(payload.User.ID),
			Email: strings.TrimSpace(payload.User.Email),
			Role:  domain.Role(payload.User.Role),
		}
	}
	if user.Role == "" {
		user.Role = domain.Role(payload.Role)
	}

	if claims, ok := s.guard.Claims(token); ok {
		if user.Email == "" {
			user.Email = claims.Email
		}
		if user.ID == "" && claims.Subject != "" && claims.Subject != user.Email {
			user.ID = claims.Subject
		}
		if user.Role == "" {
			user.Role = domain.Role(claims.Role)
		}
	}

	if user.Email == "" {
		user.Email = email
	}

	return user
}
