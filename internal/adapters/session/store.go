package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/lms-cli/internal/domain"
	"github.com/bnema/lms-cli/internal/ports"
)

const (
	DefaultKey           = "lms/session"
	currentRecordVersion = 1
)

// Keys written by older releases, one value per key. Clear removes them too so
// a forced logout leaves no credential behind.
var legacyKeys = []string{
	"lms/token",
	"lms/access_token",
	"lms/refresh_token",
	"lms/user",
	"lms/role",
}

type record struct {
	Version     int        `json:"version"`
	AccessToken string     `json:"access_token"`
	User        userRecord `json:"user"`
}

type userRecord struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Store keeps the whole session as a single secret so that Set is an atomic
// replacement.
type Store struct {
	secrets ports.SecretStore
	key     string
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore(secrets ports.SecretStore) *Store {
	return &Store{secrets: secrets, key: DefaultKey}
}

func (s *Store) Get(ctx context.Context) (domain.Session, error) {
	raw, err := s.secrets.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return domain.Session{}, domain.ErrNoSession
		}
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return domain.Session{}, domain.ErrNoSession
	}

	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return domain.Session{}, fmt.Errorf("decode session: %w", err)
	}
	if rec.Version > currentRecordVersion {
		return domain.Session{}, fmt.Errorf("unsupported session version %d (current %d)", rec.Version, currentRecordVersion)
	}

	return domain.Session{
		AccessToken: rec.AccessToken,
		User: domain.User{
			ID:    rec.User.ID,
			Email: rec.User.Email,
			Role:  domain.Role(rec.User.Role),
		},
	}, nil
}

func (s *Store) Set(ctx context.Context, session domain.Session) error {
	if !session.HasToken() {
		return errors.New("session access token is empty")
	}

	payload, err := json.Marshal(record{
		Version:     currentRecordVersion,
		AccessToken: session.AccessToken,
		User: userRecord{
			ID:    session.User.ID,
			Email: session.User.Email,
			Role:  string(session.User.Role),
		},
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := s.secrets.Put(ctx, s.key, string(payload)); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	var errs error
	for _, key := range append([]string{s.key}, legacyKeys...) {
		if err := s.secrets.Delete(ctx, key); err != nil {
			errs = errors.Join(errs, fmt.Errorf("delete %s: %w", key, err))
		}
	}

	if errs != nil {
		return fmt.Errorf("clear session: %w", errs)
	}

	return nil
}
