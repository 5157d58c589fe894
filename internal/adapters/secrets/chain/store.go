package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/lms-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/lms-cli/internal/adapters/secrets/pass"
	"github.com/bnema/lms-cli/internal/domain"
	"github.com/bnema/lms-cli/internal/ports"
)

// Store reads and writes through primary first and falls back to the
// secondary backend on any failure other than context cancellation. Deletes
// always reach both backends.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewPassFirstWithFileFallback(fileRoot string) (*Store, error) {
	return NewStoreChecked(passstore.NewStore(), filestore.NewStore(fileRoot))
}

// NewForBackend builds the secret store selected by configuration:
// "pass", "file", or "auto" (pass first, file fallback).
func NewForBackend(backend string, fileRoot string) (ports.SecretStore, error) {
	switch backend {
	case "", "auto":
		return NewPassFirstWithFileFallback(fileRoot)
	case "pass":
		return passstore.NewStore(), nil
	case "file":
		return filestore.NewStore(fileRoot), nil
	default:
		return nil, fmt.Errorf("unsupported secrets backend %q", backend)
	}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

// Delete removes key from both backends. A missing entry and a primary that
// is not installed count as deleted.
func (s *Store) Delete(ctx context.Context, key string) error {
	primaryErr := s.primary.Delete(ctx, key)
	if shouldSkipFallback(primaryErr) {
		return primaryErr
	}
	fallbackErr := s.fallback.Delete(ctx, key)

	var errs []error
	if primaryErr != nil && !isAbsent(primaryErr) {
		errs = append(errs, fmt.Errorf("primary backend delete failed: %w", primaryErr))
	}
	if fallbackErr != nil && !isAbsent(fallbackErr) {
		errs = append(errs, fmt.Errorf("fallback backend delete failed: %w", fallbackErr))
	}

	return errors.Join(errs...)
}

func isAbsent(err error) bool {
	return errors.Is(err, domain.ErrSecretNotFound) || errors.Is(err, passstore.ErrUnavailable)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
