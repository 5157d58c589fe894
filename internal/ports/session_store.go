package ports

import (
	"context"

	"github.com/bnema/lms-cli/internal/domain"
)

// SessionStore persists the cached session. Get returns domain.ErrNoSession
// when nothing is stored. Set replaces the whole value.
type SessionStore interface {
	Get(ctx context.Context) (domain.Session, error)
	Set(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}
