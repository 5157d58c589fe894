package ports

import (
	"context"

	"github.com/bnema/lms-cli/internal/domain"
)

type Dispatcher interface {
	Send(ctx context.Context, req domain.Request) (domain.Outcome, error)
	SendAttempts(ctx context.Context, req domain.Request, maxAttempts int) (domain.Outcome, error)
	BaseURL() string
}
