package ports

import (
	"context"

	"github.com/bnema/lms-cli/internal/domain"
)

type EndpointRepository interface {
	GetByName(ctx context.Context, name domain.FeatureName) (domain.Feature, error)
	List(ctx context.Context) ([]domain.Feature, error)
	Save(ctx context.Context, feature domain.Feature) error
}
