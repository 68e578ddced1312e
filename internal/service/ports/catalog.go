package ports

import (
	"context"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
)

type CatalogRepo interface {
	GetService(ctx context.Context, id string) (*domain.CatalogService, error)
}
