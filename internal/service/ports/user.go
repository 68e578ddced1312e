package ports

import (
	"context"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
)

type UserRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
