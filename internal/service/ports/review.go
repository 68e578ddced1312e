package ports

import (
	"context"
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
)

type ReviewRepo interface {
	Create(ctx context.Context, r *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	List(ctx context.Context, filter domain.ReviewFilter) ([]*domain.Review, error)
	Moderate(ctx context.Context, r *domain.Review) error
	Respond(ctx context.Context, r *domain.Review) error
	Report(ctx context.Context, reviewID, reporterID, reason string, flagAt int, at time.Time) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, recentSince time.Time) (*domain.ReviewStats, error)
}
