package ports

import (
	"context"
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
)

type AnalyticsRepo interface {
	Metrics(ctx context.Context, dayStart time.Time) (*domain.Metrics, error)
	Revenue(ctx context.Context, since time.Time) ([]domain.RevenuePoint, error)
	ServiceDistribution(ctx context.Context, limit int) ([]domain.ServiceShare, error)
}
