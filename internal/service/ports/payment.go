package ports

import (
	"context"
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
)

type PaymentGateway interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.GatewayOrder, error)
	FetchPayment(ctx context.Context, paymentID string) (*domain.GatewayPayment, error)
	OrderPayments(ctx context.Context, orderID string) ([]domain.GatewayPayment, error)
	Refund(ctx context.Context, paymentID string, amount int64) (*domain.Refund, error)
}

type WebhookDeduplicator interface {
	Claim(ctx context.Context, eventID string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, eventID string) error
}
