package ports

import (
	"context"
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByPaymentOrderID(ctx context.Context, orderID string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	ListAwaitingPayment(ctx context.Context, updatedBefore time.Time, limit int) ([]*domain.Booking, error)
}
