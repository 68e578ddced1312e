package ports

import (
	"context"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
)

// BookingNotifier ставит уведомление в очередь и не ждет доставки.
type BookingNotifier interface {
	Notify(ctx context.Context, kind domain.NotificationKind, booking *domain.Booking)
}

type LocationPublisher interface {
	PublishLocation(bookingID string, loc domain.Location) int
}
