package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
)

// Metrics собирает счетчики одним запросом. Выручка считается по завершенным броням.
func (r *BookingRepository) Metrics(ctx context.Context, dayStart time.Time) (*domain.Metrics, error) {
	query := `SELECT
                COUNT(*) FILTER (WHERE created_at >= $1),
                COUNT(*) FILTER (WHERE status = $2),
                COUNT(*) FILTER (WHERE status = $3),
                COUNT(*) FILTER (WHERE status = $4),
                COUNT(*),
                COALESCE(SUM(total_amount) FILTER (WHERE status = $3), 0),
                COUNT(DISTINCT worker_id) FILTER (WHERE status IN ($5, $6, $7)),
                (SELECT COUNT(*) FROM users),
                (SELECT COUNT(*) FROM services WHERE is_active)
              FROM bookings`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		dayStart,
		domain.BookingStatusPending,
		domain.BookingStatusCompleted,
		domain.BookingStatusCancelled,
		domain.BookingStatusAssigned,
		domain.BookingStatusOnTheWay,
		domain.BookingStatusInProgress,
	)
	if err != nil {
		return nil, fmt.Errorf("query metrics: %w", err)
	}

	var m domain.Metrics
	err = row.Scan(
		&m.TodayBookings, &m.PendingBookings, &m.CompletedBookings, &m.CancelledBookings,
		&m.TotalBookings, &m.TotalRevenue, &m.ActiveWorkers, &m.TotalUsers, &m.ActiveServices,
	)
	if err != nil {
		return nil, fmt.Errorf("scan metrics: %w", err)
	}

	return &m, nil
}

func (r *BookingRepository) Revenue(ctx context.Context, since time.Time) ([]domain.RevenuePoint, error) {
	query := `SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day,
                     SUM(total_amount),
                     COUNT(*)
              FROM bookings
              WHERE status = $1 AND created_at >= $2
              GROUP BY day
              ORDER BY day`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusCompleted, since)
	if err != nil {
		return nil, fmt.Errorf("query revenue: %w", err)
	}
	defer rows.Close()

	var res []domain.RevenuePoint
	for rows.Next() {
		var p domain.RevenuePoint
		if err := rows.Scan(&p.Day, &p.Revenue, &p.Bookings); err != nil {
			return nil, fmt.Errorf("scan revenue: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func (r *BookingRepository) ServiceDistribution(ctx context.Context, limit int) ([]domain.ServiceShare, error) {
	query := `SELECT s.id, s.name, COUNT(*) AS bookings
              FROM bookings b
              JOIN services s ON s.id = b.service_id
              GROUP BY s.id, s.name
              ORDER BY bookings DESC, s.name
              LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query service distribution: %w", err)
	}
	defer rows.Close()

	var res []domain.ServiceShare
	for rows.Next() {
		var sh domain.ServiceShare
		if err := rows.Scan(&sh.ServiceID, &sh.Name, &sh.Bookings); err != nil {
			return nil, fmt.Errorf("scan service distribution: %w", err)
		}
		res = append(res, sh)
	}

	return res, rows.Err()
}
