package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, user_id, service_id, name, phone, booking_number, scheduled_date,
	status, total_amount, worker_id, worker_lat, worker_lng, worker_location_updated_at,
	otp, payment_status, payment_order_id, payment_id, payment_method, paid_at,
	address_line1, address_line2, city, state, pincode, notes, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b         domain.Booking
		lat, lng  sql.NullFloat64
		locatedAt sql.NullTime
	)

	err := row.Scan(
		&b.ID, &b.UserID, &b.ServiceID, &b.Name, &b.Phone, &b.BookingNumber, &b.ScheduledDate,
		&b.Status, &b.TotalAmount, &b.WorkerID, &lat, &lng, &locatedAt,
		&b.OTP, &b.PaymentStatus, &b.PaymentOrderID, &b.PaymentID, &b.PaymentMethod, &b.PaidAt,
		&b.ServiceAddress.Line1, &b.ServiceAddress.Line2, &b.ServiceAddress.City,
		&b.ServiceAddress.State, &b.ServiceAddress.Pincode, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lat.Valid && lng.Valid {
		b.WorkerLocation = &domain.WorkerLocation{
			Location:  domain.Location{Lat: lat.Float64, Lng: lng.Float64},
			UpdatedAt: locatedAt.Time,
		}
	}

	return &b, nil
}

func locationArgs(loc *domain.WorkerLocation) (lat, lng sql.NullFloat64, at sql.NullTime) {
	if loc == nil {
		return
	}
	return sql.NullFloat64{Float64: loc.Lat, Valid: true},
		sql.NullFloat64{Float64: loc.Lng, Valid: true},
		sql.NullTime{Time: loc.UpdatedAt, Valid: true}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	lat, lng, locatedAt := locationArgs(b.WorkerLocation)

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			          $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		b.ID, b.UserID, b.ServiceID, b.Name, b.Phone, b.BookingNumber, b.ScheduledDate,
		b.Status, b.TotalAmount, b.WorkerID, lat, lng, locatedAt,
		b.OTP, b.PaymentStatus, b.PaymentOrderID, b.PaymentID, b.PaymentMethod, b.PaidAt,
		b.ServiceAddress.Line1, b.ServiceAddress.Line2, b.ServiceAddress.City,
		b.ServiceAddress.State, b.ServiceAddress.Pincode, b.Notes, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrServiceNotFound
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *BookingRepository) GetByPaymentOrderID(ctx context.Context, orderID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE payment_order_id = $1
			  ORDER BY updated_at DESC
			  LIMIT 1`
	return r.getOne(ctx, query, orderID)
}

func (r *BookingRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Booking, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	var (
		sb   strings.Builder
		args []any
	)

	sb.WriteString(`SELECT ` + bookingColumns + ` FROM bookings`)
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		sb.WriteString(fmt.Sprintf(" WHERE user_id = $%d", len(args)))
	}
	sb.WriteString(" ORDER BY created_at DESC")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}

	return r.list(ctx, sb.String(), args...)
}

func (r *BookingRepository) ListAwaitingPayment(ctx context.Context, updatedBefore time.Time, limit int) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE payment_order_id IS NOT NULL
			    AND payment_status = $1
			    AND status <> $2
			    AND updated_at < $3
			  ORDER BY updated_at
			  LIMIT $4`

	return r.list(ctx, query,
		domain.PaymentStatusPending, domain.BookingStatusCancelled, updatedBefore, limit,
	)
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// Update перезаписывает изменяемые поля брони целиком (last write wins).
// total_amount, booking_number, user_id и service_id не меняются никогда.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	lat, lng, locatedAt := locationArgs(b.WorkerLocation)

	query := `UPDATE bookings
			  SET name = $2, phone = $3, scheduled_date = $4, status = $5,
			      worker_id = $6, worker_lat = $7, worker_lng = $8, worker_location_updated_at = $9,
			      otp = $10, payment_status = $11, payment_order_id = $12, payment_id = $13,
			      payment_method = $14, paid_at = $15,
			      address_line1 = $16, address_line2 = $17, city = $18, state = $19, pincode = $20,
			      notes = $21, updated_at = $22
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		b.ID, b.Name, b.Phone, b.ScheduledDate, b.Status,
		b.WorkerID, lat, lng, locatedAt,
		b.OTP, b.PaymentStatus, b.PaymentOrderID, b.PaymentID,
		b.PaymentMethod, b.PaidAt,
		b.ServiceAddress.Line1, b.ServiceAddress.Line2, b.ServiceAddress.City,
		b.ServiceAddress.State, b.ServiceAddress.Pincode,
		b.Notes, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}
