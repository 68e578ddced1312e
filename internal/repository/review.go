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

const reviewColumns = `id, booking_id, user_id, service_id, rating, comment, status,
	moderation_note, moderated_by, moderated_at, admin_response, responded_by, responded_at,
	report_count, created_at, updated_at`

type ReviewRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReviewRepo(db *dbpg.DB) *ReviewRepository {
	return &ReviewRepository{db: db, strategy: defaultStrategy()}
}

func scanReview(row rowScanner) (*domain.Review, error) {
	var rv domain.Review
	err := row.Scan(
		&rv.ID, &rv.BookingID, &rv.UserID, &rv.ServiceID, &rv.Rating, &rv.Comment, &rv.Status,
		&rv.ModerationNote, &rv.ModeratedBy, &rv.ModeratedAt, &rv.AdminResponse, &rv.RespondedBy, &rv.RespondedAt,
		&rv.ReportCount, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	query := `INSERT INTO reviews (` + reviewColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		rv.ID, rv.BookingID, rv.UserID, rv.ServiceID, rv.Rating, rv.Comment, rv.Status,
		rv.ModerationNote, rv.ModeratedBy, rv.ModeratedAt, rv.AdminResponse, rv.RespondedBy, rv.RespondedAt,
		rv.ReportCount, rv.CreatedAt, rv.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return domain.ErrAlreadyReviewed
			case "23503":
				return domain.ErrBookingNotFound
			}
		}
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}

	rv, err := scanReview(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("scan review: %w", err)
	}

	return rv, nil
}

func (r *ReviewRepository) List(ctx context.Context, filter domain.ReviewFilter) ([]*domain.Review, error) {
	var (
		sb    strings.Builder
		args  []any
		where []string
	)

	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if filter.UserID != "" {
		add("user_id = $%d", filter.UserID)
	}
	if filter.ServiceID != "" {
		add("service_id = $%d", filter.ServiceID)
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.Rating != 0 {
		add("rating = $%d", filter.Rating)
	}

	sb.WriteString(`SELECT ` + reviewColumns + ` FROM reviews`)
	if len(where) > 0 {
		sb.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var res []*domain.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		res = append(res, rv)
	}

	return res, rows.Err()
}

func (r *ReviewRepository) Moderate(ctx context.Context, rv *domain.Review) error {
	query := `UPDATE reviews
			  SET status = $2, moderation_note = $3, moderated_by = $4, moderated_at = $5, updated_at = $6
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		rv.ID, rv.Status, rv.ModerationNote, rv.ModeratedBy, rv.ModeratedAt, rv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("moderate review: %w", err)
	}

	return reviewAffected(res)
}

func (r *ReviewRepository) Respond(ctx context.Context, rv *domain.Review) error {
	query := `UPDATE reviews
			  SET admin_response = $2, responded_by = $3, responded_at = $4, updated_at = $5
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		rv.ID, rv.AdminResponse, rv.RespondedBy, rv.RespondedAt, rv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("respond to review: %w", err)
	}

	return reviewAffected(res)
}

// Report записывает жалобу и увеличивает счетчик одним запросом. Достигнув
// flagAt жалоб, отзыв получает статус flagged.
func (r *ReviewRepository) Report(ctx context.Context, reviewID, reporterID, reason string, flagAt int, at time.Time) (*domain.Review, error) {
	query := `WITH report AS (
                INSERT INTO review_reports (review_id, reported_by, reason, reported_at)
                VALUES ($1, $2, $3, $4)
                RETURNING review_id
              )
              UPDATE reviews
              SET report_count = report_count + 1,
                  status = CASE WHEN report_count + 1 >= $5 THEN $6 ELSE status END,
                  updated_at = $4
              FROM report
              WHERE reviews.id = report.review_id
              RETURNING ` + reviewColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		reviewID, reporterID, reason, at, flagAt, domain.ReviewStatusFlagged,
	)
	if err != nil {
		return nil, reportError(err)
	}

	rv, err := scanReview(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, reportError(err)
	}

	return rv, nil
}

func reportError(err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return domain.ErrAlreadyReported
		case "23503":
			return domain.ErrReviewNotFound
		}
	}
	return fmt.Errorf("report review: %w", err)
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	return reviewAffected(res)
}

func (r *ReviewRepository) Stats(ctx context.Context, recentSince time.Time) (*domain.ReviewStats, error) {
	query := `SELECT
                COUNT(*),
                COALESCE(AVG(rating), 0)::float8,
                COUNT(*) FILTER (WHERE status = $2),
                COUNT(*) FILTER (WHERE status = $3),
                COUNT(*) FILTER (WHERE status = $4),
                COUNT(*) FILTER (WHERE status = $5),
                COUNT(*) FILTER (WHERE rating = 1),
                COUNT(*) FILTER (WHERE rating = 2),
                COUNT(*) FILTER (WHERE rating = 3),
                COUNT(*) FILTER (WHERE rating = 4),
                COUNT(*) FILTER (WHERE rating = 5),
                COUNT(*) FILTER (WHERE created_at >= $1)
              FROM reviews`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, recentSince,
		domain.ReviewStatusPending, domain.ReviewStatusApproved,
		domain.ReviewStatusRejected, domain.ReviewStatusFlagged,
	)
	if err != nil {
		return nil, fmt.Errorf("query review stats: %w", err)
	}

	var (
		st       domain.ReviewStats
		byRating [5]int64
	)
	var pending, approved, rejected, flagged int64
	err = row.Scan(
		&st.Total, &st.AverageRating,
		&pending, &approved, &rejected, &flagged,
		&byRating[0], &byRating[1], &byRating[2], &byRating[3], &byRating[4],
		&st.Recent,
	)
	if err != nil {
		return nil, fmt.Errorf("scan review stats: %w", err)
	}

	st.ByStatus = map[domain.ReviewStatus]int64{
		domain.ReviewStatusPending:  pending,
		domain.ReviewStatusApproved: approved,
		domain.ReviewStatusRejected: rejected,
		domain.ReviewStatusFlagged:  flagged,
	}
	st.ByRating = make(map[int]int64, len(byRating))
	for i, n := range byRating {
		st.ByRating[i+1] = n
	}

	return &st, nil
}

func reviewAffected(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("review rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
