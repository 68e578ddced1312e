package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const (
	minRating         = 1
	maxRating         = 5
	minCommentLength  = 10
	maxCommentLength  = 1000
	minResponseLength = 10
	maxResponseLength = 500
	maxReasonLength   = 500
	defaultListLimit  = 10
	maxListLimit      = 100

	// после стольких жалоб отзыв уходит на повторную модерацию
	reportFlagThreshold = 3
	recentReviewsWindow = 30 * 24 * time.Hour
)

type ReviewService struct {
	reviewRepo  ports.ReviewRepo
	bookingRepo ports.BookingRepo
	logger      logger.Logger
	now         func() time.Time
}

func NewReviewService(reviewRepo ports.ReviewRepo, bookingRepo ports.BookingRepo, logger logger.Logger) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *ReviewService) Create(ctx context.Context, caller domain.Caller, input domain.CreateReviewInput) (*domain.Review, error) {
	verr := &domain.ValidationError{}
	if input.BookingID == "" {
		verr.Add("booking_id", "booking id is required")
	}
	if input.Rating < minRating || input.Rating > maxRating {
		verr.Add("rating", fmt.Sprintf("must be between %d and %d", minRating, maxRating))
	}
	if n := utf8.RuneCountInString(input.Comment); n < minCommentLength || n > maxCommentLength {
		verr.Add("comment", fmt.Sprintf("must be %d to %d characters", minCommentLength, maxCommentLength))
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if !booking.OwnedBy(caller.ID) {
		return nil, domain.ErrAccessDenied
	}

	if booking.Status != domain.BookingStatusCompleted {
		return nil, fmt.Errorf("%w: only completed bookings can be reviewed", domain.ErrInvalidTransition)
	}

	now := s.now()
	review := &domain.Review{
		ID:        uuid.New().String(),
		BookingID: booking.ID,
		UserID:    caller.ID,
		ServiceID: booking.ServiceID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Status:    domain.ReviewStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.logger.Info("review created",
		logger.String("review_id", review.ID),
		logger.String("booking_id", booking.ID),
		logger.Int("rating", review.Rating),
	)

	return review, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	}
	return limit
}

// ListByService отдает только одобренные отзывы.
func (s *ReviewService) ListByService(ctx context.Context, serviceID string, limit int) ([]*domain.Review, error) {
	reviews, err := s.reviewRepo.List(ctx, domain.ReviewFilter{
		ServiceID: serviceID,
		Status:    domain.ReviewStatusApproved,
		Limit:     clampLimit(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// MyReviews возвращает все отзывы автора в любом статусе.
func (s *ReviewService) MyReviews(ctx context.Context, caller domain.Caller) ([]*domain.Review, error) {
	reviews, err := s.reviewRepo.List(ctx, domain.ReviewFilter{UserID: caller.ID})
	if err != nil {
		return nil, fmt.Errorf("list my reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) Report(ctx context.Context, caller domain.Caller, input domain.ReportReviewInput) (*domain.Review, error) {
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return nil, domain.NewValidationError(domain.FieldError{Field: "reason", Message: "reason is required"})
	}
	if utf8.RuneCountInString(reason) > maxReasonLength {
		return nil, domain.NewValidationError(domain.FieldError{
			Field:   "reason",
			Message: fmt.Sprintf("must be at most %d characters", maxReasonLength),
		})
	}

	review, err := s.reviewRepo.Report(ctx, input.ReviewID, caller.ID, reason, reportFlagThreshold, s.now())
	if err != nil {
		return nil, fmt.Errorf("report review: %w", err)
	}

	s.logger.Info("review reported",
		logger.String("review_id", review.ID),
		logger.String("reporter_id", caller.ID),
		logger.Int("report_count", review.ReportCount),
	)
	if review.Status == domain.ReviewStatusFlagged && review.ReportCount == reportFlagThreshold {
		s.logger.Warn("review flagged by reports",
			logger.String("review_id", review.ID),
			logger.Int("report_count", review.ReportCount),
		)
	}

	return review, nil
}

func (s *ReviewService) AdminList(ctx context.Context, caller domain.Caller, filter domain.ReviewFilter) ([]*domain.Review, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}

	verr := &domain.ValidationError{}
	if filter.Status != "" && !filter.Status.Valid() {
		verr.Add("status", "invalid status")
	}
	if filter.Rating != 0 && (filter.Rating < minRating || filter.Rating > maxRating) {
		verr.Add("rating", fmt.Sprintf("must be between %d and %d", minRating, maxRating))
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	filter.Limit = clampLimit(filter.Limit)

	reviews, err := s.reviewRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) Get(ctx context.Context, caller domain.Caller, id string) (*domain.Review, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) Stats(ctx context.Context, caller domain.Caller) (*domain.ReviewStats, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}

	stats, err := s.reviewRepo.Stats(ctx, s.now().Add(-recentReviewsWindow))
	if err != nil {
		return nil, fmt.Errorf("review stats: %w", err)
	}
	return stats, nil
}

func (s *ReviewService) Respond(ctx context.Context, caller domain.Caller, input domain.RespondReviewInput) (*domain.Review, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}

	message := strings.TrimSpace(input.Message)
	if n := utf8.RuneCountInString(message); n < minResponseLength || n > maxResponseLength {
		return nil, domain.NewValidationError(domain.FieldError{
			Field:   "message",
			Message: fmt.Sprintf("must be %d to %d characters", minResponseLength, maxResponseLength),
		})
	}

	review, err := s.reviewRepo.GetByID(ctx, input.ReviewID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}

	now := s.now()
	review.AdminResponse = &message
	review.RespondedBy = &caller.ID
	review.RespondedAt = &now
	review.UpdatedAt = now

	if err = s.reviewRepo.Respond(ctx, review); err != nil {
		return nil, fmt.Errorf("respond to review: %w", err)
	}

	s.logger.Info("review answered",
		logger.String("review_id", review.ID),
		logger.String("admin_id", caller.ID),
	)

	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	if !caller.IsAdmin() {
		return domain.ErrAccessDenied
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	s.logger.Warn("review deleted",
		logger.String("review_id", id),
		logger.String("admin_id", caller.ID),
	)
	return nil
}

func (s *ReviewService) Moderate(ctx context.Context, caller domain.Caller, input domain.ModerateReviewInput) (*domain.Review, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}

	if !input.Status.Valid() {
		return nil, domain.NewValidationError(domain.FieldError{Field: "status", Message: "invalid status"})
	}

	review, err := s.reviewRepo.GetByID(ctx, input.ReviewID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}

	now := s.now()
	review.Status = input.Status
	review.ModeratedBy = &caller.ID
	review.ModeratedAt = &now
	review.UpdatedAt = now
	review.ModerationNote = nil
	if input.Note != "" {
		note := input.Note
		review.ModerationNote = &note
	}

	if err = s.reviewRepo.Moderate(ctx, review); err != nil {
		return nil, fmt.Errorf("moderate review: %w", err)
	}

	s.logger.Info("review moderated",
		logger.String("review_id", review.ID),
		logger.String("status", string(review.Status)),
		logger.String("admin_id", caller.ID),
	)

	return review, nil
}
