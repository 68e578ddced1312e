package service

import (
	"context"
	"fmt"
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/service/ports"
)

const topServicesLimit = 5

// AnalyticsService считает сводки по журналу броней. Все операции только для админа.
type AnalyticsService struct {
	repo ports.AnalyticsRepo
	now  func() time.Time
}

func NewAnalyticsService(repo ports.AnalyticsRepo) *AnalyticsService {
	return &AnalyticsService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *AnalyticsService) Metrics(ctx context.Context, caller domain.Caller) (*domain.Metrics, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	m, err := s.repo.Metrics(ctx, dayStart)
	if err != nil {
		return nil, fmt.Errorf("booking metrics: %w", err)
	}
	return m, nil
}

func (s *AnalyticsService) Revenue(ctx context.Context, caller domain.Caller, period domain.RevenuePeriod) ([]domain.RevenuePoint, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}

	points, err := s.repo.Revenue(ctx, period.Since(s.now()))
	if err != nil {
		return nil, fmt.Errorf("revenue: %w", err)
	}
	if points == nil {
		points = []domain.RevenuePoint{}
	}
	return points, nil
}

func (s *AnalyticsService) ServiceDistribution(ctx context.Context, caller domain.Caller) ([]domain.ServiceShare, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}

	shares, err := s.repo.ServiceDistribution(ctx, topServicesLimit)
	if err != nil {
		return nil, fmt.Errorf("service distribution: %w", err)
	}
	if shares == nil {
		shares = []domain.ServiceShare{}
	}
	return shares, nil
}
