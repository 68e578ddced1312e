package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAnalyticsService(t *testing.T, now time.Time) (*AnalyticsService, *mocks.MockAnalyticsRepo) {
	t.Helper()
	repo := mocks.NewMockAnalyticsRepo(t)
	svc := NewAnalyticsService(repo)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func TestAnalyticsService_RequiresAdmin(t *testing.T) {
	svc, _ := newAnalyticsService(t, time.Now())
	ctx := context.Background()

	_, err := svc.Metrics(ctx, customer)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)

	_, err = svc.Revenue(ctx, customer, domain.RevenuePeriod7Days)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)

	_, err = svc.ServiceDistribution(ctx, customer)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestAnalyticsService_Metrics_DayStart(t *testing.T) {
	now := time.Date(2026, 10, 19, 17, 45, 12, 0, time.UTC)
	svc, repo := newAnalyticsService(t, now)

	repo.EXPECT().Metrics(mock.Anything, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)).
		Return(&domain.Metrics{TodayBookings: 4, TotalBookings: 120}, nil)

	got, err := svc.Metrics(context.Background(), admin)

	require.NoError(t, err)
	assert.Equal(t, int64(4), got.TodayBookings)
}

func TestAnalyticsService_Revenue_Window(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		period domain.RevenuePeriod
		since  time.Time
	}{
		{domain.RevenuePeriod7Days, time.Date(2026, 10, 12, 12, 0, 0, 0, time.UTC)},
		{domain.RevenuePeriod30Days, time.Date(2026, 9, 19, 12, 0, 0, 0, time.UTC)},
		{domain.RevenuePeriod6Months, time.Date(2026, 4, 19, 12, 0, 0, 0, time.UTC)},
		{domain.RevenuePeriod12Months, time.Date(2025, 10, 19, 12, 0, 0, 0, time.UTC)},
		{"fortnight", time.Date(2026, 9, 19, 12, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			svc, repo := newAnalyticsService(t, now)
			repo.EXPECT().Revenue(mock.Anything, tt.since).Return(nil, nil)

			got, err := svc.Revenue(context.Background(), admin, tt.period)

			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestAnalyticsService_ServiceDistribution(t *testing.T) {
	svc, repo := newAnalyticsService(t, time.Now())

	repo.EXPECT().ServiceDistribution(mock.Anything, topServicesLimit).
		Return([]domain.ServiceShare{{ServiceID: "s1", Name: "Deep cleaning", Bookings: 12}}, nil)

	got, err := svc.ServiceDistribution(context.Background(), admin)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Deep cleaning", got[0].Name)
}

func TestAnalyticsService_RepoFailure(t *testing.T) {
	svc, repo := newAnalyticsService(t, time.Now())
	boom := errors.New("connection reset")

	repo.EXPECT().ServiceDistribution(mock.Anything, mock.Anything).Return(nil, boom)

	_, err := svc.ServiceDistribution(context.Background(), admin)

	assert.ErrorIs(t, err, boom)
}
