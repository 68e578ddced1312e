package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/middleware"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const testSecret = "router-test-secret"

type stubHandler struct{}

func ok(c *ginext.Context) { c.JSON(http.StatusOK, ginext.H{"route": c.FullPath()}) }

func (stubHandler) CreateBooking(c *ginext.Context)         { ok(c) }
func (stubHandler) GetBooking(c *ginext.Context)            { ok(c) }
func (stubHandler) MyBookings(c *ginext.Context)            { ok(c) }
func (stubHandler) ListBookings(c *ginext.Context)          { ok(c) }
func (stubHandler) CancelBooking(c *ginext.Context)         { ok(c) }
func (stubHandler) ConfirmCashOnDelivery(c *ginext.Context) { ok(c) }
func (stubHandler) AssignWorker(c *ginext.Context)          { ok(c) }
func (stubHandler) UpdateWorkerLocation(c *ginext.Context)  { ok(c) }
func (stubHandler) OverrideBookingStatus(c *ginext.Context) { ok(c) }
func (stubHandler) CreatePaymentOrder(c *ginext.Context)    { ok(c) }
func (stubHandler) VerifyPayment(c *ginext.Context)         { ok(c) }
func (stubHandler) PaymentWebhook(c *ginext.Context)        { ok(c) }
func (stubHandler) GetPayment(c *ginext.Context)            { ok(c) }
func (stubHandler) RefundPayment(c *ginext.Context)         { ok(c) }
func (stubHandler) CreateReview(c *ginext.Context)          { ok(c) }
func (stubHandler) ServiceReviews(c *ginext.Context)        { ok(c) }
func (stubHandler) MyReviews(c *ginext.Context)             { ok(c) }
func (stubHandler) ReportReview(c *ginext.Context)          { ok(c) }
func (stubHandler) AdminReviews(c *ginext.Context)          { ok(c) }
func (stubHandler) ReviewStats(c *ginext.Context)           { ok(c) }
func (stubHandler) AdminGetReview(c *ginext.Context)        { ok(c) }
func (stubHandler) ModerateReview(c *ginext.Context)        { ok(c) }
func (stubHandler) RespondReview(c *ginext.Context)         { ok(c) }
func (stubHandler) DeleteReview(c *ginext.Context)          { ok(c) }
func (stubHandler) AnalyticsMetrics(c *ginext.Context)      { ok(c) }
func (stubHandler) AnalyticsRevenue(c *ginext.Context)      { ok(c) }
func (stubHandler) AnalyticsServices(c *ginext.Context)     { ok(c) }
func (stubHandler) ServeSocket(c *ginext.Context)           { ok(c) }

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	auth := middleware.Auth(middleware.NewTokenVerifier(testSecret), log)
	return InitRouter("test", stubHandler{}, auth, middleware.RequestID(), middleware.Recovery(log))
}

func token(t *testing.T, sub, role string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		Role:             role,
		RegisteredClaims: jwt.RegisteredClaims{Subject: sub},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func TestRouter_Access(t *testing.T) {
	r := setupRouter(t)
	user := token(t, "u1", "user")
	admin := token(t, "a1", "admin")

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"health is public", http.MethodGet, "/health", "", http.StatusOK},
		{"webhook is public", http.MethodPost, "/api/v1/payments/webhook", "", http.StatusOK},
		{"service reviews are public", http.MethodGet, "/api/v1/reviews/service/s1", "", http.StatusOK},
		{"bookings need a token", http.MethodPost, "/api/v1/bookings", "", http.StatusUnauthorized},
		{"user creates booking", http.MethodPost, "/api/v1/bookings", user, http.StatusOK},
		{"user lists own bookings", http.MethodGet, "/api/v1/bookings/my-bookings", user, http.StatusOK},
		{"user cannot list all", http.MethodGet, "/api/v1/bookings", user, http.StatusForbidden},
		{"admin lists all", http.MethodGet, "/api/v1/bookings", admin, http.StatusOK},
		{"user cannot override status", http.MethodPatch, "/api/v1/bookings/b1/status", user, http.StatusForbidden},
		{"user cancels", http.MethodPatch, "/api/v1/bookings/b1/cancel", user, http.StatusOK},
		{"user cannot refund", http.MethodPost, "/api/v1/payments/refund", user, http.StatusForbidden},
		{"admin refunds", http.MethodPost, "/api/v1/payments/refund", admin, http.StatusOK},
		{"user cannot moderate", http.MethodPatch, "/api/v1/reviews/admin/reviews/r1/moderate", user, http.StatusForbidden},
		{"review needs a token", http.MethodPost, "/api/v1/reviews", "", http.StatusUnauthorized},
		{"user lists own reviews", http.MethodGet, "/api/v1/reviews/my-reviews", user, http.StatusOK},
		{"user reports review", http.MethodPost, "/api/v1/reviews/r1/report", user, http.StatusOK},
		{"report needs a token", http.MethodPost, "/api/v1/reviews/r1/report", "", http.StatusUnauthorized},
		{"user cannot list moderation queue", http.MethodGet, "/api/v1/reviews/admin/reviews", user, http.StatusForbidden},
		{"admin lists moderation queue", http.MethodGet, "/api/v1/reviews/admin/reviews", admin, http.StatusOK},
		{"admin reads review stats", http.MethodGet, "/api/v1/reviews/admin/reviews/stats", admin, http.StatusOK},
		{"user cannot respond", http.MethodPost, "/api/v1/reviews/admin/reviews/r1/respond", user, http.StatusForbidden},
		{"admin deletes review", http.MethodDelete, "/api/v1/reviews/admin/reviews/r1", admin, http.StatusOK},
		{"analytics need a token", http.MethodGet, "/api/v1/analytics/metrics", "", http.StatusUnauthorized},
		{"user cannot read analytics", http.MethodGet, "/api/v1/analytics/revenue", user, http.StatusForbidden},
		{"admin reads service distribution", http.MethodGet, "/api/v1/analytics/services-distribution", admin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
