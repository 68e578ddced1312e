package router

import (
	"net/http"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	MyBookings(c *ginext.Context)
	ListBookings(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ConfirmCashOnDelivery(c *ginext.Context)
	AssignWorker(c *ginext.Context)
	UpdateWorkerLocation(c *ginext.Context)
	OverrideBookingStatus(c *ginext.Context)

	CreatePaymentOrder(c *ginext.Context)
	VerifyPayment(c *ginext.Context)
	PaymentWebhook(c *ginext.Context)
	GetPayment(c *ginext.Context)
	RefundPayment(c *ginext.Context)

	CreateReview(c *ginext.Context)
	ServiceReviews(c *ginext.Context)
	MyReviews(c *ginext.Context)
	ReportReview(c *ginext.Context)
	AdminReviews(c *ginext.Context)
	ReviewStats(c *ginext.Context)
	AdminGetReview(c *ginext.Context)
	ModerateReview(c *ginext.Context)
	RespondReview(c *ginext.Context)
	DeleteReview(c *ginext.Context)

	AnalyticsMetrics(c *ginext.Context)
	AnalyticsRevenue(c *ginext.Context)
	AnalyticsServices(c *ginext.Context)

	ServeSocket(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	admin := middleware.RequireRole(domain.RoleAdmin)

	api := router.Group("/api/v1")
	{
		// Bookings
		bookings := api.Group("/bookings", auth)
		bookings.POST("", h.CreateBooking)
		bookings.GET("", admin, h.ListBookings)
		bookings.GET("/my-bookings", h.MyBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.PATCH("/:id/status", admin, h.OverrideBookingStatus)
		bookings.PATCH("/:id/assign-worker", h.AssignWorker)
		bookings.PATCH("/:id/update-location", h.UpdateWorkerLocation)
		bookings.PATCH("/:id/cancel", h.CancelBooking)
		bookings.POST("/:id/confirm-cod", h.ConfirmCashOnDelivery)

		// Payments, вебхук подписан секретом шлюза
		api.POST("/payments/webhook", h.PaymentWebhook)
		payments := api.Group("/payments", auth)
		payments.POST("/create-order", h.CreatePaymentOrder)
		payments.POST("/verify", h.VerifyPayment)
		payments.GET("/payment/:id", admin, h.GetPayment)
		payments.POST("/refund", admin, h.RefundPayment)

		// Reviews
		api.GET("/reviews/service/:serviceId", h.ServiceReviews)
		reviews := api.Group("/reviews", auth)
		reviews.POST("", h.CreateReview)
		reviews.GET("/my-reviews", h.MyReviews)
		reviews.POST("/:id/report", h.ReportReview)

		moderation := reviews.Group("/admin/reviews", admin)
		moderation.GET("", h.AdminReviews)
		moderation.GET("/stats", h.ReviewStats)
		moderation.GET("/:id", h.AdminGetReview)
		moderation.PATCH("/:id/moderate", h.ModerateReview)
		moderation.POST("/:id/respond", h.RespondReview)
		moderation.DELETE("/:id", h.DeleteReview)

		// Analytics
		analytics := api.Group("/analytics", auth, admin)
		analytics.GET("/metrics", h.AnalyticsMetrics)
		analytics.GET("/revenue", h.AnalyticsRevenue)
		analytics.GET("/services-distribution", h.AnalyticsServices)
	}

	router.GET("/ws", h.ServeSocket)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
