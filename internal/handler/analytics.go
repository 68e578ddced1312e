package handler

import (
	"net/http"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) AnalyticsMetrics(c *ginext.Context) {
	metrics, err := h.analyticsService.Metrics(c.Request.Context(), callerOf(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// AnalyticsRevenue: period одно из 7days, 30days, 6months, 12months.
func (h *Handler) AnalyticsRevenue(c *ginext.Context) {
	period := domain.RevenuePeriod(c.DefaultQuery("period", string(domain.RevenuePeriod30Days)))

	points, err := h.analyticsService.Revenue(c.Request.Context(), callerOf(c), period)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, points)
}

func (h *Handler) AnalyticsServices(c *ginext.Context) {
	shares, err := h.analyticsService.ServiceDistribution(c.Request.Context(), callerOf(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, shares)
}
