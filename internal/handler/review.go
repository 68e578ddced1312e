package handler

import (
	"net/http"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateReview(c *ginext.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, bindError(err))
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), callerOf(c), domain.CreateReviewInput{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *Handler) ServiceReviews(c *ginext.Context) {
	serviceID, ok := pathID(c, "serviceId")
	if !ok {
		return
	}

	limit, ok := h.queryInt(c, "limit")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListByService(c.Request.Context(), serviceID, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponses(reviews))
}

func (h *Handler) MyReviews(c *ginext.Context) {
	reviews, err := h.reviewService.MyReviews(c.Request.Context(), callerOf(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponses(reviews))
}

func (h *Handler) ReportReview(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ReportReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, bindError(err))
		return
	}

	review, err := h.reviewService.Report(c.Request.Context(), callerOf(c), domain.ReportReviewInput{
		ReviewID: id,
		Reason:   req.Reason,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"id": review.ID, "report_count": review.ReportCount})
}

func (h *Handler) AdminReviews(c *ginext.Context) {
	rating, ok := h.queryInt(c, "rating")
	if !ok {
		return
	}
	limit, ok := h.queryInt(c, "limit")
	if !ok {
		return
	}

	reviews, err := h.reviewService.AdminList(c.Request.Context(), callerOf(c), domain.ReviewFilter{
		ServiceID: c.Query("service_id"),
		Status:    domain.ReviewStatus(c.Query("status")),
		Rating:    rating,
		Limit:     limit,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponses(reviews))
}

func (h *Handler) ReviewStats(c *ginext.Context) {
	stats, err := h.reviewService.Stats(c.Request.Context(), callerOf(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) AdminGetReview(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	review, err := h.reviewService.Get(c.Request.Context(), callerOf(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

func (h *Handler) ModerateReview(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ModerateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, bindError(err))
		return
	}

	review, err := h.reviewService.Moderate(c.Request.Context(), callerOf(c), domain.ModerateReviewInput{
		ReviewID: id,
		Status:   domain.ReviewStatus(req.Status),
		Note:     req.Note,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

func (h *Handler) RespondReview(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.RespondReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, bindError(err))
		return
	}

	review, err := h.reviewService.Respond(c.Request.Context(), callerOf(c), domain.RespondReviewInput{
		ReviewID: id,
		Message:  req.Message,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

func (h *Handler) DeleteReview(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), callerOf(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
