package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, bindError(err))
		return
	}

	input := domain.CreateBookingInput{
		ServiceID:     req.ServiceID,
		ScheduledDate: req.ScheduledDate,
		Address:       domain.Address(req.ServiceAddress),
		Name:          req.Name,
		Phone:         req.Phone,
		Notes:         req.Notes,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), callerOf(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id, callerOf(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) MyBookings(c *ginext.Context) {
	caller := callerOf(c)
	h.listBookings(c, domain.BookingFilter{UserID: caller.ID}, caller)
}

func (h *Handler) ListBookings(c *ginext.Context) {
	h.listBookings(c, domain.BookingFilter{UserID: c.Query("user_id")}, callerOf(c))
}

func (h *Handler) listBookings(c *ginext.Context, filter domain.BookingFilter, caller domain.Caller) {
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			h.handleError(c, domain.NewValidationError(domain.FieldError{Field: "limit", Message: "must be an integer"}))
			return
		}
		filter.Limit = limit
	}

	bookings, err := h.bookingService.List(c.Request.Context(), filter, caller)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id, callerOf(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ConfirmCashOnDelivery(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.ConfirmCashOnDelivery(c.Request.Context(), id, callerOf(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// AssignWorker по умолчанию назначает исполнителем самого вызывающего.
func (h *Handler) AssignWorker(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	// тело необязательно, пустое тело дает io.EOF
	var req dto.AssignWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.handleError(c, bindError(err))
		return
	}

	caller := callerOf(c)
	workerID := caller.ID
	if req.WorkerID != "" && caller.IsAdmin() {
		workerID = req.WorkerID
	}

	booking, err := h.bookingService.AssignWorker(c.Request.Context(), id, workerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) UpdateWorkerLocation(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, bindError(err))
		return
	}

	booking, err := h.bookingService.UpdateWorkerLocation(c.Request.Context(), id, domain.Location{Lat: *req.Lat, Lng: *req.Lng})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) OverrideBookingStatus(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, bindError(err))
		return
	}

	booking, err := h.bookingService.OverrideStatus(c.Request.Context(), id, domain.BookingStatus(req.Status), callerOf(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
