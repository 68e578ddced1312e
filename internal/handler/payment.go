package handler

import (
	"net/http"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const (
	headerWebhookSignature = "X-Razorpay-Signature"
	headerWebhookEventID   = "X-Razorpay-Event-Id"
)

func (h *Handler) CreatePaymentOrder(c *ginext.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, bindError(err))
		return
	}

	order, err := h.paymentService.CreateOrder(c.Request.Context(), req.BookingID, callerOf(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *Handler) VerifyPayment(c *ginext.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, bindError(err))
		return
	}

	booking, err := h.paymentService.VerifyPayment(c.Request.Context(), domain.VerifyPaymentInput{
		BookingID: req.BookingID,
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
		Method:    req.Method,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// PaymentWebhook подписан секретом вебхука, bearer-токена нет. Подпись
// считается по сырому телу, поэтому тело читается до разбора.
func (h *Handler) PaymentWebhook(c *ginext.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.handleError(c, domain.NewValidationError(domain.FieldError{Field: "body", Message: "unreadable body"}))
		return
	}

	res, err := h.paymentService.HandleWebhook(c.Request.Context(), domain.WebhookEvent{
		ID:        c.GetHeader(headerWebhookEventID),
		Signature: c.GetHeader(headerWebhookSignature),
		Body:      body,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetPayment(c *ginext.Context) {
	payment, err := h.paymentService.GetPaymentDetail(c.Request.Context(), c.Param("id"), callerOf(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *Handler) RefundPayment(c *ginext.Context) {
	var req dto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, bindError(err))
		return
	}

	refund, err := h.paymentService.Refund(c.Request.Context(), req.PaymentID, req.Amount, callerOf(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, refund)
}
