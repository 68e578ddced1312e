package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	noteBookingID = "bookingId"
	noteUserID    = "userId"
)

type bookingLedger interface {
	find(ctx context.Context, id string) (*domain.Booking, error)
	findByOrder(ctx context.Context, orderID string) (*domain.Booking, error)
	attachOrder(ctx context.Context, booking *domain.Booking, orderID string) error
	settlePayment(ctx context.Context, bookingID, paymentID string, method *domain.PaymentMethod) (*domain.Booking, bool, error)
	markPaymentFailed(ctx context.Context, bookingID, paymentID string) (*domain.Booking, bool, error)
	awaitingPayment(ctx context.Context, updatedBefore time.Time, limit int) ([]*domain.Booking, error)
}

type PaymentConfig struct {
	KeyID          string
	KeySecret      string
	WebhookSecret  string
	Currency       string
	DedupTTL       time.Duration
	ReconcileGrace time.Duration
	ReconcileBatch int
}

type PaymentService struct {
	ledger  bookingLedger
	gateway ports.PaymentGateway
	dedup   ports.WebhookDeduplicator
	cfg     PaymentConfig
	logger  logger.Logger
	now     func() time.Time
}

// NewPaymentService: dedup может быть nil, тогда повторные вебхуки
// отсекаются только по состоянию брони.
func NewPaymentService(
	ledger *BookingService,
	gateway ports.PaymentGateway,
	dedup ports.WebhookDeduplicator,
	cfg PaymentConfig,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		ledger:  ledger,
		gateway: gateway,
		dedup:   dedup,
		cfg:     cfg,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (s *PaymentService) CreateOrder(ctx context.Context, bookingID string, caller domain.Caller) (*domain.CheckoutOrder, error) {
	booking, err := s.ledger.find(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.OwnedBy(caller.ID) {
		return nil, domain.ErrAccessDenied
	}

	if booking.PaymentStatus == domain.PaymentStatusPaid {
		return nil, fmt.Errorf("%w: booking is already paid", domain.ErrInvalidTransition)
	}
	if booking.Status.Terminal() {
		return nil, fmt.Errorf("%w: booking in status %q cannot be paid",
			domain.ErrInvalidTransition, booking.Status)
	}

	req := domain.OrderRequest{
		Amount:   toMinorUnits(booking.TotalAmount),
		Currency: s.cfg.Currency,
		Receipt:  booking.BookingNumber,
		Notes: map[string]string{
			noteBookingID: booking.ID,
			noteUserID:    booking.UserID,
		},
	}

	order, err := s.gateway.CreateOrder(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: create order: %v", domain.ErrUpstream, err)
	}

	// order id сохраняем до ответа, чтобы вебхук нашел бронь без клиента
	if err = s.ledger.attachOrder(ctx, booking, order.ID); err != nil {
		return nil, err
	}

	s.logger.Info("payment order created",
		logger.String("booking_id", booking.ID),
		logger.String("order_id", order.ID),
		logger.Int64("amount", order.Amount),
	)

	return &domain.CheckoutOrder{
		OrderID:   order.ID,
		Amount:    order.Amount,
		Currency:  order.Currency,
		Receipt:   order.Receipt,
		KeyID:     s.cfg.KeyID,
		BookingID: booking.ID,
	}, nil
}

func (s *PaymentService) VerifyPayment(ctx context.Context, input domain.VerifyPaymentInput) (*domain.Booking, error) {
	verr := &domain.ValidationError{}
	if input.BookingID == "" {
		verr.Add("booking_id", "booking id is required")
	}
	if input.OrderID == "" {
		verr.Add("razorpay_order_id", "order id is required")
	}
	if input.PaymentID == "" {
		verr.Add("razorpay_payment_id", "payment id is required")
	}
	if input.Signature == "" {
		verr.Add("razorpay_signature", "signature is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	payload := []byte(input.OrderID + "|" + input.PaymentID)
	if !validSignature(s.cfg.KeySecret, payload, input.Signature) {
		s.logger.Warn("payment signature mismatch",
			logger.String("booking_id", input.BookingID),
			logger.String("order_id", input.OrderID),
		)
		return nil, domain.ErrSignatureInvalid
	}

	booking, err := s.ledger.find(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}

	// подпись подтверждает пару order/payment, но не бронь из запроса
	if booking.PaymentOrderID == nil || *booking.PaymentOrderID != input.OrderID {
		return nil, fmt.Errorf("%w: order does not belong to booking", domain.ErrSignatureInvalid)
	}

	booking, _, err = s.ledger.settlePayment(ctx, booking.ID, input.PaymentID, parseMethod(input.Method))
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func parseMethod(raw string) *domain.PaymentMethod {
	m := domain.PaymentMethod(raw)
	if !m.Valid() || m == domain.PaymentMethodCOD {
		return nil
	}
	return &m
}

type webhookPayload struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity paymentEntity `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

type paymentEntity struct {
	ID       string          `json:"id"`
	OrderID  string          `json:"order_id"`
	Amount   int64           `json:"amount"`
	Currency string          `json:"currency"`
	Status   string          `json:"status"`
	Method   string          `json:"method"`
	Notes    json.RawMessage `json:"notes"`
}

// decodeNotes терпит пустой массив, который шлюз присылает вместо объекта.
func decodeNotes(raw json.RawMessage) map[string]string {
	notes := map[string]string{}
	if len(raw) == 0 {
		return notes
	}

	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return notes
	}
	for k, v := range generic {
		if str, ok := v.(string); ok {
			notes[k] = str
		}
	}
	return notes
}

func (s *PaymentService) HandleWebhook(ctx context.Context, evt domain.WebhookEvent) (*domain.WebhookResult, error) {
	if !validSignature(s.cfg.WebhookSecret, evt.Body, evt.Signature) {
		s.logger.Warn("webhook signature mismatch", logger.String("event_id", evt.ID))
		return nil, domain.ErrSignatureInvalid
	}

	var body webhookPayload
	if err := json.Unmarshal(evt.Body, &body); err != nil {
		return nil, fmt.Errorf("%w: malformed webhook body", domain.ErrValidation)
	}

	entity := body.Payload.Payment.Entity
	evt.Event = body.Event
	evt.Payment = domain.GatewayPayment{
		ID:       entity.ID,
		OrderID:  entity.OrderID,
		Amount:   entity.Amount,
		Currency: entity.Currency,
		Status:   entity.Status,
		Method:   entity.Method,
		Notes:    decodeNotes(entity.Notes),
	}

	if evt.Event != domain.WebhookPaymentCaptured && evt.Event != domain.WebhookPaymentFailed {
		s.logger.Debug("webhook event ignored", logger.String("event", evt.Event))
		return &domain.WebhookResult{Event: evt.Event}, nil
	}

	claimed := s.claim(ctx, evt.ID)
	if !claimed {
		return &domain.WebhookResult{Event: evt.Event, Duplicate: true}, nil
	}

	res, err := s.applyWebhook(ctx, evt)
	if err != nil {
		s.release(ctx, evt.ID)
		return nil, err
	}

	return res, nil
}

func (s *PaymentService) applyWebhook(ctx context.Context, evt domain.WebhookEvent) (*domain.WebhookResult, error) {
	bookingID, err := s.locateBooking(ctx, evt.Payment)
	if err != nil {
		return nil, err
	}

	res := &domain.WebhookResult{Event: evt.Event, BookingID: bookingID}

	switch evt.Event {
	case domain.WebhookPaymentCaptured:
		_, applied, err := s.ledger.settlePayment(ctx, bookingID, evt.Payment.ID, parseMethod(evt.Payment.Method))
		if err != nil {
			return nil, err
		}
		res.Applied = applied
	case domain.WebhookPaymentFailed:
		_, applied, err := s.ledger.markPaymentFailed(ctx, bookingID, evt.Payment.ID)
		if err != nil {
			return nil, err
		}
		res.Applied = applied
	}

	s.logger.Info("webhook processed",
		logger.String("event", evt.Event),
		logger.String("event_id", evt.ID),
		logger.String("booking_id", bookingID),
		logger.String("payment_id", evt.Payment.ID),
		logger.Any("applied", res.Applied),
	)

	return res, nil
}

func (s *PaymentService) locateBooking(ctx context.Context, p domain.GatewayPayment) (string, error) {
	if id := p.Notes[noteBookingID]; id != "" {
		return id, nil
	}

	if p.OrderID == "" {
		return "", fmt.Errorf("%w: payment carries neither booking note nor order id", domain.ErrValidation)
	}

	booking, err := s.ledger.findByOrder(ctx, p.OrderID)
	if err != nil {
		return "", err
	}
	return booking.ID, nil
}

func (s *PaymentService) claim(ctx context.Context, eventID string) bool {
	if s.dedup == nil || eventID == "" {
		return true
	}

	ok, err := s.dedup.Claim(ctx, eventID, s.cfg.DedupTTL)
	if err != nil {
		s.logger.Warn("webhook dedup unavailable",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return true
	}
	if !ok {
		s.logger.Info("duplicate webhook delivery", logger.String("event_id", eventID))
	}
	return ok
}

func (s *PaymentService) release(ctx context.Context, eventID string) {
	if s.dedup == nil || eventID == "" {
		return
	}
	if err := s.dedup.Release(context.WithoutCancel(ctx), eventID); err != nil {
		s.logger.Warn("webhook dedup release failed",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *PaymentService) GetPaymentDetail(ctx context.Context, paymentID string, caller domain.Caller) (*domain.GatewayPayment, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}

	payment, err := s.gateway.FetchPayment(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch payment: %v", domain.ErrUpstream, err)
	}
	return payment, nil
}

// Refund не меняет статус оплаты брони.
func (s *PaymentService) Refund(ctx context.Context, paymentID string, amount *float64, caller domain.Caller) (*domain.Refund, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}

	if paymentID == "" {
		return nil, domain.NewValidationError(domain.FieldError{Field: "payment_id", Message: "payment id is required"})
	}

	var minor int64
	if amount != nil {
		if *amount <= 0 {
			return nil, domain.NewValidationError(domain.FieldError{Field: "amount", Message: "must be positive"})
		}
		minor = toMinorUnits(*amount)
	} else {
		payment, err := s.gateway.FetchPayment(ctx, paymentID)
		if err != nil {
			return nil, fmt.Errorf("%w: fetch payment: %v", domain.ErrUpstream, err)
		}
		minor = payment.Amount
	}

	refund, err := s.gateway.Refund(ctx, paymentID, minor)
	if err != nil {
		return nil, fmt.Errorf("%w: refund: %v", domain.ErrUpstream, err)
	}

	s.logger.Info("payment refunded",
		logger.String("payment_id", paymentID),
		logger.String("refund_id", refund.ID),
		logger.Int64("amount", refund.Amount),
		logger.String("admin_id", caller.ID),
	)

	return refund, nil
}

// ReconcilePending добирает оплаты, по которым вебхук так и не пришел.
func (s *PaymentService) ReconcilePending(ctx context.Context) (*domain.ReconcileResult, error) {
	now := s.now()
	bookings, err := s.ledger.awaitingPayment(ctx, now.Add(-s.cfg.ReconcileGrace), s.cfg.ReconcileBatch)
	if err != nil {
		return nil, err
	}

	res := &domain.ReconcileResult{At: now}
	for _, b := range bookings {
		if b.PaymentOrderID == nil {
			continue
		}
		res.Checked++

		payments, err := s.gateway.OrderPayments(ctx, *b.PaymentOrderID)
		if err != nil {
			s.logger.Error("failed to fetch order payments",
				logger.String("booking_id", b.ID),
				logger.String("order_id", *b.PaymentOrderID),
				logger.String("error", err.Error()),
			)
			continue
		}

		if err = s.reconcileBooking(ctx, b, payments, res); err != nil {
			if errors.Is(err, context.Canceled) {
				return res, err
			}
			s.logger.Error("failed to reconcile booking",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	return res, nil
}

func (s *PaymentService) reconcileBooking(ctx context.Context, b *domain.Booking, payments []domain.GatewayPayment, res *domain.ReconcileResult) error {
	if len(payments) == 0 {
		return nil
	}

	allFailed := true
	for _, p := range payments {
		if p.Status == domain.GatewayPaymentCaptured {
			_, applied, err := s.ledger.settlePayment(ctx, b.ID, p.ID, parseMethod(p.Method))
			if err != nil {
				return err
			}
			if applied {
				res.Settled++
			}
			return nil
		}
		if p.Status != domain.GatewayPaymentFailed {
			allFailed = false
		}
	}

	if !allFailed {
		return nil
	}

	last := payments[len(payments)-1]
	_, applied, err := s.ledger.markPaymentFailed(ctx, b.ID, last.ID)
	if err != nil {
		return err
	}
	if applied {
		res.Failed++
	}
	return nil
}
