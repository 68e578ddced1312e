package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// BookingService единственный меняет статусы брони, оплату и исполнителя.
type BookingService struct {
	bookingRepo ports.BookingRepo
	catalogRepo ports.CatalogRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	locations   ports.LocationPublisher
	logger      logger.Logger
	now         func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	catalogRepo ports.CatalogRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	locations ports.LocationPublisher,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		locations:   locations,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *BookingService) Create(ctx context.Context, caller domain.Caller, input domain.CreateBookingInput) (*domain.Booking, error) {
	scheduled, err := validateCreateInput(input)
	if err != nil {
		return nil, err
	}

	svc, err := s.catalogRepo.GetService(ctx, input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if !svc.IsActive {
		return nil, domain.NewValidationError(domain.FieldError{
			Field: "service_id", Message: "service is not available for booking",
		})
	}

	name, phone, err := s.resolveContact(ctx, caller.ID, input.Name, input.Phone)
	if err != nil {
		return nil, err
	}

	now := s.now()
	booking := &domain.Booking{
		ID:             uuid.New().String(),
		UserID:         caller.ID,
		ServiceID:      svc.ID,
		Name:           name,
		Phone:          phone,
		BookingNumber:  newBookingNumber(now),
		ScheduledDate:  scheduled.UTC(),
		Status:         domain.BookingStatusPending,
		TotalAmount:    svc.Price,
		PaymentStatus:  domain.PaymentStatusPending,
		ServiceAddress: input.Address,
		Notes:          input.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("booking_number", booking.BookingNumber),
		logger.String("service_id", svc.ID),
		logger.String("user_id", caller.ID),
	)

	s.notify(ctx, domain.NotifyBookingConfirmation, booking)

	return booking, nil
}

func validateCreateInput(input domain.CreateBookingInput) (time.Time, error) {
	verr := &domain.ValidationError{}

	if input.ServiceID == "" {
		verr.Add("service_id", "service is required")
	}

	scheduled, err := time.Parse(time.RFC3339, input.ScheduledDate)
	if err != nil {
		verr.Add("scheduled_date", "valid RFC3339 date is required")
	}

	if input.Address.Line1 == "" {
		verr.Add("service_address.address_line1", "address is required")
	}
	if input.Address.City == "" {
		verr.Add("service_address.city", "city is required")
	}
	if input.Address.Pincode == "" {
		verr.Add("service_address.pincode", "pincode is required")
	}

	return scheduled, verr.OrNil()
}

// resolveContact подставляет имя и телефон из профиля, если клиент их не передал.
func (s *BookingService) resolveContact(ctx context.Context, userID, name, phone string) (string, string, error) {
	if name != "" && phone != "" {
		return name, phone, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return "", "", fmt.Errorf("get user: %w", err)
	}
	if user != nil {
		if name == "" {
			name = user.Name
		}
		if phone == "" {
			phone = user.Phone
		}
	}

	verr := &domain.ValidationError{}
	if name == "" {
		verr.Add("name", "contact name is required")
	}
	if phone == "" {
		verr.Add("phone", "contact phone is required")
	}

	return name, phone, verr.OrNil()
}

func (s *BookingService) Get(ctx context.Context, id string, caller domain.Caller) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if !booking.OwnedBy(caller.ID) && !caller.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}

	return booking, nil
}

func (s *BookingService) List(ctx context.Context, filter domain.BookingFilter, caller domain.Caller) ([]*domain.Booking, error) {
	if filter.Limit < 0 {
		return nil, domain.NewValidationError(domain.FieldError{Field: "limit", Message: "must not be negative"})
	}

	// обычный пользователь видит только свои брони
	if !caller.IsAdmin() {
		filter.UserID = caller.ID
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, nil
}

func (s *BookingService) Cancel(ctx context.Context, id string, caller domain.Caller) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if !booking.OwnedBy(caller.ID) {
		return nil, domain.ErrAccessDenied
	}

	if !booking.Status.Cancellable() {
		return nil, fmt.Errorf("%w: booking in status %q cannot be cancelled",
			domain.ErrInvalidTransition, booking.Status)
	}

	booking.Status = domain.BookingStatusCancelled
	booking.UpdatedAt = s.now()

	if err = s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", caller.ID),
		logger.String("payment_status", string(booking.PaymentStatus)),
	)

	return booking, nil
}

func (s *BookingService) ConfirmCashOnDelivery(ctx context.Context, id string, caller domain.Caller) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if !booking.OwnedBy(caller.ID) {
		return nil, domain.ErrAccessDenied
	}

	if booking.Status != domain.BookingStatusPending {
		return nil, fmt.Errorf("%w: booking is not in pending status", domain.ErrInvalidTransition)
	}

	cod := domain.PaymentMethodCOD
	booking.Status = domain.BookingStatusConfirmed
	booking.PaymentMethod = &cod
	booking.PaymentStatus = domain.PaymentStatusPending
	booking.UpdatedAt = s.now()

	if err = s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("confirm cod: %w", err)
	}

	s.logger.Info("booking confirmed with cash on delivery",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", caller.ID),
	)

	s.notify(ctx, domain.NotifyBookingConfirmation, booking)

	return booking, nil
}

// AssignWorker не проверяет текущий статус: переназначить можно любую бронь.
func (s *BookingService) AssignWorker(ctx context.Context, id, workerID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	otp := newOTP()
	previous := booking.Status
	booking.Status = domain.BookingStatusAssigned
	booking.WorkerID = &workerID
	booking.OTP = &otp
	booking.UpdatedAt = s.now()

	if err = s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("assign worker: %w", err)
	}

	s.logger.Info("worker assigned",
		logger.String("booking_id", booking.ID),
		logger.String("worker_id", workerID),
		logger.String("previous_status", string(previous)),
	)

	s.notify(ctx, domain.NotifyWorkerAssigned, booking)

	return booking, nil
}

func (s *BookingService) UpdateWorkerLocation(ctx context.Context, id string, loc domain.Location) (*domain.Booking, error) {
	verr := &domain.ValidationError{}
	if loc.Lat < -90 || loc.Lat > 90 {
		verr.Add("lat", "must be between -90 and 90")
	}
	if loc.Lng < -180 || loc.Lng > 180 {
		verr.Add("lng", "must be between -180 and 180")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	now := s.now()
	booking.Status = domain.BookingStatusOnTheWay
	booking.WorkerLocation = &domain.WorkerLocation{Location: loc, UpdatedAt: now}
	booking.UpdatedAt = now

	if err = s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update location: %w", err)
	}

	if s.locations != nil {
		delivered := s.locations.PublishLocation(booking.ID, loc)
		s.logger.Debug("location published",
			logger.String("booking_id", booking.ID),
			logger.Int("subscribers", delivered),
		)
	}

	return booking, nil
}

// OverrideStatus: административный обход машины состояний. Каждое
// использование пишется в лог.
func (s *BookingService) OverrideStatus(ctx context.Context, id string, status domain.BookingStatus, caller domain.Caller) (*domain.Booking, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrAccessDenied
	}

	if !status.Valid() {
		return nil, domain.NewValidationError(domain.FieldError{Field: "status", Message: "invalid status"})
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	previous := booking.Status
	booking.Status = status
	booking.UpdatedAt = s.now()

	if err = s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("override status: %w", err)
	}

	s.logger.Warn("booking status overridden by admin",
		logger.String("booking_id", booking.ID),
		logger.String("admin_id", caller.ID),
		logger.String("from", string(previous)),
		logger.String("to", string(status)),
	)

	s.notify(ctx, domain.NotifyStatusUpdate, booking)

	return booking, nil
}

// Операции ниже вызывает только сверка платежей.

func (s *BookingService) find(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return booking, nil
}

func (s *BookingService) findByOrder(ctx context.Context, orderID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByPaymentOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get booking by order: %w", err)
	}
	return booking, nil
}

// attachOrder открывает новую попытку оплаты: неудачная оплата снова ждет.
func (s *BookingService) attachOrder(ctx context.Context, booking *domain.Booking, orderID string) error {
	booking.PaymentOrderID = &orderID
	if booking.PaymentStatus == domain.PaymentStatusFailed {
		booking.PaymentStatus = domain.PaymentStatusPending
	}
	booking.UpdatedAt = s.now()

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return fmt.Errorf("attach order: %w", err)
	}
	return nil
}

// settlePayment идемпотентна: уже оплаченная бронь не меняется и уведомление
// второй раз не уходит. Лишний платеж только логируется для ручного возврата.
func (s *BookingService) settlePayment(ctx context.Context, bookingID, paymentID string, method *domain.PaymentMethod) (*domain.Booking, bool, error) {
	booking, err := s.find(ctx, bookingID)
	if err != nil {
		return nil, false, err
	}

	if !booking.MarkPaid(paymentID, method, s.now()) {
		if booking.PaymentID != nil && *booking.PaymentID != paymentID {
			s.logger.Warn("extra payment captured for paid booking, refund required",
				logger.String("booking_id", booking.ID),
				logger.String("payment_id", *booking.PaymentID),
				logger.String("extra_payment_id", paymentID),
			)
		} else {
			s.logger.Info("payment already applied",
				logger.String("booking_id", booking.ID),
				logger.String("payment_id", paymentID),
			)
		}
		return booking, false, nil
	}

	if err = s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, false, fmt.Errorf("mark paid: %w", err)
	}

	if booking.Status == domain.BookingStatusCancelled {
		s.logger.Warn("payment captured for cancelled booking, refund required",
			logger.String("booking_id", booking.ID),
			logger.String("payment_id", paymentID),
		)
		return booking, true, nil
	}

	s.logger.Info("booking paid",
		logger.String("booking_id", booking.ID),
		logger.String("payment_id", paymentID),
		logger.String("status", string(booking.Status)),
	)

	s.notify(ctx, domain.NotifyPaymentSuccess, booking)

	return booking, true, nil
}

// markPaymentFailed не трогает статус брони: клиент может повторить оплату
// или заплатить наличными. Меняется только ожидающая оплата.
func (s *BookingService) markPaymentFailed(ctx context.Context, bookingID, paymentID string) (*domain.Booking, bool, error) {
	booking, err := s.find(ctx, bookingID)
	if err != nil {
		return nil, false, err
	}

	if booking.PaymentStatus != domain.PaymentStatusPending {
		return booking, false, nil
	}

	booking.PaymentStatus = domain.PaymentStatusFailed
	booking.UpdatedAt = s.now()

	if err = s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, false, fmt.Errorf("mark payment failed: %w", err)
	}

	s.logger.Warn("booking payment failed",
		logger.String("booking_id", booking.ID),
		logger.String("payment_id", paymentID),
	)

	return booking, true, nil
}

func (s *BookingService) awaitingPayment(ctx context.Context, updatedBefore time.Time, limit int) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.ListAwaitingPayment(ctx, updatedBefore, limit)
	if err != nil {
		return nil, fmt.Errorf("list awaiting payment: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) notify(ctx context.Context, kind domain.NotificationKind, booking *domain.Booking) {
	snapshot := *booking
	s.notifier.Notify(context.WithoutCancel(ctx), kind, &snapshot)
}
