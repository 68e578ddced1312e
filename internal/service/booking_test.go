package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingDeps struct {
	bookingRepo *mocks.MockBookingRepo
	catalogRepo *mocks.MockCatalogRepo
	userRepo    *mocks.MockUserRepo
	notifier    *mocks.MockBookingNotifier
	locations   *mocks.MockLocationPublisher
}

func newBookingService(t *testing.T) (*BookingService, bookingDeps) {
	t.Helper()
	deps := bookingDeps{
		bookingRepo: mocks.NewMockBookingRepo(t),
		catalogRepo: mocks.NewMockCatalogRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		notifier:    mocks.NewMockBookingNotifier(t),
		locations:   mocks.NewMockLocationPublisher(t),
	}
	svc := NewBookingService(deps.bookingRepo, deps.catalogRepo, deps.userRepo, deps.notifier, deps.locations, newTestLogger(t))
	return svc, deps
}

var (
	customer = domain.Caller{ID: "u1", Role: domain.RoleUser}
	stranger = domain.Caller{ID: "u2", Role: domain.RoleUser}
	admin    = domain.Caller{ID: "a1", Role: domain.RoleAdmin}
)

func validCreateInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		ServiceID:     "s1",
		ScheduledDate: "2026-12-25T10:00:00Z",
		Address:       domain.Address{Line1: "12 MG Road", City: "Pune", Pincode: "411001"},
		Name:          "Asha",
		Phone:         "9876543210",
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, deps := newBookingService(t)

	service := &domain.CatalogService{ID: "s1", Name: "AC repair", Price: 2999, IsActive: true}
	deps.catalogRepo.EXPECT().GetService(mock.Anything, "s1").Return(service, nil)
	deps.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	deps.notifier.EXPECT().Notify(mock.Anything, domain.NotifyBookingConfirmation, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), customer, validCreateInput())

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, domain.PaymentStatusPending, booking.PaymentStatus)
	assert.Equal(t, 2999.0, booking.TotalAmount)
	assert.Equal(t, "u1", booking.UserID)
	assert.Equal(t, "Pune", booking.ServiceAddress.City)
	assert.Regexp(t, regexp.MustCompile(`^BK\d{6}[0-9A-Z]{6}$`), booking.BookingNumber)
	assert.NotEmpty(t, booking.ID)

	// цена в каталоге поменялась, бронь нет
	service.Price = 4999
	assert.Equal(t, 2999.0, booking.TotalAmount)
}

func TestBookingService_Create_ValidationPerField(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.Create(context.Background(), customer, domain.CreateBookingInput{ScheduledDate: "tomorrow"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))

	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{
		"service_id",
		"scheduled_date",
		"service_address.address_line1",
		"service_address.city",
		"service_address.pincode",
	}, fields)
}

func TestBookingService_Create_ServiceNotFound(t *testing.T) {
	svc, deps := newBookingService(t)

	deps.catalogRepo.EXPECT().GetService(mock.Anything, "s1").Return(nil, domain.ErrServiceNotFound)

	_, err := svc.Create(context.Background(), customer, validCreateInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
}

func TestBookingService_Create_InactiveService(t *testing.T) {
	svc, deps := newBookingService(t)

	deps.catalogRepo.EXPECT().GetService(mock.Anything, "s1").
		Return(&domain.CatalogService{ID: "s1", Price: 100, IsActive: false}, nil)

	_, err := svc.Create(context.Background(), customer, validCreateInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_ContactFromProfile(t *testing.T) {
	svc, deps := newBookingService(t)

	input := validCreateInput()
	input.Name = ""
	input.Phone = ""

	deps.catalogRepo.EXPECT().GetService(mock.Anything, "s1").
		Return(&domain.CatalogService{ID: "s1", Price: 499, IsActive: true}, nil)
	deps.userRepo.EXPECT().GetByID(mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Name: "Ravi", Phone: "9000000000"}, nil)
	deps.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	deps.notifier.EXPECT().Notify(mock.Anything, domain.NotifyBookingConfirmation, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), customer, input)

	require.NoError(t, err)
	assert.Equal(t, "Ravi", booking.Name)
	assert.Equal(t, "9000000000", booking.Phone)
}

func TestBookingService_Create_RepoError(t *testing.T) {
	svc, deps := newBookingService(t)

	deps.catalogRepo.EXPECT().GetService(mock.Anything, "s1").
		Return(&domain.CatalogService{ID: "s1", Price: 499, IsActive: true}, nil)
	deps.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := svc.Create(context.Background(), customer, validCreateInput())

	require.Error(t, err)
}

func TestBookingService_Get(t *testing.T) {
	svc, deps := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1"}
	deps.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	deps.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	got, err := svc.Get(context.Background(), "b1", customer)
	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)

	_, err = svc.Get(context.Background(), "b1", admin)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "b1", stranger)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)

	_, err = svc.Get(context.Background(), "missing", customer)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Cancel_NotCancellable(t *testing.T) {
	statuses := []domain.BookingStatus{
		domain.BookingStatusAssigned,
		domain.BookingStatusOnTheWay,
		domain.BookingStatusInProgress,
		domain.BookingStatusCompleted,
		domain.BookingStatusCancelled,
	}

	for _, status := range statuses {
		t.Run(string(status), func(t *testing.T) {
			svc, deps := newBookingService(t)

			deps.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
				Return(&domain.Booking{ID: "b1", UserID: "u1", Status: status}, nil)

			_, err := svc.Cancel(context.Background(), "b1", customer)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		})
	}
}

func TestBookingService_Cancel_Success(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.BookingStatusPending, domain.BookingStatusConfirmed} {
		t.Run(string(status), func(t *testing.T) {
			svc, deps := newBookingService(t)

			deps.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
				Return(&domain.Booking{ID: "b1", UserID: "u1", Status: status}, nil)
			deps.bookingRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
				return b.Status == domain.BookingStatusCancelled
			})).Return(nil)

			booking, err := svc.Cancel(context.Background(), "b1", customer)

			require.NoError(t, err)
			assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
		})
	}
}

func TestBookingService_Cancel_NotOwner(t *testing.T) {
	svc, deps := newBookingService(t)

	deps.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusPending}, nil)

	_, err := svc.Cancel(context.Background(), "b1", admin)

	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestBookingService_CreateConfirmCODThenCancel(t *testing.T) {
	svc, deps := newBookingService(t)

	var stored *domain.Booking
	deps.catalogRepo.EXPECT().GetService(mock.Anything, "s1").
		Return(&domain.CatalogService{ID: "s1", Price: 2999, IsActive: true}, nil)
	deps.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, b *domain.Booking) { stored = b }).
		Return(nil)
	deps.bookingRepo.EXPECT().GetByID(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string) (*domain.Booking, error) { return stored, nil })
	deps.bookingRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	deps.notifier.EXPECT().Notify(mock.Anything, domain.NotifyBookingConfirmation, mock.Anything).Return().Times(2)

	ctx := context.Background()

	booking, err := svc.Create(ctx, customer, validCreateInput())
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, domain.PaymentStatusPending, booking.PaymentStatus)
	assert.Equal(t, 2999.0, booking.TotalAmount)

	booking, err = svc.ConfirmCashOnDelivery(ctx, booking.ID, customer)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	require.NotNil(t, booking.PaymentMethod)
	assert.Equal(t, domain.PaymentMethodCOD, *booking.PaymentMethod)
	assert.Equal(t, domain.PaymentStatusPending, booking.PaymentStatus)

	booking, err = svc.Cancel(ctx, booking.ID, customer)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
}

func TestBookingService_ConfirmCOD_NotPending(t *testing.T) {
	svc, deps := newBookingService(t)

	deps.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusConfirmed}, nil)

	_, err := svc.ConfirmCashOnDelivery(context.Background(), "b1", customer)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_AssignWorker_OTP(t *testing.T) {
	svc, deps := newBookingService(t)

	// переназначение разрешено из любого статуса, даже завершенного
	booking := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusCompleted}
	deps.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	deps.bookingRepo.EXPECT().Update(mock.Anything, booking).Return(nil)
	deps.notifier.EXPECT().Notify(mock.Anything, domain.NotifyWorkerAssigned, mock.Anything).Return()

	got, err := svc.AssignWorker(context.Background(), "b1", "w1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAssigned, got.Status)
	require.NotNil(t, got.WorkerID)
	assert.Equal(t, "w1", *got.WorkerID)
	require.NotNil(t, got.OTP)
	assert.Len(t, *got.OTP, 4)

	otp, err := strconv.Atoi(*got.OTP)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, otp, 1000)
	assert.LessOrEqual(t, otp, 9999)
}

func TestNewOTP_Range(t *testing.T) {
	for i := 0; i < 5000; i++ {
		otp := newOTP()
		require.Len(t, otp, 4)
		n, err := strconv.Atoi(otp)
		require.NoError(t, err)
		require.True(t, n >= 1000 && n <= 9999, "otp %d out of range", n)
	}
}

func TestNewBookingNumber_Format(t *testing.T) {
	now := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)

	num := newBookingNumber(now)

	assert.Regexp(t, regexp.MustCompile(`^BK260307[0-9A-Z]{6}$`), num)
}

func TestBookingService_UpdateWorkerLocation(t *testing.T) {
	svc, deps := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusAssigned}
	loc := domain.Location{Lat: 28.1, Lng: 77.4}

	deps.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	deps.bookingRepo.EXPECT().Update(mock.Anything, booking).Return(nil)
	deps.locations.EXPECT().PublishLocation("b1", loc).Return(1)

	got, err := svc.UpdateWorkerLocation(context.Background(), "b1", loc)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusOnTheWay, got.Status)
	require.NotNil(t, got.WorkerLocation)
	assert.Equal(t, 28.1, got.WorkerLocation.Lat)
	assert.Equal(t, 77.4, got.WorkerLocation.Lng)
	assert.False(t, got.WorkerLocation.UpdatedAt.IsZero())
}

func TestBookingService_UpdateWorkerLocation_NoSubscribers(t *testing.T) {
	svc, deps := newBookingService(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusAssigned}
	deps.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	deps.bookingRepo.EXPECT().Update(mock.Anything, booking).Return(nil)
	deps.locations.EXPECT().PublishLocation("b1", mock.Anything).Return(0)

	_, err := svc.UpdateWorkerLocation(context.Background(), "b1", domain.Location{Lat: 1, Lng: 2})

	require.NoError(t, err)
}

func TestBookingService_UpdateWorkerLocation_InvalidCoordinates(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.UpdateWorkerLocation(context.Background(), "b1", domain.Location{Lat: 95, Lng: -200})

	require.Error(t, err)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
}

func TestBookingService_UpdateWorkerLocation_NotFound(t *testing.T) {
	svc, deps := newBookingService(t)

	deps.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.UpdateWorkerLocation(context.Background(), "b1", domain.Location{Lat: 1, Lng: 2})

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_OverrideStatus(t *testing.T) {
	svc, deps := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusCompleted}
	deps.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	deps.bookingRepo.EXPECT().Update(mock.Anything, booking).Return(nil)
	deps.notifier.EXPECT().Notify(mock.Anything, domain.NotifyStatusUpdate, mock.Anything).Return()

	got, err := svc.OverrideStatus(context.Background(), "b1", domain.BookingStatusPending, admin)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, got.Status)
}

func TestBookingService_OverrideStatus_RequiresAdmin(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.OverrideStatus(context.Background(), "b1", domain.BookingStatusCompleted, customer)

	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestBookingService_OverrideStatus_InvalidStatus(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.OverrideStatus(context.Background(), "b1", domain.BookingStatus("archived"), admin)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_List(t *testing.T) {
	svc, deps := newBookingService(t)

	own := []*domain.Booking{{ID: "b1", UserID: "u1"}}
	all := []*domain.Booking{{ID: "b1", UserID: "u1"}, {ID: "b2", UserID: "u2"}}

	deps.bookingRepo.EXPECT().List(mock.Anything, domain.BookingFilter{UserID: "u1", Limit: 5}).Return(own, nil)
	deps.bookingRepo.EXPECT().List(mock.Anything, domain.BookingFilter{Limit: 5}).Return(all, nil)

	got, err := svc.List(context.Background(), domain.BookingFilter{Limit: 5}, customer)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.List(context.Background(), domain.BookingFilter{Limit: 5}, admin)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = svc.List(context.Background(), domain.BookingFilter{Limit: -1}, admin)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
