package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/handler/dto"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/middleware"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/relay"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type BookingSvc interface {
	Create(ctx context.Context, caller domain.Caller, input domain.CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, id string, caller domain.Caller) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter, caller domain.Caller) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string, caller domain.Caller) (*domain.Booking, error)
	ConfirmCashOnDelivery(ctx context.Context, id string, caller domain.Caller) (*domain.Booking, error)
	AssignWorker(ctx context.Context, id, workerID string) (*domain.Booking, error)
	UpdateWorkerLocation(ctx context.Context, id string, loc domain.Location) (*domain.Booking, error)
	OverrideStatus(ctx context.Context, id string, status domain.BookingStatus, caller domain.Caller) (*domain.Booking, error)
}

type PaymentSvc interface {
	CreateOrder(ctx context.Context, bookingID string, caller domain.Caller) (*domain.CheckoutOrder, error)
	VerifyPayment(ctx context.Context, input domain.VerifyPaymentInput) (*domain.Booking, error)
	HandleWebhook(ctx context.Context, evt domain.WebhookEvent) (*domain.WebhookResult, error)
	GetPaymentDetail(ctx context.Context, paymentID string, caller domain.Caller) (*domain.GatewayPayment, error)
	Refund(ctx context.Context, paymentID string, amount *float64, caller domain.Caller) (*domain.Refund, error)
}

type ReviewSvc interface {
	Create(ctx context.Context, caller domain.Caller, input domain.CreateReviewInput) (*domain.Review, error)
	ListByService(ctx context.Context, serviceID string, limit int) ([]*domain.Review, error)
	Moderate(ctx context.Context, caller domain.Caller, input domain.ModerateReviewInput) (*domain.Review, error)
	MyReviews(ctx context.Context, caller domain.Caller) ([]*domain.Review, error)
	Report(ctx context.Context, caller domain.Caller, input domain.ReportReviewInput) (*domain.Review, error)
	AdminList(ctx context.Context, caller domain.Caller, filter domain.ReviewFilter) ([]*domain.Review, error)
	Get(ctx context.Context, caller domain.Caller, id string) (*domain.Review, error)
	Stats(ctx context.Context, caller domain.Caller) (*domain.ReviewStats, error)
	Respond(ctx context.Context, caller domain.Caller, input domain.RespondReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, caller domain.Caller, id string) error
}

type AnalyticsSvc interface {
	Metrics(ctx context.Context, caller domain.Caller) (*domain.Metrics, error)
	Revenue(ctx context.Context, caller domain.Caller, period domain.RevenuePeriod) ([]domain.RevenuePoint, error)
	ServiceDistribution(ctx context.Context, caller domain.Caller) ([]domain.ServiceShare, error)
}

type LocationRelay interface {
	Join(bookingID string, sub *relay.Subscriber)
	Leave(bookingID string, sub *relay.Subscriber)
	LeaveAll(sub *relay.Subscriber)
	PublishLocation(bookingID string, loc domain.Location) int
}

type Handler struct {
	bookingService   BookingSvc
	paymentService   PaymentSvc
	reviewService    ReviewSvc
	analyticsService AnalyticsSvc
	relay            LocationRelay
	upgrader         websocket.Upgrader
	logger           logger.Logger
}

func NewHandler(
	bookingService BookingSvc,
	paymentService PaymentSvc,
	reviewService ReviewSvc,
	analyticsService AnalyticsSvc,
	relay LocationRelay,
	logger logger.Logger,
) *Handler {
	registerJSONFieldNames()

	return &Handler{
		bookingService:   bookingService,
		paymentService:   paymentService,
		reviewService:    reviewService,
		analyticsService: analyticsService,
		relay:            relay,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// авторизации на уровне сокета нет, комнаты открыты
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

var registerOnce sync.Once

// registerJSONFieldNames заставляет валидатор называть поля по json-тегам.
func registerJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

func callerOf(c *ginext.Context) domain.Caller {
	caller, _ := middleware.CallerFrom(c)
	return caller
}

func pathID(c *ginext.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		writeError(c, http.StatusBadRequest, dto.ErrorResponse{
			Error:  "invalid " + name,
			Reason: "validation_error",
			Fields: []domain.FieldError{{Field: name, Message: "must be a valid uuid"}},
		})
		return "", false
	}
	return id, true
}

// queryInt читает необязательный целочисленный параметр, 0 если его нет.
func (h *Handler) queryInt(c *ginext.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		h.handleError(c, domain.NewValidationError(domain.FieldError{Field: name, Message: "must be an integer"}))
		return 0, false
	}
	return n, true
}

// bindError переводит ошибки биндинга в ошибку валидации с полями.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := &domain.ValidationError{}
		for _, fe := range verrs {
			out.Add(fieldPath(fe.Namespace()), fieldMessage(fe))
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return domain.NewValidationError(domain.FieldError{
			Field:   typeErr.Field,
			Message: "must be " + typeErr.Type.String(),
		})
	}

	return domain.NewValidationError(domain.FieldError{Field: "body", Message: "malformed JSON"})
}

// fieldPath отрезает имя структуры запроса: CreateBookingRequest.service_id -> service_id.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "uuid":
		return "must be a valid uuid"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func writeError(c *ginext.Context, status int, resp dto.ErrorResponse) {
	c.AbortWithStatusJSON(status, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(c, http.StatusBadRequest, dto.ErrorResponse{
			Error: verr.Error(), Reason: "validation_error", Fields: verr.Fields,
		})

	case errors.Is(err, domain.ErrValidation):
		writeError(c, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Reason: "validation_error"})

	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrReviewNotFound):
		writeError(c, http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Reason: "not_found"})

	case errors.Is(err, domain.ErrAccessDenied):
		writeError(c, http.StatusForbidden, dto.ErrorResponse{Error: err.Error(), Reason: "access_denied"})

	case errors.Is(err, domain.ErrInvalidTransition):
		writeError(c, http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Reason: "invalid_transition"})

	case errors.Is(err, domain.ErrAlreadyReviewed),
		errors.Is(err, domain.ErrAlreadyReported):
		writeError(c, http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Reason: "conflict"})

	case errors.Is(err, domain.ErrSignatureInvalid):
		writeError(c, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Reason: "signature_invalid"})

	case errors.Is(err, domain.ErrUpstream):
		writeError(c, http.StatusBadGateway, dto.ErrorResponse{Error: "payment gateway unavailable", Reason: "upstream_failure"})

	default:
		h.logger.LogAttrs(c.Request.Context(), logger.ErrorLevel, "request failed",
			logger.String("path", c.FullPath()),
			logger.String("error", err.Error()),
		)
		writeError(c, http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Reason: "internal"})
	}
}
