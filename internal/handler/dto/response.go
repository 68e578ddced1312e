package dto

import (
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
)

type AddressResponse struct {
	Line1   string `json:"address_line1"`
	Line2   string `json:"address_line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode"`
}

type LocationResponse struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	UpdatedAt string  `json:"updated_at"`
}

type BookingResponse struct {
	ID             string            `json:"id"`
	BookingNumber  string            `json:"booking_number"`
	UserID         string            `json:"user_id"`
	ServiceID      string            `json:"service_id"`
	Name           string            `json:"name"`
	Phone          string            `json:"phone"`
	ScheduledDate  string            `json:"scheduled_date"`
	Status         string            `json:"status"`
	TotalAmount    float64           `json:"total_amount"`
	WorkerID       *string           `json:"worker_id,omitempty"`
	WorkerLocation *LocationResponse `json:"worker_location,omitempty"`
	OTP            *string           `json:"otp,omitempty"`
	PaymentStatus  string            `json:"payment_status"`
	PaymentOrderID *string           `json:"payment_order_id,omitempty"`
	PaymentID      *string           `json:"payment_id,omitempty"`
	PaymentMethod  *string           `json:"payment_method,omitempty"`
	PaidAt         *string           `json:"paid_at,omitempty"`
	ServiceAddress AddressResponse   `json:"service_address"`
	Notes          string            `json:"notes,omitempty"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
}

type ReviewResponse struct {
	ID             string  `json:"id"`
	BookingID      string  `json:"booking_id"`
	UserID         string  `json:"user_id"`
	ServiceID      string  `json:"service_id"`
	Rating         int     `json:"rating"`
	Comment        string  `json:"comment"`
	Status         string  `json:"status"`
	ModerationNote *string `json:"moderation_note,omitempty"`
	ModeratedBy    *string `json:"moderated_by,omitempty"`
	ModeratedAt    *string `json:"moderated_at,omitempty"`
	AdminResponse  *string `json:"admin_response,omitempty"`
	RespondedBy    *string `json:"responded_by,omitempty"`
	RespondedAt    *string `json:"responded_at,omitempty"`
	ReportCount    int     `json:"report_count"`
	CreatedAt      string  `json:"created_at"`
}

type ErrorResponse struct {
	Error  string              `json:"error"`
	Reason string              `json:"reason"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:             b.ID,
		BookingNumber:  b.BookingNumber,
		UserID:         b.UserID,
		ServiceID:      b.ServiceID,
		Name:           b.Name,
		Phone:          b.Phone,
		ScheduledDate:  b.ScheduledDate.Format(time.RFC3339),
		Status:         string(b.Status),
		TotalAmount:    b.TotalAmount,
		WorkerID:       b.WorkerID,
		OTP:            b.OTP,
		PaymentStatus:  string(b.PaymentStatus),
		PaymentOrderID: b.PaymentOrderID,
		PaymentID:      b.PaymentID,
		PaidAt:         formatTime(b.PaidAt),
		ServiceAddress: AddressResponse(b.ServiceAddress),
		Notes:          b.Notes,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      b.UpdatedAt.Format(time.RFC3339),
	}

	if b.PaymentMethod != nil {
		m := string(*b.PaymentMethod)
		resp.PaymentMethod = &m
	}

	if b.WorkerLocation != nil {
		resp.WorkerLocation = &LocationResponse{
			Lat:       b.WorkerLocation.Lat,
			Lng:       b.WorkerLocation.Lng,
			UpdatedAt: b.WorkerLocation.UpdatedAt.Format(time.RFC3339),
		}
	}

	return resp
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:             r.ID,
		BookingID:      r.BookingID,
		UserID:         r.UserID,
		ServiceID:      r.ServiceID,
		Rating:         r.Rating,
		Comment:        r.Comment,
		Status:         string(r.Status),
		ModerationNote: r.ModerationNote,
		ModeratedBy:    r.ModeratedBy,
		ModeratedAt:    formatTime(r.ModeratedAt),
		AdminResponse:  r.AdminResponse,
		RespondedBy:    r.RespondedBy,
		RespondedAt:    formatTime(r.RespondedAt),
		ReportCount:    r.ReportCount,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}

func ToReviewResponses(reviews []*domain.Review) []ReviewResponse {
	resp := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, ToReviewResponse(r))
	}
	return resp
}
