package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusAssigned   BookingStatus = "assigned"
	BookingStatusOnTheWay   BookingStatus = "on_the_way"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusAssigned,
	BookingStatusOnTheWay,
	BookingStatusInProgress,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

func (s BookingStatus) Valid() bool {
	for _, st := range BookingStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Cancellable сообщает, можно ли клиенту отменить бронь в этом статусе.
func (s BookingStatus) Cancellable() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetbanking PaymentMethod = "netbanking"
	PaymentMethodWallet     PaymentMethod = "wallet"
	PaymentMethodCOD        PaymentMethod = "cod"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodUPI, PaymentMethodNetbanking,
		PaymentMethodWallet, PaymentMethodCOD:
		return true
	}
	return false
}

type Address struct {
	Line1   string `json:"address_line1"`
	Line2   string `json:"address_line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type WorkerLocation struct {
	Location
	UpdatedAt time.Time `json:"updated_at"`
}

type Booking struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	ServiceID      string          `json:"service_id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	BookingNumber  string          `json:"booking_number"`
	ScheduledDate  time.Time       `json:"scheduled_date"`
	Status         BookingStatus   `json:"status"`
	TotalAmount    float64         `json:"total_amount"`
	WorkerID       *string         `json:"worker_id"`
	WorkerLocation *WorkerLocation `json:"worker_location"`
	OTP            *string         `json:"otp"`
	PaymentStatus  PaymentStatus   `json:"payment_status"`
	PaymentOrderID *string         `json:"payment_order_id"`
	PaymentID      *string         `json:"payment_id"`
	PaymentMethod  *PaymentMethod  `json:"payment_method"`
	PaidAt         *time.Time      `json:"paid_at"`
	ServiceAddress Address         `json:"service_address"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (b *Booking) OwnedBy(userID string) bool {
	return b.UserID == userID
}

// MarkPaid фиксирует оплату. Возвращает false, если бронь уже оплачена:
// второй платеж не перезаписывает первый. Статус двигается только из pending,
// поздняя оплата не откатывает исполнение и не возвращает отмененную бронь.
func (b *Booking) MarkPaid(paymentID string, method *PaymentMethod, at time.Time) bool {
	if b.PaymentStatus == PaymentStatusPaid {
		return false
	}

	b.PaymentStatus = PaymentStatusPaid
	b.PaymentID = &paymentID
	b.PaidAt = &at
	if method != nil {
		b.PaymentMethod = method
	}
	if b.Status == BookingStatusPending {
		b.Status = BookingStatusConfirmed
	}
	b.UpdatedAt = at
	return true
}

type CreateBookingInput struct {
	ServiceID     string
	ScheduledDate string
	Address       Address
	Name          string
	Phone         string
	Notes         string
}

type BookingFilter struct {
	UserID string
	Limit  int
}
