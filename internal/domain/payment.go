package domain

import "time"

type OrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]string
}

type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CheckoutOrder отдается клиенту для открытия платежной формы.
type CheckoutOrder struct {
	OrderID   string `json:"order_id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	KeyID     string `json:"key_id"`
	BookingID string `json:"booking_id"`
}

type GatewayPayment struct {
	ID       string            `json:"id"`
	OrderID  string            `json:"order_id"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Status   string            `json:"status"`
	Method   string            `json:"method"`
	Notes    map[string]string `json:"notes"`
	Raw      map[string]any    `json:"raw,omitempty"`
}

const (
	GatewayPaymentCaptured = "captured"
	GatewayPaymentFailed   = "failed"
)

type Refund struct {
	ID        string `json:"id"`
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
}

type VerifyPaymentInput struct {
	BookingID string
	OrderID   string
	PaymentID string
	Signature string
	Method    string
}

type WebhookEvent struct {
	ID        string
	Event     string
	Payment   GatewayPayment
	Signature string
	Body      []byte
}

const (
	WebhookPaymentCaptured = "payment.captured"
	WebhookPaymentFailed   = "payment.failed"
)

type WebhookResult struct {
	Event     string `json:"event"`
	BookingID string `json:"booking_id,omitempty"`
	Applied   bool   `json:"applied"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

type ReconcileResult struct {
	Checked int
	Settled int
	Failed  int
	At      time.Time
}
