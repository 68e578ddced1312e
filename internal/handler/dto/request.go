package dto

type AddressRequest struct {
	Line1   string `json:"address_line1"`
	Line2   string `json:"address_line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type CreateBookingRequest struct {
	ServiceID      string         `json:"service_id" binding:"required"`
	ScheduledDate  string         `json:"scheduled_date" binding:"required"`
	ServiceAddress AddressRequest `json:"service_address"`
	Name           string         `json:"name" binding:"max=120"`
	Phone          string         `json:"phone" binding:"max=20"`
	Notes          string         `json:"notes" binding:"max=1000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignWorkerRequest struct {
	WorkerID string `json:"worker_id"`
}

type UpdateLocationRequest struct {
	Lat *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" binding:"required,gte=-180,lte=180"`
}

type CreateOrderRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
}

type VerifyPaymentRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
	Method    string `json:"method"`
}

type RefundRequest struct {
	PaymentID string   `json:"payment_id" binding:"required"`
	Amount    *float64 `json:"amount" binding:"omitempty,gt=0"`
}

type CreateReviewRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"required"`
}

type ModerateReviewRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected flagged"`
	Note   string `json:"note" binding:"max=500"`
}

type ReportReviewRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type RespondReviewRequest struct {
	Message string `json:"message" binding:"required"`
}
