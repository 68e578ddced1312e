package domain

type NotificationKind string

const (
	NotifyBookingConfirmation NotificationKind = "booking_confirmation"
	NotifyPaymentSuccess      NotificationKind = "payment_success"
	NotifyWorkerAssigned      NotificationKind = "worker_assigned"
	NotifyStatusUpdate        NotificationKind = "status_update"
)
