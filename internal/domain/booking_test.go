package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatus_Cancellable(t *testing.T) {
	cancellable := map[BookingStatus]bool{
		BookingStatusPending:    true,
		BookingStatusConfirmed:  true,
		BookingStatusAssigned:   false,
		BookingStatusOnTheWay:   false,
		BookingStatusInProgress: false,
		BookingStatusCompleted:  false,
		BookingStatusCancelled:  false,
	}

	for status, want := range cancellable {
		assert.Equal(t, want, status.Cancellable(), status)
		assert.True(t, status.Valid(), status)
	}
	assert.False(t, BookingStatus("archived").Valid())
}

func TestBooking_MarkPaid(t *testing.T) {
	b := &Booking{Status: BookingStatusPending, PaymentStatus: PaymentStatusPending}
	at := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	upi := PaymentMethodUPI

	require.True(t, b.MarkPaid("pay_1", &upi, at))
	assert.Equal(t, PaymentStatusPaid, b.PaymentStatus)
	assert.Equal(t, BookingStatusConfirmed, b.Status)
	require.NotNil(t, b.PaymentID)
	require.NotNil(t, b.PaidAt)
	assert.Equal(t, at, *b.PaidAt)

	// тот же платеж повторно ничего не меняет
	assert.False(t, b.MarkPaid("pay_1", nil, at.Add(time.Hour)))
	assert.Equal(t, at, *b.PaidAt)
	assert.Equal(t, PaymentMethodUPI, *b.PaymentMethod)
}

func TestBooking_MarkPaid_KeepsProgress(t *testing.T) {
	at := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		status BookingStatus
		want   BookingStatus
	}{
		{name: "confirmed by cod", status: BookingStatusConfirmed, want: BookingStatusConfirmed},
		{name: "assigned", status: BookingStatusAssigned, want: BookingStatusAssigned},
		{name: "in progress", status: BookingStatusInProgress, want: BookingStatusInProgress},
		{name: "completed", status: BookingStatusCompleted, want: BookingStatusCompleted},
		{name: "cancelled", status: BookingStatusCancelled, want: BookingStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.status, PaymentStatus: PaymentStatusPending}

			require.True(t, b.MarkPaid("pay_late", nil, at))
			assert.Equal(t, tt.want, b.Status)
			assert.Equal(t, PaymentStatusPaid, b.PaymentStatus)
			require.NotNil(t, b.PaymentID)
			assert.Equal(t, "pay_late", *b.PaymentID)
			require.NotNil(t, b.PaidAt)
			assert.Equal(t, at, *b.PaidAt)
		})
	}
}

func TestBooking_MarkPaid_SecondPaymentIgnored(t *testing.T) {
	at := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	b := &Booking{Status: BookingStatusPending, PaymentStatus: PaymentStatusPending}

	require.True(t, b.MarkPaid("pay_1", nil, at))
	assert.False(t, b.MarkPaid("pay_2", nil, at.Add(time.Minute)))

	assert.Equal(t, "pay_1", *b.PaymentID)
	assert.Equal(t, at, *b.PaidAt)
}

func TestValidationError_Is(t *testing.T) {
	verr := NewValidationError(FieldError{Field: "lat", Message: "out of range"})
	wrapped := fmt.Errorf("update: %w", verr)

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, verr.Error(), "lat: out of range")

	empty := &ValidationError{}
	assert.NoError(t, empty.OrNil())
}
