package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrders struct {
	created  map[string]interface{}
	create   map[string]interface{}
	payments map[string]interface{}
	err      error
}

func (f *fakeOrders) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.created = data
	return f.create, f.err
}

func (f *fakeOrders) Payments(_ string, _ map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	return f.payments, f.err
}

type fakePayments struct {
	fetch         map[string]interface{}
	refund        map[string]interface{}
	refundedID    string
	refundedMinor int
	err           error
}

func (f *fakePayments) Fetch(_ string, _ map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	return f.fetch, f.err
}

func (f *fakePayments) Refund(paymentID string, amount int, _ map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.refundedID, f.refundedMinor = paymentID, amount
	return f.refund, f.err
}

func TestRazorpay_CreateOrder(t *testing.T) {
	orders := &fakeOrders{create: map[string]interface{}{
		"id": "order_1", "amount": float64(299900), "currency": "INR", "receipt": "BK261019AAAAAA", "status": "created",
	}}
	rp := &Razorpay{orders: orders, payments: &fakePayments{}}

	order, err := rp.CreateOrder(context.Background(), domain.OrderRequest{
		Amount: 299900, Currency: "INR", Receipt: "BK261019AAAAAA",
		Notes: map[string]string{"bookingId": "b1", "userId": "u1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "order_1", order.ID)
	assert.Equal(t, int64(299900), order.Amount)
	assert.Equal(t, int64(299900), orders.created["amount"])
	assert.Equal(t, map[string]interface{}{"bookingId": "b1", "userId": "u1"}, orders.created["notes"])
}

func TestRazorpay_CreateOrder_Errors(t *testing.T) {
	rp := &Razorpay{orders: &fakeOrders{err: errors.New("BAD_REQUEST_ERROR")}, payments: &fakePayments{}}
	_, err := rp.CreateOrder(context.Background(), domain.OrderRequest{Amount: 100, Currency: "INR"})
	assert.Error(t, err)

	rp = &Razorpay{orders: &fakeOrders{create: map[string]interface{}{}}, payments: &fakePayments{}}
	_, err = rp.CreateOrder(context.Background(), domain.OrderRequest{Amount: 100, Currency: "INR"})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	orders := &fakeOrders{}
	rp = &Razorpay{orders: orders, payments: &fakePayments{}}
	_, err = rp.CreateOrder(ctx, domain.OrderRequest{Amount: 100})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, orders.created)
}

func TestRazorpay_OrderPayments(t *testing.T) {
	orders := &fakeOrders{payments: map[string]interface{}{
		"entity": "collection",
		"count":  float64(2),
		"items": []interface{}{
			map[string]interface{}{
				"id": "pay_1", "order_id": "order_1", "amount": float64(299900), "status": "failed",
				"method": "card", "notes": []interface{}{},
			},
			map[string]interface{}{
				"id": "pay_2", "order_id": "order_1", "amount": float64(299900), "status": "captured",
				"method": "upi", "notes": map[string]interface{}{"bookingId": "b1"},
			},
		},
	}}
	rp := &Razorpay{orders: orders, payments: &fakePayments{}}

	payments, err := rp.OrderPayments(context.Background(), "order_1")

	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, domain.GatewayPaymentFailed, payments[0].Status)
	assert.Empty(t, payments[0].Notes)
	assert.Equal(t, domain.GatewayPaymentCaptured, payments[1].Status)
	assert.Equal(t, "upi", payments[1].Method)
	assert.Equal(t, "b1", payments[1].Notes["bookingId"])
}

func TestRazorpay_FetchAndRefund(t *testing.T) {
	payments := &fakePayments{
		fetch:  map[string]interface{}{"id": "pay_1", "amount": float64(50000), "status": "captured"},
		refund: map[string]interface{}{"id": "rfnd_1", "payment_id": "pay_1", "amount": float64(25000), "status": "processed"},
	}
	rp := &Razorpay{orders: &fakeOrders{}, payments: payments}

	p, err := rp.FetchPayment(context.Background(), "pay_1")
	require.NoError(t, err)
	assert.Equal(t, int64(50000), p.Amount)
	assert.Equal(t, "pay_1", p.Raw["id"])

	refund, err := rp.Refund(context.Background(), "pay_1", 25000)
	require.NoError(t, err)
	assert.Equal(t, "rfnd_1", refund.ID)
	assert.Equal(t, int64(25000), refund.Amount)
	assert.Equal(t, "pay_1", payments.refundedID)
	assert.Equal(t, 25000, payments.refundedMinor)
}
