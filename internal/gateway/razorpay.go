package gateway

import (
	"context"
	"fmt"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	razorpay "github.com/razorpay/razorpay-go"
)

type orderAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
	Payments(orderID string, queryParams map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type paymentAPI interface {
	Fetch(paymentID string, queryParams map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
	Refund(paymentID string, amount int, data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// Razorpay адаптирует SDK шлюза. SDK не принимает context, поэтому отмена
// проверяется только перед запросом.
type Razorpay struct {
	orders   orderAPI
	payments paymentAPI
}

func NewRazorpay(keyID, keySecret string) *Razorpay {
	client := razorpay.NewClient(keyID, keySecret)
	return &Razorpay{orders: client.Order, payments: client.Payment}
}

func (r *Razorpay) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.GatewayOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	notes := make(map[string]interface{}, len(req.Notes))
	for k, v := range req.Notes {
		notes[k] = v
	}

	body, err := r.orders.Create(map[string]interface{}{
		"amount":   req.Amount,
		"currency": req.Currency,
		"receipt":  req.Receipt,
		"notes":    notes,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}

	order := &domain.GatewayOrder{
		ID:       str(body, "id"),
		Amount:   num(body, "amount"),
		Currency: str(body, "currency"),
		Receipt:  str(body, "receipt"),
		Status:   str(body, "status"),
	}
	if order.ID == "" {
		return nil, fmt.Errorf("razorpay create order: response without id")
	}

	return order, nil
}

func (r *Razorpay) FetchPayment(ctx context.Context, paymentID string) (*domain.GatewayPayment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := r.payments.Fetch(paymentID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay fetch payment %s: %w", paymentID, err)
	}

	p := toPayment(body)
	return &p, nil
}

func (r *Razorpay) OrderPayments(ctx context.Context, orderID string) ([]domain.GatewayPayment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := r.orders.Payments(orderID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order payments %s: %w", orderID, err)
	}

	items, _ := body["items"].([]interface{})
	res := make([]domain.GatewayPayment, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			res = append(res, toPayment(m))
		}
	}

	return res, nil
}

func (r *Razorpay) Refund(ctx context.Context, paymentID string, amount int64) (*domain.Refund, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := r.payments.Refund(paymentID, int(amount), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay refund %s: %w", paymentID, err)
	}

	return &domain.Refund{
		ID:        str(body, "id"),
		PaymentID: str(body, "payment_id"),
		Amount:    num(body, "amount"),
		Status:    str(body, "status"),
	}, nil
}

func toPayment(m map[string]interface{}) domain.GatewayPayment {
	notes := map[string]string{}
	// пустые notes приходят массивом
	if raw, ok := m["notes"].(map[string]interface{}); ok {
		for k, v := range raw {
			if s, ok := v.(string); ok {
				notes[k] = s
			}
		}
	}

	return domain.GatewayPayment{
		ID:       str(m, "id"),
		OrderID:  str(m, "order_id"),
		Amount:   num(m, "amount"),
		Currency: str(m, "currency"),
		Status:   str(m, "status"),
		Method:   str(m, "method"),
		Notes:    notes,
		Raw:      m,
	}
}

func str(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func num(m map[string]interface{}, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}
