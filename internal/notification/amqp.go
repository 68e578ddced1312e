package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// BookingEvent публикуется в обменник, ключ маршрутизации booking.<kind>.
type BookingEvent struct {
	Kind          domain.NotificationKind `json:"kind"`
	BookingID     string                  `json:"booking_id"`
	BookingNumber string                  `json:"booking_number"`
	UserID        string                  `json:"user_id"`
	ServiceID     string                  `json:"service_id"`
	Status        domain.BookingStatus    `json:"status"`
	PaymentStatus domain.PaymentStatus    `json:"payment_status"`
	TotalAmount   float64                 `json:"total_amount"`
	WorkerID      *string                 `json:"worker_id,omitempty"`
	OccurredAt    time.Time               `json:"occurred_at"`
}

type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       amqpChannel
	exchange string
	mu       sync.Mutex
}

func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &AMQPPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *AMQPPublisher) Name() string { return "amqp" }

func (p *AMQPPublisher) Send(ctx context.Context, msg Message) error {
	b := msg.Booking
	body, err := json.Marshal(BookingEvent{
		Kind:          msg.Kind,
		BookingID:     b.ID,
		BookingNumber: b.BookingNumber,
		UserID:        b.UserID,
		ServiceID:     b.ServiceID,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		TotalAmount:   b.TotalAmount,
		WorkerID:      b.WorkerID,
		OccurredAt:    msg.At,
	})
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey(msg.Kind), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    msg.At,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish booking event: %w", err)
	}

	return nil
}

func routingKey(kind domain.NotificationKind) string {
	return "booking." + string(kind)
}

func (p *AMQPPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
