package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		b.sent = append(b.sent, msg)
	}
	return tgbotapi.Message{}, b.err
}

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.exchange, c.key, c.msg = exchange, key, msg
	return c.err
}

func (c *fakeChannel) Close() error { return nil }

func testBooking() domain.Booking {
	otp := "4821"
	return domain.Booking{
		ID:            "b1",
		UserID:        "u1",
		ServiceID:     "s1",
		BookingNumber: "BK261019ABC123",
		ScheduledDate: time.Date(2026, 10, 20, 9, 30, 0, 0, time.UTC),
		Status:        domain.BookingStatusAssigned,
		PaymentStatus: domain.PaymentStatusPaid,
		TotalAmount:   499,
		OTP:           &otp,
	}
}

func TestTelegramNotifier_SendsWithChatID(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}
	chatID := int64(7)

	err := n.Send(context.Background(), Message{
		Kind:    domain.NotifyWorkerAssigned,
		Booking: testBooking(),
		User:    &domain.User{ID: "u1", TelegramChatID: &chatID},
	})

	require.NoError(t, err)
	require.Len(t, bot.sent, 1)
	assert.Equal(t, chatID, bot.sent[0].ChatID)
	assert.Equal(t, "Markdown", bot.sent[0].ParseMode)
	assert.Contains(t, bot.sent[0].Text, "4821")
	assert.Contains(t, bot.sent[0].Text, "BK261019ABC123")
}

func TestTelegramNotifier_SkipsWithoutChatID(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	require.NoError(t, n.Send(context.Background(), Message{Kind: domain.NotifyStatusUpdate, Booking: testBooking()}))
	require.NoError(t, n.Send(context.Background(), Message{
		Kind: domain.NotifyStatusUpdate, Booking: testBooking(), User: &domain.User{ID: "u1"},
	}))
	assert.Empty(t, bot.sent)
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	chatID := int64(7)
	assert.NoError(t, n.Send(context.Background(), Message{
		Kind: domain.NotifyPaymentSuccess, Booking: testBooking(), User: &domain.User{TelegramChatID: &chatID},
	}))
}

func TestTelegramNotifier_PropagatesSendError(t *testing.T) {
	bot := &fakeBot{err: errors.New("forbidden")}
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}
	chatID := int64(7)

	err := n.Send(context.Background(), Message{
		Kind: domain.NotifyPaymentSuccess, Booking: testBooking(), User: &domain.User{TelegramChatID: &chatID},
	})
	assert.Error(t, err)
}

func TestAMQPPublisher_Send(t *testing.T) {
	ch := &fakeChannel{}
	p := &AMQPPublisher{ch: ch, exchange: "notifications"}
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	err := p.Send(context.Background(), Message{Kind: domain.NotifyPaymentSuccess, Booking: testBooking(), At: at})
	require.NoError(t, err)

	assert.Equal(t, "notifications", ch.exchange)
	assert.Equal(t, "booking.payment_success", ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.NotEmpty(t, ch.msg.MessageId)

	var evt BookingEvent
	require.NoError(t, json.Unmarshal(ch.msg.Body, &evt))
	assert.Equal(t, "b1", evt.BookingID)
	assert.Equal(t, domain.PaymentStatusPaid, evt.PaymentStatus)
	assert.Equal(t, 499.0, evt.TotalAmount)
	assert.True(t, at.Equal(evt.OccurredAt))
}

func TestAMQPPublisher_SendError(t *testing.T) {
	p := &AMQPPublisher{ch: &fakeChannel{err: amqp.ErrClosed}, exchange: "notifications"}

	err := p.Send(context.Background(), Message{Kind: domain.NotifyStatusUpdate, Booking: testBooking()})
	assert.ErrorIs(t, err, amqp.ErrClosed)
}
