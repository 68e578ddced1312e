package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type stubUsers struct {
	user *domain.User
	err  error
}

func (s stubUsers) GetByID(_ context.Context, _ string) (*domain.User, error) {
	return s.user, s.err
}

type recordingSink struct {
	name string
	err  error

	mu   sync.Mutex
	msgs []Message
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Send(_ context.Context, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
	return s.err
}

func (s *recordingSink) received() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.msgs...)
}

func stop(t *testing.T, d *Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))
}

func TestDispatcher_DeliversToAllSinks(t *testing.T) {
	chatID := int64(42)
	user := &domain.User{ID: "u1", Name: "Asha", TelegramChatID: &chatID}
	first := &recordingSink{name: "first"}
	second := &recordingSink{name: "second"}

	d := NewDispatcher(stubUsers{user: user}, 2, 8, newTestLogger(t), first, second)
	d.Start()

	d.Notify(context.Background(), domain.NotifyPaymentSuccess, &domain.Booking{ID: "b1", UserID: "u1"})
	stop(t, d)

	for _, sink := range []*recordingSink{first, second} {
		msgs := sink.received()
		require.Len(t, msgs, 1, sink.name)
		assert.Equal(t, domain.NotifyPaymentSuccess, msgs[0].Kind)
		assert.Equal(t, "b1", msgs[0].Booking.ID)
		assert.Equal(t, user, msgs[0].User)
	}
}

func TestDispatcher_UnknownUserStillDelivers(t *testing.T) {
	sink := &recordingSink{name: "amqp"}

	d := NewDispatcher(stubUsers{err: domain.ErrUserNotFound}, 1, 4, newTestLogger(t), sink)
	d.Start()

	d.Notify(context.Background(), domain.NotifyStatusUpdate, &domain.Booking{ID: "b1", UserID: "ghost"})
	stop(t, d)

	msgs := sink.received()
	require.Len(t, msgs, 1)
	assert.Nil(t, msgs[0].User)
}

func TestDispatcher_SinkErrorDoesNotBlockOthers(t *testing.T) {
	broken := &recordingSink{name: "broken", err: errors.New("boom")}
	healthy := &recordingSink{name: "healthy"}

	d := NewDispatcher(stubUsers{}, 1, 4, newTestLogger(t), broken, healthy)
	d.Start()

	d.Notify(context.Background(), domain.NotifyBookingConfirmation, &domain.Booking{ID: "b1"})
	d.Notify(context.Background(), domain.NotifyBookingConfirmation, &domain.Booking{ID: "b2"})
	stop(t, d)

	assert.Len(t, broken.received(), 2)
	assert.Len(t, healthy.received(), 2)
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	sink := &recordingSink{name: "sink"}

	// воркеры не запущены, очередь на одно сообщение
	d := NewDispatcher(stubUsers{}, 1, 1, newTestLogger(t), sink)

	d.Notify(context.Background(), domain.NotifyStatusUpdate, &domain.Booking{ID: "b1"})
	d.Notify(context.Background(), domain.NotifyStatusUpdate, &domain.Booking{ID: "b2"})

	d.Start()
	stop(t, d)

	msgs := sink.received()
	require.Len(t, msgs, 1)
	assert.Equal(t, "b1", msgs[0].Booking.ID)
}

func TestDispatcher_SnapshotIsolatedFromCaller(t *testing.T) {
	sink := &recordingSink{name: "sink"}
	d := NewDispatcher(stubUsers{}, 1, 2, newTestLogger(t), sink)

	b := &domain.Booking{ID: "b1", Status: domain.BookingStatusPending}
	d.Notify(context.Background(), domain.NotifyStatusUpdate, b)
	b.Status = domain.BookingStatusCancelled

	d.Start()
	stop(t, d)

	msgs := sink.received()
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.BookingStatusPending, msgs[0].Booking.Status)
}

func TestDispatcher_NotifyAfterStop(t *testing.T) {
	sink := &recordingSink{name: "sink"}
	d := NewDispatcher(stubUsers{}, 1, 2, newTestLogger(t), sink)
	d.Start()
	stop(t, d)

	assert.NotPanics(t, func() {
		d.Notify(context.Background(), domain.NotifyStatusUpdate, &domain.Booking{ID: "late"})
		d.Notify(context.Background(), domain.NotifyStatusUpdate, nil)
	})
	assert.Empty(t, sink.received())
	assert.NoError(t, d.Stop(context.Background()))
}
