package notification

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const sendTimeout = 10 * time.Second

// Message уходит в каналы доставки. Booking копируется на момент события.
type Message struct {
	Kind    domain.NotificationKind
	Booking domain.Booking
	User    *domain.User
	At      time.Time
}

type Sink interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

type userLookup interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Dispatcher принимает уведомления без блокировки вызывающего и раздает их
// пулу воркеров. При переполненной очереди уведомление теряется с предупреждением.
type Dispatcher struct {
	users   userLookup
	sinks   []Sink
	workers int
	logger  logger.Logger
	now     func() time.Time

	queue  chan Message
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(users userLookup, workers, queueSize int, logger logger.Logger, sinks ...Sink) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	return &Dispatcher{
		users:   users,
		sinks:   sinks,
		workers: workers,
		logger:  logger,
		now:     time.Now,
		queue:   make(chan Message, queueSize),
	}
}

func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work()
	}

	d.logger.Info("notification dispatcher started",
		logger.Int("workers", d.workers),
		logger.Int("sinks", len(d.sinks)),
	)
}

func (d *Dispatcher) Notify(ctx context.Context, kind domain.NotificationKind, booking *domain.Booking) {
	if booking == nil {
		return
	}

	msg := Message{Kind: kind, Booking: *booking, At: d.now()}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.LogAttrs(ctx, logger.WarnLevel, "notification dropped (dispatcher stopped)",
			logger.String("kind", string(kind)),
			logger.String("booking_id", booking.ID),
		)
		return
	}

	select {
	case d.queue <- msg:
	default:
		d.logger.LogAttrs(ctx, logger.WarnLevel, "notification dropped (queue full)",
			logger.String("kind", string(kind)),
			logger.String("booking_id", booking.ID),
		)
	}
}

// Stop перестает принимать уведомления и ждет, пока воркеры разберут очередь.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("notification dispatcher stopped")
		return nil
	case <-ctx.Done():
		return errors.Join(errors.New("notification queue not drained"), ctx.Err())
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()

	for msg := range d.queue {
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg Message) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	user, err := d.users.GetByID(ctx, msg.Booking.UserID)
	if err != nil {
		// без профиля уходим только в каналы, которым он не нужен
		d.logger.Debug("notification user not resolved",
			logger.String("user_id", msg.Booking.UserID),
			logger.String("error", err.Error()),
		)
	} else {
		msg.User = user
	}

	for _, sink := range d.sinks {
		if err := sink.Send(ctx, msg); err != nil {
			d.logger.Error("failed to deliver notification",
				logger.String("sink", sink.Name()),
				logger.String("kind", string(msg.Kind)),
				logger.String("booking_id", msg.Booking.ID),
				logger.String("error", err.Error()),
			)
		}
	}
}
