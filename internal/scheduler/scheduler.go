package scheduler

import (
	"context"
	"time"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type paymentReconciler interface {
	ReconcilePending(ctx context.Context) (*domain.ReconcileResult, error)
}

// Scheduler периодически сверяет неоплаченные заказы со шлюзом,
// подбирая платежи, вебхук по которым не дошел.
type Scheduler struct {
	reconciler paymentReconciler
	interval   time.Duration
	logger     logger.Logger
}

func New(
	reconciler paymentReconciler,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reconciler: reconciler,
		interval:   interval,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("reconciler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reconciler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	res, err := s.reconciler.ReconcilePending(ctx)
	if err != nil {
		s.logger.Error("failed to reconcile pending payments",
			logger.String("error", err.Error()),
		)
		return
	}

	if res == nil || res.Checked == 0 {
		return
	}

	s.logger.Info("pending payments reconciled",
		logger.Int("checked", res.Checked),
		logger.Int("settled", res.Settled),
		logger.Int("failed", res.Failed),
	)
}
