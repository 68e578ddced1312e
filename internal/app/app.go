package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/config"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/gateway"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/handler"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/idempotency"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/middleware"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/notification"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/relay"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/repository"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/router"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/scheduler"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/service"
	"github.com/adarshtiwari-ai/dailydot-backend/internal/service/ports"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	amqp       *notification.AMQPPublisher
	dispatcher *notification.Dispatcher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"DailyDot",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	app.initRedis()

	if err = app.initServices(); err != nil {
		app.closeResources()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initRedis не валит старт: без Redis вебхуки защищены только состоянием брони.
func (a *App) initRedis() {
	if a.cfg.Redis.Addr == "" {
		a.log.Warn("redis address is empty, webhook de-duplication disabled")
		return
	}

	a.redis = redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	if err := a.redis.Ping(context.Background()).Err(); err != nil {
		a.log.Warn("redis is unreachable, de-duplication will degrade until it recovers",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.String("error", err.Error()),
		)
		return
	}

	a.log.Info("redis connected", logger.String("addr", a.cfg.Redis.Addr))
}

func (a *App) initNotifier(users *repository.UserRepository) error {
	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init telegram notifier: %w", err)
	}
	sinks := []notification.Sink{tg}

	if a.cfg.AMQP.URL != "" {
		a.amqp, err = notification.NewAMQPPublisher(a.cfg.AMQP.URL, a.cfg.AMQP.Exchange)
		if err != nil {
			return fmt.Errorf("init amqp publisher: %w", err)
		}
		sinks = append(sinks, a.amqp)
		a.log.Info("amqp publisher ready", logger.String("exchange", a.cfg.AMQP.Exchange))
	} else {
		a.log.Warn("amqp url is empty, broker notifications disabled")
	}

	a.dispatcher = notification.NewDispatcher(
		users,
		a.cfg.Notifier.Workers,
		a.cfg.Notifier.QueueSize,
		a.log,
		sinks...,
	)

	return nil
}

func (a *App) initServices() error {
	bookingRepo := repository.NewBookingRepo(a.db)
	catalogRepo := repository.NewCatalogRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	reviewRepo := repository.NewReviewRepo(a.db)

	if err := a.initNotifier(userRepo); err != nil {
		return err
	}

	hub := relay.NewHub(a.log)

	if !a.cfg.Razorpay.Enabled() {
		a.log.Warn("razorpay keys are empty, online payments will fail")
	}
	razorpay := gateway.NewRazorpay(a.cfg.Razorpay.KeyID, a.cfg.Razorpay.KeySecret)

	var dedup ports.WebhookDeduplicator
	if a.redis != nil {
		dedup = idempotency.NewRedisStore(a.redis)
	}

	bookingService := service.NewBookingService(bookingRepo, catalogRepo, userRepo, a.dispatcher, hub, a.log)
	paymentService := service.NewPaymentService(bookingService, razorpay, dedup, service.PaymentConfig{
		KeyID:          a.cfg.Razorpay.KeyID,
		KeySecret:      a.cfg.Razorpay.KeySecret,
		WebhookSecret:  a.cfg.Razorpay.WebhookSecret,
		Currency:       a.cfg.Razorpay.Currency,
		DedupTTL:       a.cfg.Redis.DedupTTL,
		ReconcileGrace: a.cfg.Reconcile.Grace,
		ReconcileBatch: a.cfg.Reconcile.Batch,
	}, a.log)
	reviewService := service.NewReviewService(reviewRepo, bookingRepo, a.log)
	analyticsService := service.NewAnalyticsService(bookingRepo)

	a.scheduler = scheduler.New(
		paymentService,
		a.cfg.Reconcile.Interval,
		a.log,
	)

	h := handler.NewHandler(bookingService, paymentService, reviewService, analyticsService, hub, a.log)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(middleware.NewTokenVerifier(a.cfg.Auth.JWTSecret), a.log),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.dispatcher.Start()
	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		stop()
		_ = a.shutdown()
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	var errs []error
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
	} else {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")
	}

	// очередь разбирается после остановки HTTP, новых уведомлений уже не будет
	if err := a.dispatcher.Stop(shutdownCtx); err != nil {
		a.log.Warn("notification queue not drained", logger.String("error", err.Error()))
	}

	if err := a.closeResources(); err != nil {
		errs = append(errs, err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return errors.Join(errs...)
}

func (a *App) closeResources() error {
	var errs []error

	if a.amqp != nil {
		if err := a.amqp.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close amqp: %w", err))
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		} else {
			a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
		}
	}

	return errors.Join(errs...)
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
