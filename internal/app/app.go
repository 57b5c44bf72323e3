package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/katsuchip/functions/internal/config"
	"github.com/katsuchip/functions/internal/model"
	"github.com/katsuchip/functions/internal/repository/events"
	"github.com/katsuchip/functions/internal/repository/mailer"
	"github.com/katsuchip/functions/internal/repository/mongodb"
	"github.com/katsuchip/functions/internal/repository/pg"
	"github.com/katsuchip/functions/internal/scheduler"
	"github.com/katsuchip/functions/internal/service"
	"github.com/katsuchip/functions/pgk/auth"
	"github.com/katsuchip/functions/pgk/logger"

	httpController "github.com/katsuchip/functions/internal/controller/http"
)

const shutdownTimeout = 5 * time.Second

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	for _, warning := range cfg.Warnings() {
		lg.Warn(warning)
	}

	storage, err := mongodb.New(cfg.MongoURI, cfg.MongoDatabase, cfg.LegacyOrderLookup, lg)
	if err != nil {
		return err
	}

	ledger, closeLedger := initLedger(cfg, lg)
	defer closeLedger()

	publisher, closePublisher := initPublisher(cfg, lg)
	defer closePublisher()

	mail, err := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		FromName: cfg.MailFromName,
	}, lg)
	if err != nil {
		return err
	}

	s := service.New(storage, mail, ledger, publisher, service.Options{
		InvitationBaseURL: cfg.InvitationBaseURL,
		ServerKey:         cfg.MidtransServerKey,
		StrictSignature:   cfg.SignatureMode == config.SignatureModeStrict,
		CleanupDays:       cfg.CleanupDays,
	}, lg)

	cleanup, err := scheduler.New(s, cfg.CleanupSchedule, cfg.CleanupTimezone, cfg.RequestTimeout, lg)
	if err != nil {
		return err
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(cfg.RequestTimeout))

	handlers := httpController.New(s, lg)
	router = httpController.InitRoutes(router, handlers, auth.BearerMiddlewareInit[model.TokenInfo](cfg.SecretKey))

	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cleanup.Start()

	lg.Infof("starting server on %s", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	if err := cleanup.Stop(ctx); err != nil {
		lg.Warnf("cleanup scheduler stopped before running job finished: %v", err)
	}

	if err := storage.Shutdown(); err != nil {
		return fmt.Errorf("shutdown (repo) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}

// initLedger подключает журнал уведомлений. Без DATABASE_URI идемпотентность
// держится только на уведомлении, сохранённом в заказе.
func initLedger(cfg config.Config, lg *zap.SugaredLogger) (service.LedgerRepo, func()) {
	if cfg.DatabaseURI == "" {
		lg.Info("DATABASE_URI not set, notification ledger disabled")
		return noopLedger{}, func() {}
	}

	ledger, err := pg.New(cfg.DatabaseURI, lg)
	if err != nil {
		lg.Warnf("failed to open notification ledger, continuing without it: %v", err)
		return noopLedger{}, func() {}
	}

	return ledger, func() {
		if err := ledger.Shutdown(); err != nil {
			lg.Errorf("shutdown (ledger) error: %v", err)
		}
	}
}

func initPublisher(cfg config.Config, lg *zap.SugaredLogger) (service.EventsRepo, func()) {
	if cfg.NatsURL == "" {
		lg.Info("NATS_URL not set, event publishing disabled")
		return noopPublisher{}, func() {}
	}

	publisher, err := events.NewNatsPublisher(cfg.NatsURL, lg)
	if err != nil {
		lg.Warnf("failed to connect to NATS, continuing without event publishing: %v", err)
		return noopPublisher{}, func() {}
	}

	return publisher, publisher.Close
}

type noopLedger struct{}

func (noopLedger) IsNotificationProcessed(context.Context, string, string) (bool, error) {
	return false, nil
}

func (noopLedger) RecordNotification(context.Context, model.PaymentNotification) error {
	return nil
}

type noopPublisher struct{}

func (noopPublisher) PublishPaymentUpdated(context.Context, model.PaymentEvent) error {
	return nil
}
