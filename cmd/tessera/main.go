package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/tesseralabs/tessera/internal/api"
	"github.com/tesseralabs/tessera/internal/config"
	"github.com/tesseralabs/tessera/internal/ent"
	"github.com/tesseralabs/tessera/internal/service"
	"github.com/tesseralabs/tessera/internal/telemetry"
)

const version = "0.3.0"

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Init(ctx, "tessera", version, cfg.Environment, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownTelemetry(ctx)
	}()

	db, err := ent.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Schema.Create(ctx); err != nil {
		return err
	}
	if err := service.SeedPlans(ctx, db); err != nil {
		return err
	}

	// Shared infrastructure
	registry := service.NewRegistry(logger)
	limiter := service.NewUserLimiter()
	catalog := service.DefaultCatalog()
	webhooks := service.NewWebhookService(cfg.WebhookSecret, logger)

	var events service.Publisher = service.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := service.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		defer kp.Close()
		events = kp
		logger.Info("event publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}
	notifier := &service.Notifier{Webhooks: webhooks, Events: events}

	// Core services
	params := service.NewParamsValidator(catalog)
	admission := service.NewAdmissionService(db, registry, limiter, params, logger)
	jobs := service.NewJobService(db, registry, notifier, logger)
	users := service.NewUserService(db, cfg.JWTSecret, cfg.SessionTokenTTL, logger)
	completion := service.NewCompletionService(db, registry, notifier, logger)

	// Background loops: one dispatcher, one reaper.
	dispatcher := service.NewDispatcher(db, registry, completion, catalog, logger, cfg.DispatchIdleSleep)
	dispatcher.Start()
	defer dispatcher.Stop()

	reaper := service.NewReaper(db, registry, completion, logger, cfg.ReapInterval)
	reaper.Start()
	defer reaper.Stop()

	router := api.NewRouter(cfg, &api.Services{
		Admission: admission,
		Jobs:      jobs,
		Users:     users,
		Registry:  registry,
		Catalog:   catalog,
		Limiter:   limiter,
	}, logger)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("tessera control plane listening", "addr", cfg.ListenAddr, "version", version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
