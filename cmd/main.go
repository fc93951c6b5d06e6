package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpadapter "clip-market/internal/adapter/http"
	kafkaadapter "clip-market/internal/adapter/kafka"
	"clip-market/internal/adapter/memory"
	"clip-market/internal/adapter/metrics"
	"clip-market/internal/adapter/postgres"
	"clip-market/internal/adapter/usecase"
	"clip-market/internal/config"
	"clip-market/internal/config/configs"
	"clip-market/internal/core/port"
	"clip-market/internal/db"
)

// main is the entry point of the clip-market ledger service. It loads
// configuration, prepares storage, wires the ledger use case and serves
// HTTP until SIGINT or SIGTERM, then shuts down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, closeRepo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage init error", slog.Any("error", err))
		return
	}
	defer closeRepo()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, repo, logger); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	opts := []usecase.Option{
		usecase.WithMetrics(metrics.NewLedgerMetrics(reg)),
		usecase.WithLogger(logger),
	}
	if cfg.Kafka.Enabled() {
		p := kafkaadapter.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer func() {
			if err := p.Close(); err != nil {
				logger.Warn("kafka writer close", slog.Any("error", err))
			}
		}()
		opts = append(opts, usecase.WithPublisher(p))
		logger.Info("publishing ledger events", slog.String("topic", cfg.Kafka.Topic))
	}

	svc := usecase.NewLedgerUseCase(repo, opts...)

	handler := httpadapter.NewHandler(svc, logger,
		httpadapter.WithUserHeader(cfg.Auth.UserHeader),
		httpadapter.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})),
	)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openRepository builds the configured ledger store. For PostgreSQL it
// optionally applies migrations first.
func openRepository(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.LedgerRepository, func(), error) {
	if cfg.Store.Driver == configs.StoreDriverMemory {
		logger.Warn("using in-memory store, data is lost on exit")
		return memory.NewStore(), func() {}, nil
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection: %w", err)
	}
	return postgres.NewLedgerRepository(pool), pool.Close, nil
}
