package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/api-sage/payment-instruction-processor/src/internal/adapter/http/controller"
	"github.com/api-sage/payment-instruction-processor/src/internal/adapter/http/middleware"
	"github.com/api-sage/payment-instruction-processor/src/internal/adapter/http/router"
	"github.com/api-sage/payment-instruction-processor/src/internal/adapter/repository/memory"
	"github.com/api-sage/payment-instruction-processor/src/internal/adapter/repository/postgres"
	"github.com/api-sage/payment-instruction-processor/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/payment-instruction-processor/src/internal/config"
	"github.com/api-sage/payment-instruction-processor/src/internal/logger"
	"github.com/api-sage/payment-instruction-processor/src/internal/metrics"
	"github.com/api-sage/payment-instruction-processor/src/internal/usecase/services"
)

// memoryJournalCapacity bounds the in-memory audit trail. The journal is
// write-only, so retained entries never feed into later results.
const memoryJournalCapacity = 10000

func main() {
	if err := run(); err != nil {
		logger.Error("server stopped with error", err, nil)
		logger.Sync()
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("load config: %v", err)
		return err
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	journal, closeJournal, err := openJournal(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeJournal()

	var authMiddleware func(http.Handler) http.Handler
	if cfg.AuthEnabled {
		keyHash, err := middleware.HashChannelKey(cfg.ChannelKey, cfg.ChannelKeyHash)
		if err != nil {
			return fmt.Errorf("prepare channel key: %w", err)
		}
		authMiddleware = middleware.BasicAuth(cfg.ChannelID, keyHash)
	}

	recorder := metrics.NewRecorder()
	instructionService := services.NewPaymentInstructionService(journal, recorder)

	handler := router.New(
		controller.NewPaymentInstructionController(instructionService),
		controller.NewHealthController(),
		recorder.Handler(),
		authMiddleware,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server starting", logger.Fields{
			"addr":        server.Addr,
			"authEnabled": cfg.AuthEnabled,
			"journal":     journalKind(cfg),
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("http server shutting down", nil)
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func openJournal(ctx context.Context, cfg config.Config) (repo_interfaces.InstructionLogRepository, func(), error) {
	if !cfg.UsesDatabase() {
		return memory.NewInstructionLogRepository(memoryJournalCapacity), func() {}, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	db, err := postgres.Open(connectCtx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}

	if err := postgres.RunMigrations(connectCtx, db, cfg.MigrationsDir); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("instruction journal migrations completed", logger.Fields{"dir": cfg.MigrationsDir})

	return postgres.NewInstructionLogRepository(db), func() { _ = db.Close() }, nil
}

func journalKind(cfg config.Config) string {
	if cfg.UsesDatabase() {
		return "postgres"
	}
	return "memory"
}
