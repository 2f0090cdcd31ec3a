package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/medsystem/medsystem/internal/app"
	"github.com/medsystem/medsystem/internal/config"
	"github.com/medsystem/medsystem/internal/database"
	"github.com/medsystem/medsystem/internal/handler"
	"github.com/medsystem/medsystem/internal/logger"
	"github.com/medsystem/medsystem/internal/middleware"
	"github.com/medsystem/medsystem/internal/repository"
	"github.com/medsystem/medsystem/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Str("version", handler.Version).Msg("starting medsystem server")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()

	// Connect to PostgreSQL
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()
	log.Info().Msg("connected to PostgreSQL")

	// Connect to Redis
	rdb, err := database.NewRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("connected to Redis")

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	reminderSvc, err := app.NewReminderService(ctx, cfg, db, log, reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize reminder service")
	}
	log.Info().
		Str("provider", cfg.Email.Provider).
		Str("locale", cfg.Reminder.Locale).
		Str("time_zone", cfg.Reminder.TimeZone).
		Msg("reminder service initialized")

	h := handler.New(
		db,
		rdb,
		reminderSvc,
		repository.NewDoctorRepository(db),
		repository.NewPatientRepository(db),
		log,
		cfg,
	)
	mw := middleware.New(rdb, log, cfg)
	r := router.New(h, mw, cfg, reg)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout(cfg.Reminder.RunTimeout),
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// writeTimeout leaves room for a full reminder batch. A run timeout of zero
// means the batch is unbounded, so the response is too.
func writeTimeout(runTimeout time.Duration) time.Duration {
	if runTimeout <= 0 {
		return 0
	}
	return runTimeout + 15*time.Second
}
