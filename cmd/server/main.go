package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"dhi-workshop/internal/config"
	"dhi-workshop/internal/handler"
	"dhi-workshop/internal/infrastructure/database"
	"dhi-workshop/internal/intl"
	"dhi-workshop/internal/logger"
	"dhi-workshop/internal/metrics"
	"dhi-workshop/internal/repository"
	"dhi-workshop/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLevel(cfg.LogLevel)

	deps := routerDeps{
		time: handler.NewTimeHandler(intl.NewFormatter(), handler.TimeHandlerConfig{
			DefaultLocale: cfg.DefaultLocale,
			DefaultTZ:     cfg.DefaultTZ,
			ICUDataPath:   cfg.ICUDataPath,
		}),
		allowedOrigins: cfg.CORSAllowedOrigins,
	}

	// The report database is optional; the health and time endpoints never need it.
	if cfg.DBEnabled {
		if cfg.DBMigrate {
			if err := database.Migrate(cfg.DatabaseURL()); err != nil {
				logger.Fatal("Failed to apply migrations",
					slog.String("error", err.Error()))
			}
		}

		pool, err := database.NewPostgres(context.Background(), database.PoolConfigFrom(cfg))
		if err != nil {
			logger.Fatal("Failed to connect to database",
				slog.String("error", err.Error()))
		}
		defer pool.Close()

		// Start database pool metrics collector
		poolStatsCollector := metrics.NewPoolStatsCollector(pool)
		poolStatsCollector.Start(15 * time.Second)
		defer poolStatsCollector.Stop()

		reportService := service.NewReportService(repository.NewPostgresScanRepository(pool))
		deps.scans = handler.NewScanHandler(reportService)
		deps.health = handler.NewHealthHandler(pool)
	} else {
		deps.health = handler.NewHealthHandler(nil)
	}

	gin.SetMode(gin.ReleaseMode)
	router := newRouter(deps)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.Bool("reports_enabled", cfg.DBEnabled))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
