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

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"edc-transfer/internal/api"
	"edc-transfer/internal/config"
	"edc-transfer/internal/connector"
	"edc-transfer/internal/database"
	"edc-transfer/internal/notify"
	"edc-transfer/internal/service"
	"edc-transfer/internal/storage"
	"edc-transfer/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize logger
	logger, err := initLogger()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting EDC Transfer Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.Int("server_port", cfg.Server.Port),
		zap.String("db_host", cfg.Database.Host),
		zap.String("management_url", cfg.Connector.ManagementURL),
		zap.Duration("polling_timeout", cfg.Transfer.PollingTimeout),
		zap.String("download_dir", cfg.Transfer.DownloadDir))

	ctx := context.Background()

	// Connect to database
	db, err := database.Connect(ctx, database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if err := database.RunMigrations(ctx, db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations applied successfully")

	// Connector and local storage
	edc, err := connector.NewClient(&cfg.Connector, logger)
	if err != nil {
		logger.Fatal("Failed to create connector client", zap.Error(err))
	}

	saver, err := storage.NewDiskSaver(cfg.Transfer.DownloadDir, logger)
	if err != nil {
		logger.Fatal("Failed to prepare download directory", zap.Error(err))
	}

	notifier := notify.NewStoreNotifier(db, logger)

	// Initialize workers
	workerManager := worker.NewWorkerManager(cfg, edc, saver, notifier, logger)

	// Initialize services
	transferService := service.NewTransferService(
		edc,
		workerManager.Poller(),
		workerManager.Downloader(),
		db,
		notifier,
		cfg.Connector.ReceiverURL,
		logger,
	)

	logger.Info("Services initialized")

	// Initialize API handlers
	apiHandler := api.NewHandler(transferService, db, logger)
	router := api.SetupRouter(apiHandler, logger)

	// Create HTTP server
	serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	httpServer := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server",
			zap.String("addr", serverAddr))
		serverErrors <- httpServer.ListenAndServe()
	}()

	logger.Info("Service initialized successfully",
		zap.String("status", "ready"),
		zap.Int("port", cfg.Server.Port))

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for interrupt signal or server error
	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	}

	logger.Info("Shutting down service...")

	if err := shutdown(httpServer, workerManager, transferService); err != nil {
		logger.Error("Shutdown completed with errors", zap.Error(err))
		return
	}

	logger.Info("Service stopped successfully")
}

// shutdown stops accepting requests, then stops polling and waits for
// background downloads
func shutdown(httpServer *http.Server, workers *worker.WorkerManager, transfers *service.TransferService) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs error
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("http server: %w", err))
		httpServer.Close()
	}

	errs = multierr.Append(errs, workers.Shutdown(shutdownTimeout))

	downloads := make(chan struct{})
	go func() {
		transfers.Wait()
		close(downloads)
	}()

	select {
	case <-downloads:
	case <-shutdownCtx.Done():
		errs = multierr.Append(errs, fmt.Errorf("pull downloads still running: %w", shutdownCtx.Err()))
	}

	return errs
}

func initLogger() (*zap.Logger, error) {
	env := os.Getenv("ENV")
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
