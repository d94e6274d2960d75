package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"farmstand/internal/config"
	"farmstand/internal/database"
	"farmstand/internal/handler"
	"farmstand/internal/repository"
	"farmstand/internal/router"
	"farmstand/internal/service"
	"farmstand/internal/session"
	"farmstand/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting farmstand server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool and schema
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize session store
	sessions, err := session.NewRedisStore(ctx, cfg.Session.RedisURL, cfg.Session.TTL)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}
	defer sessions.Close()

	// Initialize image store, S3 or local disk
	var images storage.ImageStore
	staticDir := ""
	if cfg.Storage.S3Enabled {
		images, err = storage.NewS3Store(ctx, cfg.Storage.S3Bucket, cfg.Storage.S3Region, cfg.Storage.S3Prefix, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 image store: %w", err)
		}
	} else {
		images, err = storage.NewLocalStore(cfg.Storage.LocalDir, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize local image store: %w", err)
		}
		staticDir = cfg.Storage.LocalDir
		logger.Info().Str("dir", staticDir).Msg("using local file system for product images (S3 disabled)")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool, logger)
	productRepo := repository.NewProductRepository(pool, logger)

	// Initialize services
	userService := service.NewUserService(userRepo, logger)
	productService := service.NewProductService(productRepo, logger)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(userService, sessions, cfg.Session.CookieName, logger)
	productHandler := handler.NewProductHandler(productService, images, logger)

	// Initialize router
	mux := router.New(authHandler, productHandler, sessions, cfg.Session.CookieName, staticDir, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
