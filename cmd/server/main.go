package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/car-blog/backend/internal/fallback"
	"github.com/anonto42/car-blog/backend/internal/listing"
	"github.com/anonto42/car-blog/backend/internal/repositories"
	"github.com/anonto42/car-blog/backend/internal/router"
	"github.com/anonto42/car-blog/backend/pkg/config"
	"github.com/anonto42/car-blog/backend/pkg/logger"
	"github.com/anonto42/car-blog/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.StandardLogger()
	if err := cfg.Validate(); err != nil {
		log.Fatalf(context.Background(), "Failed to load configuration: %v", err)
	}
	if err := log.Init(cfg.LogLevel, cfg.LogFormat, "car-blog-api", cfg.Env); err != nil {
		log.Fatalf(context.Background(), "Failed to initialize logger: %v", err)
	}

	// Upstream repositories share one client and the static fallback data
	client := repositories.NewClient(&http.Client{}, cfg.APITimeout, log)
	data := fallback.Default()
	store := listing.NewStore(cfg.SessionTTL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go sweepSessions(ctx, store, cfg.SessionTTL, log)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	// Setup global middleware
	config.SetupMiddleware(e, log)

	// Setup routes and dependencies
	router.SetupRoutes(e, router.Dependencies{
		Posts:     repositories.NewRemotePostRepository(client, cfg.PostsAPIURL, data),
		Users:     repositories.NewRemoteUserRepository(client, cfg.PostsAPIURL, data),
		Cars:      repositories.NewRemoteCarRepository(client, cfg.CarsAPIURL, data),
		Store:     store,
		Upstreams: client,
		Config:    cfg,
		Log:       log,
	})

	// Start server
	go func() {
		log.Infof(ctx, "Starting server on :%s (%s)", cfg.Port, cfg.Env)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf(ctx, "Server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf(shutdownCtx, "Graceful shutdown failed: %v", err)
	}
}

func sweepSessions(ctx context.Context, store *listing.Store, every time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(); n > 0 {
				log.Debugf(ctx, "Discarded %d idle listing sessions", n)
			}
		}
	}
}
