package router

import (
	"context"
	"net/http"

	"github.com/anonto42/car-blog/backend/internal/handlers"
	"github.com/anonto42/car-blog/backend/internal/listing"
	"github.com/anonto42/car-blog/backend/internal/repositories"
	"github.com/anonto42/car-blog/backend/pkg/config"
	"github.com/anonto42/car-blog/backend/pkg/logger"
	"github.com/labstack/echo/v4"
)

// Dependencies are the collaborators the routes are built from
type Dependencies struct {
	Posts     repositories.PostRepository
	Users     repositories.UserRepository
	Cars      repositories.CarRepository
	Store     *listing.Store
	Upstreams handlers.UpstreamReporter
	Config    *config.Config
	Log       *logger.Logger
}

// ListingOptions derives the listing page options from the configuration
func ListingOptions(cfg *config.Config) listing.Options {
	opts := listing.DefaultOptions()
	opts.PageSize = cfg.PageSize
	opts.UserPrefetch = cfg.UserPrefetch
	opts.SearchDebounce = cfg.SearchDebounce
	opts.ImageDomains = cfg.ImageDomains
	return opts
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, deps Dependencies) {
	cfg := deps.Config
	ctx := context.Background()

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck(deps.Upstreams))
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Car blog API"})
	})

	api := e.Group("/api/v1")

	// Blog listing routes
	feedHandler := handlers.NewFeedHandler(deps.Posts, deps.Users, deps.Cars, deps.Store, ListingOptions(cfg), deps.Log)
	feedHandler.RegisterFeedRoutes(api)
	deps.Log.Debugf(ctx, "Blog listing routes configured.")

	// Post routes
	postHandler := handlers.NewPostHandler(deps.Posts, deps.Users, deps.Cars, cfg.LatestCount, cfg.ImageDomains)
	postHandler.RegisterPostRoutes(api)
	deps.Log.Debugf(ctx, "Post routes configured.")

	// User routes
	userHandler := handlers.NewUserHandler(deps.Users, cfg.ImageDomains)
	userHandler.RegisterUserRoutes(api)
	deps.Log.Debugf(ctx, "User routes configured.")

	// Car catalogue routes
	carHandler := handlers.NewCarHandler(deps.Cars, cfg.ImageDomains)
	carHandler.RegisterCarRoutes(api)
	deps.Log.Debugf(ctx, "Car routes configured.")

	deps.Log.Infof(ctx, "All routes configured.")
}
