package config

import (
	appmiddleware "github.com/anonto42/car-blog/backend/internal/middleware"
	"github.com/anonto42/car-blog/backend/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func SetupMiddleware(e *echo.Echo, log *logger.Logger) {
	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.RequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
}
