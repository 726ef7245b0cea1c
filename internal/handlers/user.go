package handlers

import (
	"net/http"
	"strconv"

	"github.com/anonto42/car-blog/backend/internal/media"
	"github.com/anonto42/car-blog/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to post authors
type UserHandler struct {
	userRepository repositories.UserRepository
	imageDomains   []string
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, imageDomains []string) *UserHandler {
	return &UserHandler{userRepository: userRepo, imageDomains: imageDomains}
}

// RegisterUserRoutes registers user routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/:id", h.GetUser)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	user := h.userRepository.GetUser(c.Request().Context(), id)
	if user == nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"user":   user,
			"avatar": media.Filter(media.UserAvatar(user), h.imageDomains),
		},
	})
}
