package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/car-blog/backend/internal/listing"
	"github.com/anonto42/car-blog/backend/internal/models"
	"github.com/anonto42/car-blog/backend/internal/repositories"
	"github.com/anonto42/car-blog/backend/pkg/logger"
	"github.com/labstack/echo/v4"
)

// FeedHandler serves the blog listing, either one-shot or as a stateful session
type FeedHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
	carRepository  repositories.CarRepository
	store          *listing.Store
	options        listing.Options
	log            *logger.Logger
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	carRepo repositories.CarRepository,
	store *listing.Store,
	opts listing.Options,
	log *logger.Logger,
) *FeedHandler {
	return &FeedHandler{
		postRepository: postRepo,
		userRepository: userRepo,
		carRepository:  carRepo,
		store:          store,
		options:        opts,
		log:            log,
	}
}

// RegisterFeedRoutes registers blog listing routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/blogs", h.ListBlogs)

	sessions := g.Group("/blogs/sessions")
	sessions.POST("", h.CreateSession)
	sessions.GET("/:id", h.GetSession)
	sessions.PATCH("/:id", h.UpdateSession)
	sessions.POST("/:id/more", h.LoadMore)
	sessions.POST("/:id/retry", h.RetrySession)
	sessions.DELETE("/:id", h.DeleteSession)
}

func (h *FeedHandler) newController(opts listing.Options) *listing.Controller {
	return listing.NewController(h.postRepository, h.userRepository, h.carRepository, h.log, opts)
}

// ListBlogs loads the listing once and returns the filtered first page
func (h *FeedHandler) ListBlogs(c echo.Context) error {
	var q models.ListBlogsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	opts := h.options
	opts.SearchDebounce = 0
	if q.Limit > 0 {
		opts.PageSize = q.Limit
	}

	ctrl := h.newController(opts)
	defer ctrl.Close()

	patch := listing.Patch{Search: &q.Search, AvailableOnly: &q.Available}
	if q.Category != "" {
		patch.Category = &q.Category
	}
	if q.Brand != "" {
		patch.Brand = &q.Brand
	}
	if err := ctrl.Update(patch); err != nil {
		return filterError(err)
	}

	if err := ctrl.Load(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, ctrl.Snapshot().Error)
	}

	return viewResponse(c, http.StatusOK, "", ctrl.Snapshot())
}

// CreateSession starts a listing session, loads it and applies any filters in the body
func (h *FeedHandler) CreateSession(c echo.Context) error {
	var req models.UpdateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctrl := h.newController(h.options)
	if err := ctrl.Update(patchFrom(req)); err != nil {
		ctrl.Close()
		return filterError(err)
	}

	// A failed load still yields a session so the client can retry it.
	_ = ctrl.Load(c.Request().Context())
	if req.Flush {
		ctrl.FlushSearch()
	}

	id := h.store.Add(ctrl)
	h.log.Infof(c.Request().Context(), "Created listing session %s (%s)", id, ctrl.Status())
	return viewResponse(c, http.StatusCreated, id, ctrl.Snapshot())
}

// GetSession returns the current page of a session
func (h *FeedHandler) GetSession(c echo.Context) error {
	ctrl, err := h.session(c)
	if err != nil {
		return err
	}
	return viewResponse(c, http.StatusOK, c.Param("id"), ctrl.Snapshot())
}

// UpdateSession changes the filters of a session
func (h *FeedHandler) UpdateSession(c echo.Context) error {
	ctrl, err := h.session(c)
	if err != nil {
		return err
	}

	var req models.UpdateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := ctrl.Update(patchFrom(req)); err != nil {
		return filterError(err)
	}
	if req.Flush {
		ctrl.FlushSearch()
	}
	return viewResponse(c, http.StatusOK, c.Param("id"), ctrl.Snapshot())
}

// LoadMore reveals the next page of a session
func (h *FeedHandler) LoadMore(c echo.Context) error {
	ctrl, err := h.session(c)
	if err != nil {
		return err
	}
	ctrl.LoadMore()
	return viewResponse(c, http.StatusOK, c.Param("id"), ctrl.Snapshot())
}

// RetrySession reloads a session, typically after an error
func (h *FeedHandler) RetrySession(c echo.Context) error {
	ctrl, err := h.session(c)
	if err != nil {
		return err
	}
	_ = ctrl.Retry(c.Request().Context())
	return viewResponse(c, http.StatusOK, c.Param("id"), ctrl.Snapshot())
}

// DeleteSession discards a session
func (h *FeedHandler) DeleteSession(c echo.Context) error {
	if !h.store.Delete(c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "Listing session not found")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *FeedHandler) session(c echo.Context) (*listing.Controller, error) {
	ctrl, ok := h.store.Get(c.Param("id"))
	if !ok {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Listing session not found")
	}
	return ctrl, nil
}

func patchFrom(req models.UpdateListingRequest) listing.Patch {
	return listing.Patch{
		Search:        req.Search,
		Category:      req.Category,
		Brand:         req.Brand,
		AvailableOnly: req.AvailableOnly,
	}
}

func filterError(err error) error {
	if errors.Is(err, listing.ErrUnknownCategory) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func viewResponse(c echo.Context, code int, sessionID string, view listing.View) error {
	meta := echo.Map{
		"shown":   view.Shown,
		"total":   view.Total,
		"visible": view.Visible,
		"hasMore": view.HasMore,
	}
	if sessionID != "" {
		meta["sessionId"] = sessionID
	}
	return c.JSON(code, echo.Map{
		"success": view.Status != listing.StatusError,
		"data":    view,
		"meta":    meta,
	})
}
