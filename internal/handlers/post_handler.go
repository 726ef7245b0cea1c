package handlers

import (
	"net/http"
	"strconv"

	"github.com/anonto42/car-blog/backend/internal/catalog"
	"github.com/anonto42/car-blog/backend/internal/feed"
	"github.com/anonto42/car-blog/backend/internal/media"
	"github.com/anonto42/car-blog/backend/internal/models"
	"github.com/anonto42/car-blog/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

// PostHandler handles HTTP requests related to single posts
type PostHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
	carRepository  repositories.CarRepository
	latestCount    int
	imageDomains   []string
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	carRepo repositories.CarRepository,
	latestCount int,
	imageDomains []string,
) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		userRepository: userRepo,
		carRepository:  carRepo,
		latestCount:    latestCount,
		imageDomains:   imageDomains,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/posts/latest", h.GetLatestPosts)
	g.GET("/posts/:id", h.GetPost)
}

// PostDetail is everything the post page shows
type PostDetail struct {
	models.PostView
	HeroImage string        `json:"heroImage"`
	Specs     []models.Spec `json:"specs"`
}

// GetLatestPosts returns the newest posts with their cars and images
func (h *PostHandler) GetLatestPosts(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		posts []models.Post
		cars  []models.Car
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		posts = h.postRepository.LatestPosts(gctx, h.latestCount)
		return nil
	})
	g.Go(func() error {
		cars = h.carRepository.ListCars(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	views := feed.AttachCategories(posts, cars)
	for i := range views {
		views[i].Image = media.Filter(media.CarImage(views[i].Car, views[i].ID), h.imageDomains)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"posts": views},
		"meta":    echo.Map{"totalItems": len(views)},
	})
}

// GetPost retrieves a post with its author, car and spec sheet
func (h *PostHandler) GetPost(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	post := h.postRepository.GetPost(ctx, id)
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	var (
		author *models.User
		cars   []models.Car
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		author = h.userRepository.GetUser(gctx, post.UserID)
		return nil
	})
	g.Go(func() error {
		cars = h.carRepository.ListCars(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	view := feed.AttachCategories([]models.Post{*post}, cars)[0]
	view.Author = author
	view.Image = media.Filter(media.CarImage(view.Car, view.ID), h.imageDomains)
	view.Avatar = media.Filter(media.UserAvatar(author), h.imageDomains)

	detail := PostDetail{
		PostView:  view,
		HeroImage: media.Filter(media.HeroImage(view.ID), h.imageDomains),
		Specs:     catalog.Specs(view.Car),
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    detail,
	})
}
