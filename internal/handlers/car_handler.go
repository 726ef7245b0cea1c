package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/anonto42/car-blog/backend/internal/catalog"
	"github.com/anonto42/car-blog/backend/internal/media"
	"github.com/anonto42/car-blog/backend/internal/models"
	"github.com/anonto42/car-blog/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CarHandler serves the car catalogue
type CarHandler struct {
	carRepository repositories.CarRepository
	imageDomains  []string
}

// NewCarHandler creates a new CarHandler
func NewCarHandler(carRepo repositories.CarRepository, imageDomains []string) *CarHandler {
	return &CarHandler{carRepository: carRepo, imageDomains: imageDomains}
}

// RegisterCarRoutes registers catalogue routes
func (h *CarHandler) RegisterCarRoutes(g *echo.Group) {
	g.GET("/cars", h.ListCars)
	g.GET("/cars/categories", h.ListCategories)
	g.GET("/cars/brands", h.ListBrands)
	g.GET("/cars/brand/:brand", h.ListByBrand)
	g.GET("/cars/model/:model", h.ListByModel)
	g.GET("/cars/year/:year", h.ListByYear)
	g.GET("/cars/:id", h.GetCar)
}

// ListCars returns the catalogue narrowed by search term, availability and price range
func (h *CarHandler) ListCars(c echo.Context) error {
	var q models.ListCarsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	minPrice, err := priceBound(q.MinPrice, 0)
	if err != nil {
		return err
	}
	maxPrice, err := priceBound(q.MaxPrice, math.MaxFloat64)
	if err != nil {
		return err
	}
	if minPrice > maxPrice {
		return echo.NewHTTPError(http.StatusBadRequest, "min_price must not exceed max_price")
	}

	cars := h.carRepository.ListCars(c.Request().Context())
	cars = catalog.Search(cars, q.Search)
	cars = catalog.FilterByAvailability(cars, q.Available)
	if q.MinPrice != "" || q.MaxPrice != "" {
		cars = catalog.FilterByPriceRange(cars, minPrice, maxPrice)
	}
	return carsResponse(c, cars)
}

func priceBound(raw string, def float64) (float64, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid price bound")
	}
	return v, nil
}

// ListCategories groups the catalogue by category
func (h *CarHandler) ListCategories(c echo.Context) error {
	groups := catalog.Categorize(h.carRepository.ListCars(c.Request().Context()))
	counts := make(map[catalog.Category]int, len(groups))
	for cat, cars := range groups {
		counts[cat] = len(cars)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    groups,
		"meta":    echo.Map{"categories": catalog.Names(), "counts": counts},
	})
}

// ListBrands returns All followed by every brand in the catalogue
func (h *CarHandler) ListBrands(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    h.carRepository.ListBrands(c.Request().Context()),
	})
}

// GetCar retrieves a car by ID with its image and spec sheet
func (h *CarHandler) GetCar(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid car ID")
	}
	car := h.carRepository.GetCar(c.Request().Context(), id)
	if car == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Car not found")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"car":        car,
			"image":      media.Filter(media.CarImage(car, car.ID), h.imageDomains),
			"categories": catalog.Classify(*car),
			"specs":      catalog.Specs(car),
		},
	})
}

func (h *CarHandler) ListByBrand(c echo.Context) error {
	return carsResponse(c, h.carRepository.ListCarsByBrand(c.Request().Context(), c.Param("brand")))
}

func (h *CarHandler) ListByModel(c echo.Context) error {
	return carsResponse(c, h.carRepository.ListCarsByModel(c.Request().Context(), c.Param("model")))
}

// ListByYear lists cars of a model year; ?q=gt or ?q=lt selects later or earlier years
func (h *CarHandler) ListByYear(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid year")
	}

	var q models.CarsByYearQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	cars := h.carRepository.ListCarsByYear(c.Request().Context(), year, repositories.YearOperator(q.Q))
	return carsResponse(c, cars)
}

func carsResponse(c echo.Context, cars []models.Car) error {
	if cars == nil {
		cars = []models.Car{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    cars,
		"meta":    echo.Map{"totalItems": len(cars)},
	})
}
