package repositories

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/anonto42/car-blog/backend/internal/catalog"
	"github.com/anonto42/car-blog/backend/internal/fallback"
	"github.com/anonto42/car-blog/backend/internal/models"
)

// YearOperator selects how ListCarsByYear compares model years
type YearOperator string

const (
	YearEqual  YearOperator = ""
	YearAfter  YearOperator = "gt"
	YearBefore YearOperator = "lt"
)

// Match reports whether year satisfies the operator against pivot
func (op YearOperator) Match(year, pivot int) bool {
	switch op {
	case YearAfter:
		return year > pivot
	case YearBefore:
		return year < pivot
	default:
		return year == pivot
	}
}

// CarRepository defines the interface for car catalogue operations
type CarRepository interface {
	ListCars(ctx context.Context) []models.Car
	GetCar(ctx context.Context, id int) *models.Car
	ListCarsByModel(ctx context.Context, model string) []models.Car
	ListCarsByBrand(ctx context.Context, brand string) []models.Car
	ListCarsByYear(ctx context.Context, year int, op YearOperator) []models.Car
	ListBrands(ctx context.Context) []string
}

// RemoteCarRepository implements CarRepository over the cars API.
// Each endpoint has its own envelope key: "cars", "Car" and "Cars".
type RemoteCarRepository struct {
	client   *Client
	baseURL  string
	fallback fallback.Dataset
}

// NewRemoteCarRepository creates a new RemoteCarRepository
func NewRemoteCarRepository(client *Client, baseURL string, data fallback.Dataset) *RemoteCarRepository {
	return &RemoteCarRepository{client: client, baseURL: baseURL, fallback: data}
}

// ListCars retrieves the whole catalogue, or the fallback cars when the API fails or returns none
func (r *RemoteCarRepository) ListCars(ctx context.Context) []models.Car {
	var cars []models.Car
	if _, err := r.client.getEnvelope(ctx, r.baseURL+"/cars/", "cars", &cars); err != nil {
		r.client.log.Warnf(ctx, "Error fetching cars, using fallback data: %v", err)
		return slices.Clone(r.fallback.Cars)
	}

	cars = valid(ctx, r.client, "car", cars)
	if len(cars) == 0 {
		return slices.Clone(r.fallback.Cars)
	}
	return cars
}

// GetCar retrieves a car by ID. A nil result means the car does not exist.
func (r *RemoteCarRepository) GetCar(ctx context.Context, id int) *models.Car {
	var car models.Car
	found, err := r.client.getEnvelope(ctx, fmt.Sprintf("%s/cars/%d", r.baseURL, id), "Car", &car)
	if err == nil {
		if found && validOne(ctx, r.client, "car", &car) {
			return &car
		}
		return nil
	}
	if IsNotFound(err) {
		return nil
	}

	r.client.log.Warnf(ctx, "Error fetching car %d: %v", id, err)
	return r.fallback.Car(id)
}

// ListCarsByModel retrieves cars of the given model
func (r *RemoteCarRepository) ListCarsByModel(ctx context.Context, model string) []models.Car {
	return r.listFiltered(ctx, "/cars/model/"+url.PathEscape(model), "model "+model, func(c models.Car) bool {
		return strings.EqualFold(c.Model, model)
	})
}

// ListCarsByBrand retrieves cars of the given brand
func (r *RemoteCarRepository) ListCarsByBrand(ctx context.Context, brand string) []models.Car {
	return r.listFiltered(ctx, "/cars/name/"+url.PathEscape(brand), "brand "+brand, func(c models.Car) bool {
		return strings.EqualFold(c.Brand, brand)
	})
}

// ListCarsByYear retrieves cars built in, after or before year
func (r *RemoteCarRepository) ListCarsByYear(ctx context.Context, year int, op YearOperator) []models.Car {
	path := fmt.Sprintf("/cars/year/%d", year)
	if op != YearEqual {
		path += "?q=" + url.QueryEscape(string(op))
	}
	return r.listFiltered(ctx, path, fmt.Sprintf("year %d", year), func(c models.Car) bool {
		return op.Match(c.Year, year)
	})
}

// ListBrands returns "All" followed by the sorted unique brands of the catalogue
func (r *RemoteCarRepository) ListBrands(ctx context.Context) []string {
	cars := r.ListCars(ctx)
	if len(cars) == 0 {
		return slices.Clone(r.fallback.Brands)
	}
	return catalog.Brands(cars)
}

// listFiltered fetches a "Cars" envelope; on failure the fallback cars accepted by keep are returned
func (r *RemoteCarRepository) listFiltered(ctx context.Context, path, what string, keep func(models.Car) bool) []models.Car {
	var cars []models.Car
	found, err := r.client.getEnvelope(ctx, r.baseURL+path, "Cars", &cars)
	if err != nil {
		r.client.log.Warnf(ctx, "Error fetching cars by %s: %v", what, err)
		return r.fallback.CarsWhere(keep)
	}
	if !found {
		return []models.Car{}
	}
	return valid(ctx, r.client, "car", cars)
}
