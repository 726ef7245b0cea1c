package catalog

import (
	"slices"
	"strconv"
	"strings"

	"github.com/anonto42/car-blog/backend/internal/models"
)

// Search keeps cars whose brand, model, color or year contains term, ignoring case.
// An empty term returns cars unchanged.
func Search(cars []models.Car, term string) []models.Car {
	if term == "" {
		return cars
	}

	term = strings.ToLower(term)
	matched := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if strings.Contains(strings.ToLower(car.Brand), term) ||
			strings.Contains(strings.ToLower(car.Model), term) ||
			strings.Contains(strings.ToLower(car.Color), term) ||
			strings.Contains(strconv.Itoa(car.Year), term) {
			matched = append(matched, car)
		}
	}
	return matched
}

// FilterByAvailability keeps available cars when onlyAvailable is set, otherwise returns cars unchanged
func FilterByAvailability(cars []models.Car, onlyAvailable bool) []models.Car {
	if !onlyAvailable {
		return cars
	}

	available := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if car.Availability {
			available = append(available, car)
		}
	}
	return available
}

// ParsePrice converts a formatted price such as "$65,000" to a number
func ParsePrice(price string) (float64, bool) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(price))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FilterByPriceRange keeps cars priced within [minPrice, maxPrice]. Unparsable prices never match.
func FilterByPriceRange(cars []models.Car, minPrice, maxPrice float64) []models.Car {
	inRange := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if price, ok := ParsePrice(car.Price); ok && price >= minPrice && price <= maxPrice {
			inRange = append(inRange, car)
		}
	}
	return inRange
}

// Brands returns All followed by the sorted unique brand names
func Brands(cars []models.Car) []string {
	seen := make(map[string]struct{}, len(cars))
	brands := make([]string, 0, len(cars))
	for _, car := range cars {
		if _, ok := seen[car.Brand]; ok {
			continue
		}
		seen[car.Brand] = struct{}{}
		brands = append(brands, car.Brand)
	}
	slices.Sort(brands)
	return append([]string{string(All)}, brands...)
}
