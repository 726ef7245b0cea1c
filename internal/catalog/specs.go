package catalog

import (
	"strconv"

	"github.com/anonto42/car-blog/backend/internal/models"
)

var genericSpecs = []models.Spec{
	{Label: "Model Year", Value: "2024"},
	{Label: "Fuel Type", Value: "Electric"},
	{Label: "Top Speed", Value: "155 mph"},
	{Label: "Price", Value: "$45,000"},
	{Label: "Range", Value: "300 miles"},
	{Label: "Horsepower", Value: "400 HP"},
}

// Specs returns the spec sheet of car, or a generic sheet when car is nil
func Specs(car *models.Car) []models.Spec {
	if car == nil {
		specs := make([]models.Spec, len(genericSpecs))
		copy(specs, genericSpecs)
		return specs
	}

	status := "Sold Out"
	if car.Availability {
		status = "Available"
	}
	return []models.Spec{
		{Label: "Brand", Value: car.Brand},
		{Label: "Model", Value: car.Model},
		{Label: "Year", Value: strconv.Itoa(car.Year)},
		{Label: "Color", Value: car.Color},
		{Label: "Price", Value: car.Price},
		{Label: "Status", Value: status},
	}
}
