package feed

import (
	"fmt"

	"github.com/anonto42/car-blog/backend/internal/models"
)

var titleTemplates = []func(models.Car) string{
	func(c models.Car) string { return fmt.Sprintf("%s %s %d Review", c.Brand, c.Model, c.Year) },
	func(c models.Car) string { return fmt.Sprintf("Exploring the %s %s: A Complete Guide", c.Brand, c.Model) },
	func(c models.Car) string { return fmt.Sprintf("%s %s - Performance and Style Combined", c.Brand, c.Model) },
	func(c models.Car) string { return fmt.Sprintf("Why the %s %s is Worth Your Attention", c.Brand, c.Model) },
	func(c models.Car) string { return fmt.Sprintf("%s %s %d: Features and Specs", c.Brand, c.Model, c.Year) },
}

var titlePool = []string{
	"Top 5 Electric Cars in 2025",
	"Best SUVs for Family Adventures",
	"Luxury Car Review: Performance Meets Elegance",
	"Maintenance Tips for Your Dream Car",
	"Sports Cars That Define Speed",
	"Eco-Friendly Vehicles for the Future",
	"Classic Cars Making a Comeback",
	"Budget-Friendly Cars with Premium Features",
	"Off-Road Vehicles for Every Terrain",
	"Hybrid Technology: The Future of Driving",
	"BMW vs Mercedes: The Ultimate Comparison",
	"Tesla Model S: Electric Revolution",
	"Ford F-150: America's Favorite Truck",
	"Porsche 911: Timeless Sports Car Icon",
	"Honda Civic: Reliability Redefined",
	"Audi A4: German Engineering Excellence",
	"Toyota Camry: The Perfect Family Car",
	"Chevrolet Corvette: American Muscle",
	"Nissan GT-R: Japanese Performance Beast",
	"Volkswagen Golf: European Compact Champion",
}

// GenerateTitle returns a car-themed title for post. With a car one of five templates is
// chosen by post id; without one a title is taken from a fixed pool, else the post's own title.
func GenerateTitle(post models.Post, car *models.Car) string {
	if car != nil {
		return titleTemplates[wrap(post.ID, len(titleTemplates))](*car)
	}

	i := post.ID % len(titlePool)
	if i < 0 || i >= len(titlePool) || titlePool[i] == "" {
		return post.Title
	}
	return titlePool[i]
}

func wrap(n, size int) int {
	return ((n % size) + size) % size
}
