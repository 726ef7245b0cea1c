package listing

import (
	"strings"

	"github.com/anonto42/car-blog/backend/internal/catalog"
	"github.com/anonto42/car-blog/backend/internal/models"
)

// Filters are the applied narrowing criteria of a listing
type Filters struct {
	Search        string `json:"search"`
	Category      string `json:"category"`
	Brand         string `json:"brand"`
	AvailableOnly bool   `json:"availableOnly"`
}

// DefaultFilters selects everything
func DefaultFilters() Filters {
	return Filters{Category: string(catalog.All), Brand: string(catalog.All)}
}

// Apply narrows views by search term, category, brand and availability, in that order.
// Each pass is a conjunctive predicate, so the result does not depend on the order.
func Apply(views []models.PostView, f Filters) []models.PostView {
	term := strings.ToLower(f.Search)
	matchAll := func(v string) bool { return v == "" || v == string(catalog.All) }

	out := make([]models.PostView, 0, len(views))
	for _, v := range views {
		if term != "" && !matchesSearch(v, term) {
			continue
		}
		if !matchAll(f.Category) && !v.HasCategory(f.Category) {
			continue
		}
		if !matchAll(f.Brand) && (v.Car == nil || v.Car.Brand != f.Brand) {
			continue
		}
		if f.AvailableOnly && (v.Car == nil || !v.Car.Availability) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// matchesSearch looks for term in the display title and the car's brand and model
func matchesSearch(v models.PostView, term string) bool {
	if strings.Contains(strings.ToLower(v.Title), term) {
		return true
	}
	return v.Car != nil &&
		(strings.Contains(strings.ToLower(v.Car.Brand), term) ||
			strings.Contains(strings.ToLower(v.Car.Model), term))
}

// Heading describes the active filters, e.g. `Car Blog Posts for "x5" in SUV - BMW`
func Heading(f Filters) string {
	var b strings.Builder
	b.WriteString("Car Blog Posts")
	if f.Search != "" {
		b.WriteString(` for "` + f.Search + `"`)
	}
	if f.Category != "" && f.Category != string(catalog.All) {
		b.WriteString(" in " + f.Category)
	}
	if f.Brand != "" && f.Brand != string(catalog.All) {
		b.WriteString(" - " + f.Brand)
	}
	return b.String()
}
