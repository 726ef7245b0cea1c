// Package feed joins posts with cars and users and derives display data.
package feed

import (
	"github.com/anonto42/car-blog/backend/internal/catalog"
	"github.com/anonto42/car-blog/backend/internal/models"
)

// ExcerptLength is the number of body characters shown on listing cards
const ExcerptLength = 100

// ResolveCarForPost returns the car sharing the post's id, else cars[post.ID mod len(cars)].
// The positional pairing has no meaning; it guarantees a car whenever cars is non-empty.
func ResolveCarForPost(post models.Post, cars []models.Car) (models.Car, bool) {
	for _, car := range cars {
		if car.ID == post.ID {
			return car, true
		}
	}
	if len(cars) == 0 {
		return models.Car{}, false
	}
	n := len(cars)
	return cars[((post.ID%n)+n)%n], true
}

// AttachCategories builds a view per post carrying its car, categories, title and excerpt.
// Categories always start with All; a category is added when its member list holds the car's id.
func AttachCategories(posts []models.Post, cars []models.Car) []models.PostView {
	return Attach(posts, cars, catalog.Categorize(cars))
}

// Attach is AttachCategories with categorized cars computed by the caller
func Attach(posts []models.Post, cars []models.Car, groups map[catalog.Category][]models.Car) []models.PostView {
	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		view := models.PostView{
			Post:       post,
			Categories: []string{string(catalog.All)},
			Excerpt:    Excerpt(post.Body, ExcerptLength),
		}

		if car, ok := ResolveCarForPost(post, cars); ok {
			view.Car = &car
			for _, category := range catalog.Categories {
				if hasCar(groups[category], car.ID) {
					view.Categories = append(view.Categories, string(category))
				}
			}
		}

		view.Title = GenerateTitle(post, view.Car)
		views = append(views, view)
	}
	return views
}

func hasCar(cars []models.Car, id int) bool {
	for _, c := range cars {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Excerpt returns the first n characters of body followed by "..."
func Excerpt(body string, n int) string {
	runes := []rune(body)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes) + "..."
}
