package feed

import (
	"github.com/anonto42/car-blog/backend/internal/catalog"
	"github.com/anonto42/car-blog/backend/internal/models"
)

// KeyMatcher reports whether a view belongs under key
type KeyMatcher func(view models.PostView, key string) bool

// CountByKey counts views per key. All counts every view.
func CountByKey(views []models.PostView, keys []string, match KeyMatcher) map[string]int {
	counts := make(map[string]int, len(keys))
	for _, key := range keys {
		if key == string(catalog.All) {
			counts[key] = len(views)
			continue
		}
		n := 0
		for _, v := range views {
			if match(v, key) {
				n++
			}
		}
		counts[key] = n
	}
	return counts
}

// ByCategory matches views listed under the category key
func ByCategory(view models.PostView, key string) bool {
	return view.HasCategory(key)
}

// ByBrand matches views whose car has exactly the brand key
func ByBrand(view models.PostView, key string) bool {
	return view.Car != nil && view.Car.Brand == key
}

// CountCategories counts views per category name
func CountCategories(views []models.PostView, categories []string) map[string]int {
	return CountByKey(views, categories, ByCategory)
}

// CountBrands counts views per brand name
func CountBrands(views []models.PostView, brands []string) map[string]int {
	return CountByKey(views, brands, ByBrand)
}
