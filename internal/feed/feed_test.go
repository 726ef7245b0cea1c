package feed

import (
	"reflect"
	"strings"
	"testing"

	"github.com/anonto42/car-blog/backend/internal/models"
)

var (
	bmw   = models.Car{ID: 1, Brand: "BMW", Model: "X5", Year: 2024, Availability: true}
	tesla = models.Car{ID: 2, Brand: "Tesla", Model: "Model S", Year: 2024, Availability: true}
	audi  = models.Car{ID: 3, Brand: "Audi", Model: "Q7", Year: 2024}
)

func TestResolveCarForPostExactMatch(t *testing.T) {
	car, ok := ResolveCarForPost(models.Post{ID: 2}, []models.Car{bmw, tesla, audi})
	if !ok || car.ID != 2 {
		t.Fatalf("expected car 2, got %+v (ok=%v)", car, ok)
	}
}

func TestResolveCarForPostModuloFallback(t *testing.T) {
	only := models.Car{ID: 99, Brand: "BMW", Model: "X5"}
	car, ok := ResolveCarForPost(models.Post{ID: 1, UserID: 1}, []models.Car{only})
	if !ok || car.ID != 99 {
		t.Fatalf("expected the BMW at index 0, got %+v (ok=%v)", car, ok)
	}

	cars := []models.Car{{ID: 10}, {ID: 11}, {ID: 12}}
	car, _ = ResolveCarForPost(models.Post{ID: 7}, cars)
	if car.ID != 11 {
		t.Fatalf("expected cars[7 %% 3] = 11, got %d", car.ID)
	}
}

func TestResolveCarForPostIsTotal(t *testing.T) {
	cars := []models.Car{{ID: 10}, {ID: 11}, {ID: 12}}
	for _, id := range []int{-7, -1, 0, 1, 2, 3, 100, 1 << 30} {
		first, ok := ResolveCarForPost(models.Post{ID: id}, cars)
		if !ok {
			t.Fatalf("expected a car for post %d", id)
		}
		second, _ := ResolveCarForPost(models.Post{ID: id}, cars)
		if first != second {
			t.Fatalf("resolution for post %d is not deterministic", id)
		}
	}

	if _, ok := ResolveCarForPost(models.Post{ID: 1}, nil); ok {
		t.Fatal("expected no car when cars is empty")
	}
}

func TestAttachCategories(t *testing.T) {
	posts := []models.Post{
		{ID: 1, Body: "x5"},
		{ID: 2, Body: "model s"},
		{ID: 3, Body: "q7"},
		{ID: 4, Body: "wraps to tesla? no, 4 % 3 = 1"},
	}
	views := AttachCategories(posts, []models.Car{bmw, tesla, audi})

	want := [][]string{
		{"All", "SUV", "Luxury"},
		{"All", "Electric"},
		{"All", "SUV", "Luxury"},
		{"All", "Electric"},
	}
	for i, v := range views {
		if !reflect.DeepEqual(v.Categories, want[i]) {
			t.Errorf("post %d: categories %v, want %v", v.ID, v.Categories, want[i])
		}
		if v.Car == nil {
			t.Errorf("post %d: expected a car", v.ID)
		}
	}
	if views[3].Car.ID != tesla.ID {
		t.Errorf("post 4: expected tesla by modulo, got %d", views[3].Car.ID)
	}
}

func TestAttachCategoriesWithoutCars(t *testing.T) {
	views := AttachCategories([]models.Post{{ID: 3, Title: "own"}}, nil)
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}
	v := views[0]
	if v.Car != nil || !reflect.DeepEqual(v.Categories, []string{"All"}) {
		t.Fatalf("unexpected view %+v", v)
	}
	if v.Title != titlePool[3] {
		t.Fatalf("expected pool title, got %q", v.Title)
	}
}

func TestCountByKey(t *testing.T) {
	views := AttachCategories(
		[]models.Post{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}},
		[]models.Car{bmw, tesla, audi},
	)

	categories := CountCategories(views, []string{"All", "SUV", "Luxury", "Electric", "Truck"})
	wantCategories := map[string]int{"All": 5, "SUV": 3, "Luxury": 3, "Electric": 2, "Truck": 0}
	if !reflect.DeepEqual(categories, wantCategories) {
		t.Fatalf("category counts %v, want %v", categories, wantCategories)
	}

	brands := CountBrands(views, []string{"All", "Audi", "BMW", "Tesla", "Kia"})
	wantBrands := map[string]int{"All": 5, "Audi": 2, "BMW": 1, "Tesla": 2, "Kia": 0}
	if !reflect.DeepEqual(brands, wantBrands) {
		t.Fatalf("brand counts %v, want %v", brands, wantBrands)
	}
}

func TestGenerateTitle(t *testing.T) {
	car := bmw
	cases := []struct {
		post models.Post
		car  *models.Car
		want string
	}{
		{models.Post{ID: 5}, &car, "BMW X5 2024 Review"},
		{models.Post{ID: 1}, &car, "Exploring the BMW X5: A Complete Guide"},
		{models.Post{ID: 2}, &car, "BMW X5 - Performance and Style Combined"},
		{models.Post{ID: 3}, &car, "Why the BMW X5 is Worth Your Attention"},
		{models.Post{ID: 4}, &car, "BMW X5 2024: Features and Specs"},
		{models.Post{ID: 11}, nil, "Tesla Model S: Electric Revolution"},
		{models.Post{ID: 20}, nil, "Top 5 Electric Cars in 2025"},
		{models.Post{ID: -3, Title: "Original"}, nil, "Original"},
	}

	for _, tc := range cases {
		if got := GenerateTitle(tc.post, tc.car); got != tc.want {
			t.Errorf("GenerateTitle(%d) = %q, want %q", tc.post.ID, got, tc.want)
		}
	}
}

func TestExcerpt(t *testing.T) {
	if got := Excerpt("short", 100); got != "short..." {
		t.Fatalf("unexpected excerpt %q", got)
	}
	long := strings.Repeat("é", 150)
	got := Excerpt(long, 100)
	if len([]rune(got)) != 103 || !strings.HasSuffix(got, "...") {
		t.Fatalf("unexpected excerpt length %d", len([]rune(got)))
	}
}
