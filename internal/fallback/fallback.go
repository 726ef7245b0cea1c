// Package fallback holds the static datasets served when the upstream APIs are unavailable.
package fallback

import "github.com/anonto42/car-blog/backend/internal/models"

// Dataset is the set of static records substituted for failed upstream calls
type Dataset struct {
	Posts  []models.Post
	Users  []models.User
	Cars   []models.Car
	Brands []string
}

// Default returns a fresh copy of the built-in dataset
func Default() Dataset {
	return Dataset{
		Posts: []models.Post{
			{
				ID:     1,
				Title:  "BMW X5 2024 Review",
				Body:   "The BMW X5 continues to set the standard for luxury SUVs with its perfect blend of performance, comfort, and technology.",
				UserID: 1,
			},
			{
				ID:     2,
				Title:  "Tesla Model S Performance Analysis",
				Body:   "Tesla Model S delivers exceptional electric performance with cutting-edge autonomous driving features.",
				UserID: 2,
			},
			{
				ID:     3,
				Title:  "Audi Q7 Luxury Features Review",
				Body:   "The Audi Q7 showcases German engineering excellence with premium materials and advanced safety systems.",
				UserID: 3,
			},
		},
		Users: []models.User{
			{ID: 1, Name: "Alex Thompson", Email: "alex@carblog.com", Username: "alexthompson", Website: "carblog.com"},
			{ID: 2, Name: "Maria Garcia", Email: "maria@carblog.com", Username: "mariagarcia", Website: "carblog.com"},
			{ID: 3, Name: "David Kim", Email: "david@carblog.com", Username: "davidkim", Website: "carblog.com"},
		},
		Cars: []models.Car{
			{ID: 1, Brand: "BMW", Model: "X5", Color: "Black", Year: 2024, VIN: "WBAFR7C50BC123456", Price: "$65,000", Availability: true},
			{ID: 2, Brand: "Tesla", Model: "Model S", Color: "White", Year: 2024, VIN: "5YJ3E1EA4KF123456", Price: "$89,000", Availability: true},
			{ID: 3, Brand: "Audi", Model: "Q7", Color: "Silver", Year: 2024, VIN: "WA1VAAF70KD123456", Price: "$72,000", Availability: false},
		},
		Brands: []string{
			"All", "BMW", "Mercedes-Benz", "Audi", "Toyota", "Honda", "Ford",
			"Chevrolet", "Nissan", "Alfa Romeo", "Lexus", "Porsche", "Tesla",
		},
	}
}

// Post returns the fallback post with id, if any
func (d Dataset) Post(id int) *models.Post {
	for i := range d.Posts {
		if d.Posts[i].ID == id {
			p := d.Posts[i]
			return &p
		}
	}
	return nil
}

// User returns the fallback user with id, if any
func (d Dataset) User(id int) *models.User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			u := d.Users[i]
			return &u
		}
	}
	return nil
}

// Car returns the fallback car with id, if any
func (d Dataset) Car(id int) *models.Car {
	for i := range d.Cars {
		if d.Cars[i].ID == id {
			c := d.Cars[i]
			return &c
		}
	}
	return nil
}

// CarsWhere returns copies of the fallback cars accepted by keep
func (d Dataset) CarsWhere(keep func(models.Car) bool) []models.Car {
	cars := make([]models.Car, 0, len(d.Cars))
	for _, c := range d.Cars {
		if keep(c) {
			cars = append(cars, c)
		}
	}
	return cars
}
