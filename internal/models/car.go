package models

// Car is a catalogue entry from the cars API. Price is a formatted currency string.
type Car struct {
	ID           int    `json:"id" validate:"required"`
	Brand        string `json:"car" validate:"required"`
	Model        string `json:"car_model" validate:"required"`
	Color        string `json:"car_color"`
	Year         int    `json:"car_model_year"`
	VIN          string `json:"car_vin"`
	Price        string `json:"price"`
	Availability bool   `json:"availability"`
}

// Spec is a single label/value line of a car spec sheet
type Spec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
