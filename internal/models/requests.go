package models

// ListBlogsQuery holds the filters of a one-shot blog listing
type ListBlogsQuery struct {
	Search    string `query:"search" validate:"max=200"`
	Category  string `query:"category"`
	Brand     string `query:"brand" validate:"max=100"`
	Available bool   `query:"available"`
	Limit     int    `query:"limit" validate:"min=0,max=500"`
}

// UpdateListingRequest changes the filters of a listing session. Omitted fields keep their value.
type UpdateListingRequest struct {
	Search        *string `json:"search" validate:"omitempty,max=200"`
	Category      *string `json:"category"`
	Brand         *string `json:"brand" validate:"omitempty,max=100"`
	AvailableOnly *bool   `json:"availableOnly"`
	// Flush applies the search term without waiting for the debounce window
	Flush bool `json:"flush"`
}

// ListCarsQuery holds the catalogue filters
type ListCarsQuery struct {
	Search    string `query:"search" validate:"max=200"`
	Available bool   `query:"available"`
	MinPrice  string `query:"min_price" validate:"omitempty,numeric"`
	MaxPrice  string `query:"max_price" validate:"omitempty,numeric"`
}

// CarsByYearQuery selects the year comparison of a catalogue lookup
type CarsByYearQuery struct {
	Q string `query:"q" validate:"omitempty,oneof=gt lt"`
}
