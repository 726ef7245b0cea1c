package listing

import "github.com/anonto42/car-blog/backend/internal/models"

// View is a snapshot of a listing page
type View struct {
	Status         Status            `json:"status"`
	Error          string            `json:"error,omitempty"`
	Heading        string            `json:"heading"`
	SearchInput    string            `json:"searchInput"`
	Filters        Filters           `json:"filters"`
	Posts          []models.PostView `json:"posts"`
	Shown          int               `json:"shown"`
	Total          int               `json:"total"`
	Visible        int               `json:"visible"`
	HasMore        bool              `json:"hasMore"`
	Categories     []string          `json:"categories"`
	Brands         []string          `json:"brands"`
	CategoryCounts map[string]int    `json:"categoryCounts"`
	BrandCounts    map[string]int    `json:"brandCounts"`
}
