package models

// Post is a blog post as served by the posts API
type Post struct {
	ID     int    `json:"id" validate:"required"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// PostView is a post enriched for display: its resolved car, categories, title and author
type PostView struct {
	Post
	Car        *Car     `json:"car,omitempty"`
	Categories []string `json:"categories"`
	Title      string   `json:"displayTitle"`
	Excerpt    string   `json:"excerpt"`
	Author     *User    `json:"author,omitempty"`
	Image      string   `json:"image,omitempty"`
	Avatar     string   `json:"avatar,omitempty"`
}

// HasCategory reports whether the view is listed under category
func (v PostView) HasCategory(category string) bool {
	for _, c := range v.Categories {
		if c == category {
			return true
		}
	}
	return false
}
