package models

// Company is the optional employer block of a user
type Company struct {
	Name string `json:"name"`
}

// User is a post author as served by the users API
type User struct {
	ID       int      `json:"id" validate:"required"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Username string   `json:"username"`
	Website  string   `json:"website,omitempty"`
	Company  *Company `json:"company,omitempty"`
}
