package models

// Category is static reference data; the store never mutates it.
type Category struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	ImageID string `json:"imageId"`
}
