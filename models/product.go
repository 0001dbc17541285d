package models

// Product is a catalog entry. Prices are always kept rounded to cents;
// ImageIDs are opaque references resolved by the frontend.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	ImageIDs    []string `json:"imageIds"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
}

// ProductDraft is the admin input for creating a product. Sizes and colors
// may be empty; the store fills in defaults.
type ProductDraft struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
}
