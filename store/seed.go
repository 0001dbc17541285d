package store

import "github.com/prithvi1320/StyleSphere/models"

// Seed dataset used when no valid snapshot exists. The catalog is fixed so
// a fresh install always looks the same; alice is the seeded admin.

const (
	defaultAdminPassword    = "admin123"
	defaultCustomerPassword = "password123"

	// fallbackImageID is assigned to admin-created products, which have no
	// uploaded imagery of their own.
	fallbackImageID = "product-1-a"
)

func seedCategories() []models.Category {
	return []models.Category{
		{ID: "t-shirts", Name: "T-Shirts", ImageID: "category-t-shirts"},
		{ID: "hoodies", Name: "Hoodies", ImageID: "category-hoodies"},
		{ID: "jackets", Name: "Jackets", ImageID: "category-jackets"},
		{ID: "dresses", Name: "Dresses", ImageID: "category-dresses"},
		{ID: "pants", Name: "Pants", ImageID: "category-pants"},
		{ID: "accessories", Name: "Accessories", ImageID: "category-accessories"},
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Classic Crew Tee",
			Description: "A soft, breathable cotton tee that works with everything in your closet.",
			Price:       24.99,
			Category:    "t-shirts",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"White", "Black", "Navy"},
			ImageIDs:    []string{"product-1-a", "product-1-b"},
			Rating:      4.6,
			ReviewCount: 182,
		},
		{
			ID:          "2",
			Name:        "Everyday Hoodie",
			Description: "Mid-weight fleece hoodie with a brushed interior and kangaroo pocket.",
			Price:       54.00,
			Category:    "hoodies",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Heather Grey", "Black"},
			ImageIDs:    []string{"product-2-a", "product-2-b"},
			Rating:      4.8,
			ReviewCount: 240,
		},
		{
			ID:          "3",
			Name:        "Vintage Denim Jacket",
			Description: "Stonewashed denim jacket cut from rigid 12oz fabric that breaks in beautifully.",
			Price:       89.50,
			Category:    "jackets",
			Sizes:       []string{"M", "L", "XL"},
			Colors:      []string{"Light Wash", "Dark Wash"},
			ImageIDs:    []string{"product-3-a"},
			Rating:      4.4,
			ReviewCount: 95,
		},
		{
			ID:          "4",
			Name:        "Linen Summer Dress",
			Description: "Airy linen-blend dress with a relaxed silhouette for warm days.",
			Price:       72.25,
			Category:    "dresses",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Sage", "Sand"},
			ImageIDs:    []string{"product-4-a", "product-4-b"},
			Rating:      4.7,
			ReviewCount: 67,
		},
		{
			ID:          "5",
			Name:        "Slim Fit Chinos",
			Description: "Stretch-twill chinos tailored through the leg with a clean finish.",
			Price:       59.99,
			Category:    "pants",
			Sizes:       []string{"30", "32", "34", "36"},
			Colors:      []string{"Khaki", "Olive", "Black"},
			ImageIDs:    []string{"product-5-a"},
			Rating:      4.3,
			ReviewCount: 128,
		},
		{
			ID:          "6",
			Name:        "Wool Blend Scarf",
			Description: "Generously sized scarf in a warm wool blend, woven for a soft drape.",
			Price:       32.75,
			Category:    "accessories",
			Sizes:       []string{"One Size"},
			Colors:      []string{"Charcoal", "Camel"},
			ImageIDs:    []string{"product-6-a"},
			Rating:      4.5,
			ReviewCount: 54,
		},
		{
			ID:          "7",
			Name:        "Oversized Graphic Tee",
			Description: "Boxy fit tee with an original front print on heavyweight cotton.",
			Price:       29.95,
			Category:    "t-shirts",
			Sizes:       []string{"M", "L", "XL"},
			Colors:      []string{"White", "Black"},
			ImageIDs:    []string{"product-7-a", "product-7-b"},
			Rating:      4.2,
			ReviewCount: 76,
		},
		{
			ID:          "8",
			Name:        "Puffer Vest",
			Description: "Lightweight insulated vest that layers cleanly over knits and tees.",
			Price:       64.50,
			Category:    "jackets",
			Sizes:       []string{"S", "M", "L"},
			Colors:      []string{"Black", "Forest"},
			ImageIDs:    []string{"product-8-a"},
			Rating:      4.1,
			ReviewCount: 41,
		},
	}
}

func seedUsers() []models.User {
	return []models.User{
		{ID: "u1", Name: "Alice Johnson", Email: "alice@example.com", Role: models.RoleAdmin, CreatedAt: "2024-01-15"},
		{ID: "u2", Name: "Bob Smith", Email: "bob@example.com", Role: models.RoleCustomer, CreatedAt: "2024-02-03"},
		{ID: "u3", Name: "Charlie Davis", Email: "charlie@example.com", Role: models.RoleCustomer, CreatedAt: "2024-02-19"},
		{ID: "u4", Name: "Diana Lee", Email: "diana@example.com", Role: models.RoleCustomer, CreatedAt: "2024-03-07"},
	}
}

func seedOrders() []models.Order {
	return []models.Order{
		{ID: "ORD482113", UserID: "u2", UserName: "Bob Smith", Total: 114.49, Status: models.OrderStatusDelivered, Date: "2024-03-02", ItemCount: 2},
		{ID: "ORD495728", UserID: "u3", UserName: "Charlie Davis", Total: 59.99, Status: models.OrderStatusShipped, Date: "2024-03-18", ItemCount: 1},
		{ID: "ORD501264", UserID: "u4", UserName: "Diana Lee", Total: 94.70, Status: models.OrderStatusPending, Date: "2024-04-05", ItemCount: 3},
	}
}

func seedCredentials() map[string]string {
	return map[string]string{
		"alice@example.com":   defaultAdminPassword,
		"bob@example.com":     defaultCustomerPassword,
		"charlie@example.com": defaultCustomerPassword,
		"diana@example.com":   defaultCustomerPassword,
	}
}
