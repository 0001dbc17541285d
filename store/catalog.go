package store

import (
	"math"
	"strconv"
	"strings"

	"github.com/prithvi1320/StyleSphere/models"
)

// CreateProduct validates an admin draft and prepends it to the catalog.
// Empty sizes/colors get defaults and the product starts unrated with a
// fallback image.
func (s *Store) CreateProduct(draft models.ProductDraft) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isAdminLocked() {
		return models.Product{}, authError("Admin access required.")
	}
	name := strings.TrimSpace(draft.Name)
	description := strings.TrimSpace(draft.Description)
	if name == "" || description == "" || draft.Category == "" ||
		math.IsNaN(draft.Price) || math.IsInf(draft.Price, 0) || draft.Price <= 0 {
		return models.Product{}, validationError("Please fill all required fields with valid values.")
	}

	sizes := draft.Sizes
	if len(sizes) == 0 {
		sizes = []string{"M"}
	}
	colors := draft.Colors
	if len(colors) == 0 {
		colors = []string{"Black"}
	}

	product := models.Product{
		ID:          s.nextProductIDLocked(),
		Name:        name,
		Description: description,
		Price:       round(draft.Price),
		Category:    draft.Category,
		Sizes:       sizes,
		Colors:      colors,
		ImageIDs:    []string{fallbackImageID},
		Rating:      0,
		ReviewCount: 0,
	}
	s.products = append([]models.Product{product}, s.products...)
	s.persistLocked()
	return product, nil
}

// DeleteProduct removes a product and cascades the removal into the cart
// and wishlist.
func (s *Store) DeleteProduct(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isAdminLocked() {
		return authError("Admin access required.")
	}
	idx := s.productIndexLocked(productID)
	if idx < 0 {
		return notFoundError("Product not found.")
	}

	s.products = append(s.products[:idx], s.products[idx+1:]...)

	kept := s.cart[:0]
	for _, item := range s.cart {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.cart = kept

	wished := s.wishlist[:0]
	for _, id := range s.wishlist {
		if id != productID {
			wished = append(wished, id)
		}
	}
	s.wishlist = wished

	s.persistLocked()
	return nil
}

// nextProductIDLocked is the max numeric catalog id plus one, starting at 1
// when no id parses as a number.
func (s *Store) nextProductIDLocked() string {
	maxID := 0
	for _, p := range s.products {
		if n, err := strconv.Atoi(p.ID); err == nil && n > maxID {
			maxID = n
		}
	}
	return strconv.Itoa(maxID + 1)
}
