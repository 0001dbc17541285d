package store

import "github.com/prithvi1320/StyleSphere/models"

// AddToCart upserts a line by its (product, size, color) identity:
// an existing line gains quantity, a new one snapshots the product's
// current name, price and first image. Unknown products and non-positive
// quantities are silent no-ops.
func (s *Store) AddToCart(productID, size, color string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return
	}
	pi := s.productIndexLocked(productID)
	if pi < 0 {
		return
	}

	for i := range s.cart {
		if s.cart[i].SameIdentity(productID, size, color) {
			s.cart[i].Quantity += quantity
			s.persistLocked()
			return
		}
	}

	product := s.products[pi]
	imageID := ""
	if len(product.ImageIDs) > 0 {
		imageID = product.ImageIDs[0]
	}
	s.cart = append(s.cart, models.CartItem{
		ProductID: productID,
		Name:      product.Name,
		Price:     product.Price,
		ImageID:   imageID,
		Quantity:  quantity,
		Size:      size,
		Color:     color,
	})
	s.persistLocked()
}

// UpdateCartItem sets the quantity of the line at index; quantity <= 0
// removes the line. Out-of-range indices are no-ops.
func (s *Store) UpdateCartItem(index, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.cart) {
		return
	}
	if quantity <= 0 {
		s.cart = append(s.cart[:index], s.cart[index+1:]...)
	} else {
		s.cart[index].Quantity = quantity
	}
	s.persistLocked()
}

// RemoveCartItem removes the line at index; out-of-range is a no-op.
func (s *Store) RemoveCartItem(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.cart) {
		return
	}
	s.cart = append(s.cart[:index], s.cart[index+1:]...)
	s.persistLocked()
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = []models.CartItem{}
	s.persistLocked()
}
