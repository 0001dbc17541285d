package store

// ToggleWishlist adds the product if absent and removes it if present.
func (s *Store) ToggleWishlist(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.wishlist {
		if id == productID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			s.persistLocked()
			return
		}
	}
	s.wishlist = append(s.wishlist, productID)
	s.persistLocked()
}

// IsWishlisted is a pure membership test.
func (s *Store) IsWishlisted(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.wishlist {
		if id == productID {
			return true
		}
	}
	return false
}
