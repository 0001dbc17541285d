package store

import (
	"fmt"
	"strings"

	"github.com/prithvi1320/StyleSphere/models"
)

// shippingFee is the flat fee added to every order total.
const shippingFee = 5.00

// ShippingDetails is the checkout input; every field is required.
type ShippingDetails struct {
	FullName string
	Address  string
	City     string
	Zip      string
}

// PlaceOrder turns the session cart into a Pending order: total is the live
// subtotal plus the flat shipping fee, owner name and item count are
// snapshotted, and the cart is cleared. Nothing is mutated on failure.
func (s *Store) PlaceOrder(details ShippingDetails) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.currentUserLocked()
	if !ok {
		return models.Order{}, authError("Please sign in to place an order.")
	}
	if strings.TrimSpace(details.FullName) == "" || strings.TrimSpace(details.Address) == "" ||
		strings.TrimSpace(details.City) == "" || strings.TrimSpace(details.Zip) == "" {
		return models.Order{}, validationError("Please complete shipping details.")
	}
	if len(s.cart) == 0 {
		return models.Order{}, validationError("Your cart is empty.")
	}

	itemCount := 0
	for _, item := range s.cart {
		itemCount += item.Quantity
	}

	order := models.Order{
		ID:        s.nextOrderIDLocked(),
		UserID:    current.ID,
		UserName:  current.Name,
		Total:     round(s.cartSubtotalLocked() + shippingFee),
		Status:    models.OrderStatusPending,
		Date:      s.formatDate(s.now()),
		ItemCount: itemCount,
	}
	s.orders = append([]models.Order{order}, s.orders...)
	s.cart = []models.CartItem{}
	s.persistLocked()
	return order, nil
}

// UpdateOrderStatus sets an order's status. Any known status is accepted in
// any order; there is deliberately no transition graph.
func (s *Store) UpdateOrderStatus(orderID string, status models.OrderStatus) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isAdminLocked() {
		return models.Order{}, authError("Admin access required.")
	}
	if !models.ValidOrderStatus(status) {
		return models.Order{}, validationError("Invalid order status.")
	}
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			s.persistLocked()
			return s.orders[i], nil
		}
	}
	return models.Order{}, notFoundError("Order not found.")
}

// nextOrderIDLocked builds an ORD id from the clock's six trailing digits,
// bumping until the id is unused.
func (s *Store) nextOrderIDLocked() string {
	n := s.now().UnixMilli()
	for {
		id := fmt.Sprintf("ORD%06d", n%1000000)
		if !s.orderIDTakenLocked(id) {
			return id
		}
		n++
	}
}

func (s *Store) orderIDTakenLocked(id string) bool {
	for _, o := range s.orders {
		if o.ID == id {
			return true
		}
	}
	return false
}
