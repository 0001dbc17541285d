package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prithvi1320/StyleSphere/models"
)

func validShipping() ShippingDetails {
	return ShippingDetails{FullName: "Bob Smith", Address: "1 Main St", City: "Springfield", Zip: "12345"}
}

func TestPlaceOrderRequiresSession(t *testing.T) {
	s := newTestStore(t)
	s.AddToCart("1", "M", "Black", 1)

	_, err := s.PlaceOrder(validShipping())
	require.Error(t, err)
	assert.Equal(t, KindAuth, KindOf(err))
	assert.Equal(t, "Please sign in to place an order.", err.Error())
	assert.Len(t, s.Orders(), 3)
	assert.Len(t, s.Cart(), 1)
}

func TestPlaceOrderValidatesShipping(t *testing.T) {
	s := newTestStore(t)
	loginCustomer(t, s)
	s.AddToCart("1", "M", "Black", 1)

	for _, tc := range []struct {
		name   string
		mutate func(*ShippingDetails)
	}{
		{"blank name", func(d *ShippingDetails) { d.FullName = " " }},
		{"blank address", func(d *ShippingDetails) { d.Address = "" }},
		{"blank city", func(d *ShippingDetails) { d.City = "\t" }},
		{"blank zip", func(d *ShippingDetails) { d.Zip = "" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			details := validShipping()
			tc.mutate(&details)
			_, err := s.PlaceOrder(details)
			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
			assert.Equal(t, "Please complete shipping details.", err.Error())
		})
	}
	assert.Len(t, s.Orders(), 3, "failed checkouts must not create orders")
	assert.Len(t, s.Cart(), 1, "failed checkouts must not touch the cart")
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	s := newTestStore(t)
	loginCustomer(t, s)

	_, err := s.PlaceOrder(validShipping())
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, "Your cart is empty.", err.Error())
	assert.Len(t, s.Orders(), 3)
}

func TestPlaceOrder(t *testing.T) {
	s := newTestStore(t)
	loginCustomer(t, s)

	s.AddToCart("1", "M", "Black", 2) // 24.99 × 2
	s.AddToCart("6", "One Size", "Camel", 1)
	subtotal := s.CartSubtotal()

	order, err := s.PlaceOrder(validShipping())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.ID, "ORD"))
	assert.Equal(t, "u2", order.UserID)
	assert.Equal(t, "Bob Smith", order.UserName)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "2024-06-01", order.Date)
	assert.Equal(t, 3, order.ItemCount)
	assert.InDelta(t, subtotal+5.00, order.Total, 1e-9)

	orders := s.Orders()
	require.Len(t, orders, 4)
	assert.Equal(t, order.ID, orders[0].ID, "new orders are prepended")
	assert.Empty(t, s.Cart(), "checkout clears the cart")
}

func TestPlaceOrderIDsUniqueUnderFixedClock(t *testing.T) {
	s := newTestStore(t)
	loginCustomer(t, s)

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		s.AddToCart("1", "M", "Black", 1)
		order, err := s.PlaceOrder(validShipping())
		require.NoError(t, err)
		require.False(t, seen[order.ID], "duplicate order id %s", order.ID)
		seen[order.ID] = true
	}
}

func TestOrdersForUser(t *testing.T) {
	s := newTestStore(t)
	loginCustomer(t, s)
	s.AddToCart("1", "M", "Black", 1)
	order, err := s.PlaceOrder(validShipping())
	require.NoError(t, err)

	mine := s.OrdersForUser("u2")
	require.Len(t, mine, 2) // new order + seeded ORD482113
	assert.Equal(t, order.ID, mine[0].ID)
	assert.Empty(t, s.OrdersForUser("nobody"))
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("requires admin", func(t *testing.T) {
		s := newTestStore(t)
		loginCustomer(t, s)
		_, err := s.UpdateOrderStatus("ORD482113", models.OrderStatusShipped)
		require.Error(t, err)
		assert.Equal(t, KindAuth, KindOf(err))
	})

	t.Run("unknown order", func(t *testing.T) {
		s := newTestStore(t)
		loginAdmin(t, s)
		_, err := s.UpdateOrderStatus("ORD000000", models.OrderStatusShipped)
		require.Error(t, err)
		assert.Equal(t, KindNotFound, KindOf(err))
		assert.Equal(t, "Order not found.", err.Error())
	})

	t.Run("unknown status", func(t *testing.T) {
		s := newTestStore(t)
		loginAdmin(t, s)
		_, err := s.UpdateOrderStatus("ORD482113", models.OrderStatus("Lost"))
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
	})

	t.Run("any transition is allowed", func(t *testing.T) {
		s := newTestStore(t)
		loginAdmin(t, s)

		// Delivered back to Pending: deliberately permissive.
		o, err := s.UpdateOrderStatus("ORD482113", models.OrderStatusPending)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusPending, o.Status)

		o, err = s.UpdateOrderStatus("ORD482113", models.OrderStatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCancelled, o.Status)

		// Only the status changed.
		assert.Equal(t, 114.49, o.Total)
		assert.Equal(t, "Bob Smith", o.UserName)
	})
}
