package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartUpsertsByIdentity(t *testing.T) {
	s := newTestStore(t)

	s.AddToCart("1", "M", "Black", 1)
	s.AddToCart("1", "M", "Black", 2)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)
	assert.Equal(t, "Classic Crew Tee", cart[0].Name)
	assert.Equal(t, "product-1-a", cart[0].ImageID)

	// A different size is a different line.
	s.AddToCart("1", "L", "Black", 1)
	require.Len(t, s.Cart(), 2)
}

func TestAddToCartNoOps(t *testing.T) {
	s := newTestStore(t)

	s.AddToCart("1", "M", "Black", 0)
	s.AddToCart("1", "M", "Black", -2)
	s.AddToCart("does-not-exist", "M", "Black", 1)
	assert.Empty(t, s.Cart())
}

func TestCartLinePriceIsSnapshotButSubtotalIsLive(t *testing.T) {
	// The line keeps its add-time price; the subtotal re-reads the catalog.
	mem := &memorySnapshots{data: []byte(`{
		"products": [{"id":"1","name":"A","description":"a","price":40,"category":"t-shirts","sizes":["M"],"colors":["Black"],"imageIds":["product-1-a"],"rating":0,"reviewCount":0}],
		"cart": [{"productId":"1","name":"A","price":25,"imageId":"product-1-a","quantity":1,"size":"M","color":"Black"}]
	}`)}
	s := New(mem)
	require.Equal(t, LifecycleLoaded, s.Load())

	assert.Equal(t, 25.0, s.Cart()[0].Price)
	assert.Equal(t, 40.0, s.CartSubtotal())
}

func TestUpdateCartItem(t *testing.T) {
	s := newTestStore(t)
	s.AddToCart("1", "M", "Black", 1)
	s.AddToCart("2", "M", "Black", 1)
	s.AddToCart("3", "M", "Light Wash", 1)

	t.Run("out of range is a no-op", func(t *testing.T) {
		s.UpdateCartItem(-1, 5)
		s.UpdateCartItem(3, 5)
		require.Len(t, s.Cart(), 3)
	})

	t.Run("replaces quantity in place", func(t *testing.T) {
		s.UpdateCartItem(1, 7)
		cart := s.Cart()
		assert.Equal(t, 7, cart[1].Quantity)
		assert.Equal(t, "2", cart[1].ProductID)
	})

	t.Run("zero removes the line and shifts indices", func(t *testing.T) {
		s.UpdateCartItem(1, 0)
		cart := s.Cart()
		require.Len(t, cart, 2)
		assert.Equal(t, "1", cart[0].ProductID)
		assert.Equal(t, "3", cart[1].ProductID)
	})
}

func TestRemoveCartItem(t *testing.T) {
	s := newTestStore(t)
	s.AddToCart("1", "M", "Black", 1)
	s.AddToCart("2", "M", "Black", 1)

	s.RemoveCartItem(5) // no-op
	require.Len(t, s.Cart(), 2)

	s.RemoveCartItem(0)
	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "2", cart[0].ProductID)
}

func TestClearCart(t *testing.T) {
	s := newTestStore(t)
	s.AddToCart("1", "M", "Black", 2)

	s.ClearCart()
	assert.Empty(t, s.Cart())
	assert.Equal(t, 0, s.CartCount())

	s.ClearCart() // idempotent
}

func TestSubtotalRoundsToCents(t *testing.T) {
	// Catalog injected with sub-cent prices: the subtotal must be the
	// money-rounded sum, stable across repeated recomputation.
	mem := &memorySnapshots{data: []byte(`{
		"products": [
			{"id":"1","name":"A","description":"a","price":19.995,"category":"t-shirts","sizes":["M"],"colors":["Black"],"imageIds":["product-1-a"],"rating":0,"reviewCount":0},
			{"id":"2","name":"B","description":"b","price":10.005,"category":"t-shirts","sizes":["M"],"colors":["Black"],"imageIds":["product-2-a"],"rating":0,"reviewCount":0}
		]
	}`)}
	s := New(mem)
	require.Equal(t, LifecycleLoaded, s.Load())

	s.AddToCart("1", "M", "Black", 1)
	s.AddToCart("2", "M", "Black", 1)

	want := 30.00
	for i := 0; i < 100; i++ {
		require.InDelta(t, want, s.CartSubtotal(), 1e-9)
	}
}

func TestSubtotalSkipsLinesForMissingProducts(t *testing.T) {
	// A cart line that references a product absent from the catalog
	// contributes zero instead of failing.
	mem := &memorySnapshots{data: []byte(`{
		"cart": [{"productId":"999","name":"Gone","price":10,"imageId":"","quantity":2,"size":"M","color":"Black"}]
	}`)}
	s := New(mem)
	require.Equal(t, LifecycleLoaded, s.Load())

	require.Len(t, s.Cart(), 1)
	assert.Equal(t, 0.0, s.CartSubtotal())
	assert.Equal(t, 2, s.CartCount())
}

func TestToggleWishlistIsAnIdempotentToggle(t *testing.T) {
	s := newTestStore(t)

	assert.False(t, s.IsWishlisted("3"))
	s.ToggleWishlist("3")
	assert.True(t, s.IsWishlisted("3"))
	s.ToggleWishlist("3")
	assert.False(t, s.IsWishlisted("3"))

	s.ToggleWishlist("3")
	s.ToggleWishlist("5")
	assert.ElementsMatch(t, []string{"3", "5"}, s.Wishlist())
}
