package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderControllers "github.com/prithvi1320/StyleSphere/controllers/order"
	"github.com/prithvi1320/StyleSphere/store"
)

type stubGenerator struct{}

func (stubGenerator) GenerateDescription(_ context.Context, keywords []string) (string, error) {
	return "Generated copy for " + strings.Join(keywords, ", "), nil
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	s := store.New(store.FileSnapshotStore{Path: filepath.Join(t.TempDir(), "state.json")})
	s.Load()

	r := gin.New()
	SetupRoutes(r, s, stubGenerator{}, orderControllers.NewHub())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	return doc
}

func loginFor(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterAndProfileFlow(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"name": "Eve Turner", "email": "eve@x.com", "password": "topsecret",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	doc := decode(t, w)
	token, _ := doc["token"].(string)
	require.NotEmpty(t, token)

	// The token opens /user routes; no token does not.
	w = doJSON(t, r, http.MethodGet, "/user/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "eve@x.com", decode(t, w)["email"])

	w = doJSON(t, r, http.MethodGet, "/user/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Duplicate email registers as a conflict.
	w = doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"name": "Eve 2", "email": "EVE@x.com", "password": "whatever",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{"email": "bob@example.com", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password.", decode(t, w)["error"])
}

func TestCartAndCheckoutFlow(t *testing.T) {
	r := setupTestRouter(t)
	token := loginFor(t, r, "bob@example.com", "password123")

	w := doJSON(t, r, http.MethodPost, "/user/cart/", token, gin.H{
		"product_id": "1", "size": "M", "color": "Black", "quantity": 2,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	doc := decode(t, w)
	assert.Equal(t, float64(2), doc["count"])

	// Checkout with incomplete shipping fails and keeps the cart.
	w = doJSON(t, r, http.MethodPost, "/user/orders", token, gin.H{
		"full_name": "Bob Smith", "address": "", "city": "Springfield", "zip": "12345",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/user/orders", token, gin.H{
		"full_name": "Bob Smith", "address": "1 Main St", "city": "Springfield", "zip": "12345",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	orderID, _ := decode(t, w)["orderId"].(string)
	assert.True(t, strings.HasPrefix(orderID, "ORD"))

	w = doJSON(t, r, http.MethodGet, "/user/cart/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["count"])

	w = doJSON(t, r, http.MethodGet, "/user/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.NotEmpty(t, orders)
	assert.Equal(t, orderID, orders[0]["id"])
}

func TestAdminGate(t *testing.T) {
	r := setupTestRouter(t)

	draft := gin.H{"name": "Bucket Hat", "description": "Cotton twill bucket hat.", "price": 19.5, "category": "accessories"}

	customerToken := loginFor(t, r, "bob@example.com", "password123")
	w := doJSON(t, r, http.MethodPost, "/admin/products", customerToken, draft)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Admin access required.", decode(t, w)["error"])

	adminToken := loginFor(t, r, "alice@example.com", "admin123")
	w = doJSON(t, r, http.MethodPost, "/admin/products", adminToken, draft)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, "9", created["id"])

	w = doJSON(t, r, http.MethodDelete, "/admin/products/9", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/admin/products/9", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	dashboard := decode(t, w)
	assert.Equal(t, float64(3), dashboard["orderCount"])
	assert.Equal(t, float64(4), dashboard["userCount"])
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	r := setupTestRouter(t)
	adminToken := loginFor(t, r, "alice@example.com", "admin123")

	w := doJSON(t, r, http.MethodPut, "/admin/orders/ORD482113/status", adminToken, gin.H{"status": "Cancelled"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Cancelled", decode(t, w)["status"])

	w = doJSON(t, r, http.MethodPut, "/admin/orders/ORD000000/status", adminToken, gin.H{"status": "Shipped"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPut, "/admin/orders/ORD482113/status", adminToken, gin.H{"status": "Lost"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAIDescriptionEndpoint(t *testing.T) {
	r := setupTestRouter(t)
	adminToken := loginFor(t, r, "alice@example.com", "admin123")

	w := doJSON(t, r, http.MethodPost, "/admin/ai/description", adminToken, gin.H{"keywords": " soft , cotton ,, "})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Generated copy for soft, cotton", decode(t, w)["description"])

	w = doJSON(t, r, http.MethodPost, "/admin/ai/description", adminToken, gin.H{"keywords": " , "})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please provide some keywords.", decode(t, w)["error"])
}

func TestWishlistEndpoints(t *testing.T) {
	r := setupTestRouter(t)
	token := loginFor(t, r, "bob@example.com", "password123")

	w := doJSON(t, r, http.MethodPost, "/user/wishlist/3", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["wishlisted"])

	w = doJSON(t, r, http.MethodPost, "/user/wishlist/3", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["wishlisted"])
}
