package store

import (
	"log"
	"sync"
	"time"

	"github.com/prithvi1320/StyleSphere/models"
)

// Lifecycle tracks whether the store has finished loading its snapshot.
// Callers must treat LifecycleUninitialized as "state not yet trustworthy":
// no operations, no auth redirects.
type Lifecycle int

const (
	LifecycleUninitialized Lifecycle = iota
	// LifecycleLoaded means a prior snapshot was parsed (individual keys may
	// still have fallen back to seed defaults).
	LifecycleLoaded
	// LifecycleSeedFallback means no usable snapshot existed and the store
	// is running on the deterministic seed dataset.
	LifecycleSeedFallback
)

// Store owns all storefront state: catalog, users, orders, the session cart
// and wishlist, the credential table and the active session. Every mutation
// goes through a Store method; each one validates fully before touching
// state and persists the whole snapshot after a successful change.
// Handlers call in concurrently, so a mutex serializes operations.
type Store struct {
	mu        sync.RWMutex
	snapshots SnapshotStore
	verifier  CredentialVerifier
	now       func() time.Time

	lifecycle     Lifecycle
	categories    []models.Category
	products      []models.Product
	users         []models.User
	orders        []models.Order
	cart          []models.CartItem
	wishlist      []string
	currentUserID string // "" means signed out
	credentials   map[string]string
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithVerifier swaps the credential verifier (tests, future hashing).
func WithVerifier(v CredentialVerifier) Option {
	return func(s *Store) { s.verifier = v }
}

// WithClock fixes the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an unloaded store bound to a snapshot backend. Call Load
// before using any other method.
func New(snapshots SnapshotStore, opts ...Option) *Store {
	s := &Store{
		snapshots:  snapshots,
		verifier:   PlaintextVerifier{},
		now:        time.Now,
		categories: seedCategories(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted snapshot, falling back to the seed dataset when
// it is absent or unusable, and marks the store ready. It reports the
// resulting lifecycle state.
func (s *Store) Load() Lifecycle {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := seedSnapshot()
	lifecycle := LifecycleSeedFallback
	if raw, err := s.snapshots.Load(); err == nil {
		if decoded, ok := decodeSnapshot(raw); ok {
			snap = decoded
			lifecycle = LifecycleLoaded
		}
	}

	s.products = snap.Products
	s.users = snap.Users
	s.orders = snap.Orders
	s.cart = snap.Cart
	s.wishlist = snap.Wishlist
	s.credentials = snap.Credentials
	s.currentUserID = ""
	if snap.CurrentUserID != nil {
		s.currentUserID = *snap.CurrentUserID
	}
	s.lifecycle = lifecycle
	return lifecycle
}

// Ready reports whether Load has resolved.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lifecycle != LifecycleUninitialized
}

// Lifecycle returns the load state.
func (s *Store) Lifecycle() Lifecycle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lifecycle
}

// persistLocked writes the full snapshot. Best-effort: a write failure is
// logged and the in-memory state stays authoritative for this session.
// Callers must hold the write lock.
func (s *Store) persistLocked() {
	snap := Snapshot{
		Products:    s.products,
		Users:       s.users,
		Orders:      s.orders,
		Cart:        s.cart,
		Wishlist:    s.wishlist,
		Credentials: s.credentials,
	}
	if s.currentUserID != "" {
		id := s.currentUserID
		snap.CurrentUserID = &id
	}
	data, err := marshalSnapshot(snap)
	if err != nil {
		log.Printf("❌ Failed to encode snapshot: %v", err)
		return
	}
	if err := s.snapshots.Save(data); err != nil {
		log.Printf("❌ Failed to persist snapshot: %v", err)
	}
}

// ---- Read accessors (all return copies; callers never see live slices) ----

// Categories returns the static category reference data.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category(nil), s.categories...)
}

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.products...)
}

// ProductByID looks a product up in the live catalog.
func (s *Store) ProductByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.productIndexLocked(id); i >= 0 {
		return s.products[i], true
	}
	return models.Product{}, false
}

func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order(nil), s.orders...)
}

// OrdersForUser returns the orders owned by userID, newest first.
func (s *Store) OrdersForUser(userID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func (s *Store) Cart() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CartItem(nil), s.cart...)
}

func (s *Store) Wishlist() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.wishlist...)
}

// CurrentUser resolves the active session, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUserLocked()
}

// IsAdmin reports whether the active session belongs to an admin.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAdminLocked()
}

// CartCount is the sum of quantities across all cart lines.
func (s *Store) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, item := range s.cart {
		count += item.Quantity
	}
	return count
}

// CartSubtotal sums current catalog price × quantity over the cart,
// money-rounded. Lines referencing a deleted product contribute 0.
func (s *Store) CartSubtotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartSubtotalLocked()
}

// ---- Locked helpers ----

func (s *Store) cartSubtotalLocked() float64 {
	sum := 0.0
	for _, item := range s.cart {
		if i := s.productIndexLocked(item.ProductID); i >= 0 {
			sum += s.products[i].Price * float64(item.Quantity)
		}
	}
	return round(sum)
}

func (s *Store) currentUserLocked() (models.User, bool) {
	if s.currentUserID == "" {
		return models.User{}, false
	}
	for _, u := range s.users {
		if u.ID == s.currentUserID {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) isAdminLocked() bool {
	u, ok := s.currentUserLocked()
	return ok && u.Role == models.RoleAdmin
}

func (s *Store) productIndexLocked(id string) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) formatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
