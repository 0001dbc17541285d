package store

import (
	"encoding/json"
	"os"

	"github.com/prithvi1320/StyleSphere/models"
)

// Snapshot is the complete state blob persisted as a single unit.
// Field names are camelCase so blobs written by the web client
// round-trip unchanged.
type Snapshot struct {
	Products      []models.Product  `json:"products"`
	Users         []models.User     `json:"users"`
	Orders        []models.Order    `json:"orders"`
	Cart          []models.CartItem `json:"cart"`
	Wishlist      []string          `json:"wishlist"`
	CurrentUserID *string           `json:"currentUserId"`
	Credentials   map[string]string `json:"credentials"`
}

// SnapshotStore reads and writes the state blob as one opaque document.
type SnapshotStore interface {
	// Load returns the raw blob, or an error (fs.ErrNotExist when nothing
	// has been saved yet).
	Load() ([]byte, error)
	Save(data []byte) error
}

// FileSnapshotStore keeps the snapshot in a single JSON file on disk.
type FileSnapshotStore struct {
	Path string
}

func (f FileSnapshotStore) Load() ([]byte, error) {
	return os.ReadFile(f.Path)
}

func (f FileSnapshotStore) Save(data []byte) error {
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.Path)
}

func marshalSnapshot(snap Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

func seedSnapshot() Snapshot {
	return Snapshot{
		Products:    seedProducts(),
		Users:       seedUsers(),
		Orders:      seedOrders(),
		Cart:        []models.CartItem{},
		Wishlist:    []string{},
		Credentials: seedCredentials(),
	}
}

// decodeSnapshot parses raw tolerantly. A key that is missing or holds a
// wrong-typed value falls back to the seed default for that key only; a blob
// that is not a JSON object at all falls back to the full seed. The second
// return value is false when the full seed had to be used.
func decodeSnapshot(raw []byte) (Snapshot, bool) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil || keys == nil {
		return seedSnapshot(), false
	}

	snap := seedSnapshot()

	if v, ok := keys["products"]; ok {
		var products []models.Product
		if err := json.Unmarshal(v, &products); err == nil && products != nil {
			snap.Products = products
		}
	}
	if v, ok := keys["users"]; ok {
		var users []models.User
		if err := json.Unmarshal(v, &users); err == nil && users != nil {
			snap.Users = users
		}
	}
	if v, ok := keys["orders"]; ok {
		var orders []models.Order
		if err := json.Unmarshal(v, &orders); err == nil && orders != nil {
			snap.Orders = orders
		}
	}
	if v, ok := keys["cart"]; ok {
		var cart []models.CartItem
		if err := json.Unmarshal(v, &cart); err == nil && cart != nil {
			snap.Cart = cart
		}
	}
	if v, ok := keys["wishlist"]; ok {
		var wishlist []string
		if err := json.Unmarshal(v, &wishlist); err == nil && wishlist != nil {
			snap.Wishlist = wishlist
		}
	}
	if v, ok := keys["currentUserId"]; ok {
		var id string
		if err := json.Unmarshal(v, &id); err == nil && id != "" {
			snap.CurrentUserID = &id
		}
	}
	if v, ok := keys["credentials"]; ok {
		var creds map[string]string
		if err := json.Unmarshal(v, &creds); err == nil && creds != nil {
			snap.Credentials = creds
		}
	}

	return snap, true
}
