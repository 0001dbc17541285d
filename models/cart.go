package models

// CartItem is one line of the session cart. Identity is the
// (ProductID, Size, Color) tuple; Name, Price and ImageID are snapshots
// taken at add time and are not updated when the catalog changes.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageID   string  `json:"imageId"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
}

// SameIdentity reports whether two lines refer to the same cart identity.
func (i CartItem) SameIdentity(productID, size, color string) bool {
	return i.ProductID == productID && i.Size == size && i.Color == color
}
