package models

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"   // Order placed, awaiting shipment
	OrderStatusShipped   OrderStatus = "Shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "Delivered" // Customer received the items
	OrderStatusCancelled OrderStatus = "Cancelled" // Cancelled by the shop
)

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is immutable after creation except for Status. UserName and
// ItemCount are point-in-time snapshots, not live references.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	UserName  string      `json:"userName"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	Date      string      `json:"date"` // YYYY-MM-DD
	ItemCount int         `json:"itemCount"`
}
