package models

import "time"

// Order status values. "deleted" is terminal and means hidden from the
// dashboard, the record itself is never removed from storage.
const (
	StatusReceived  = "received"
	StatusPreparing = "preparing"
	StatusDelivered = "delivered"
	StatusDeleted   = "deleted"
)

// Order is the full record of one table-side purchase. JSON keys follow the
// wire contract consumed by the customer and manager pages.
type Order struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customerName"`
	TableNumber   string      `json:"tableNumber"`
	Language      string      `json:"language"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	PlatformFee   float64     `json:"platformFee"`
	Total         float64     `json:"total"`
	PaymentStatus bool        `json:"paymentStatus"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	DeliveredAt   *time.Time  `json:"deliveredAt,omitempty"`
}

// IsValidStatus reports whether s is one of the four known status values.
func IsValidStatus(s string) bool {
	switch s {
	case StatusReceived, StatusPreparing, StatusDelivered, StatusDeleted:
		return true
	}
	return false
}
