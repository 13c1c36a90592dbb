package models

// OrderItem is one cart line. Items are immutable once the order is created.
type OrderItem struct {
	ItemID    string  `json:"itemId,omitempty"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"qty"`
}

// LineTotal -> unit price times quantity.
func (i OrderItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
