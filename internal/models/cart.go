package models

// CartItem is one line in the cart. Quantity is >= 1 by construction;
// updates to zero or below remove the line instead.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// ShippingEstimate is the derived weight and cost for the current cart.
type ShippingEstimate struct {
	Weight float64 `json:"weight"` // kg
	Cost   float64 `json:"cost"`
}
