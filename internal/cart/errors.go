package cart

import "errors"

var (
	// ErrUnknownProduct is returned for operations on product ids not in
	// the catalog or not in the cart.
	ErrUnknownProduct = errors.New("cart: unknown product")
	// ErrInvalidQuantity is returned when adding less than one unit.
	ErrInvalidQuantity = errors.New("cart: quantity must be at least 1")
)
