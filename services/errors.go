package services

import "errors"

// Error kinds surfaced to callers. Anything else bubbling up from the
// repositories is a storage failure and maps to HTTP 500.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrNotFound           = errors.New("not found")
	ErrRestaurantConflict = errors.New("cart can only contain items from one restaurant")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrUnavailable        = errors.New("food item not available")
)
