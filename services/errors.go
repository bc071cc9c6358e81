package services

import "errors"

// Business-rule rejections. All are expected, recovered at the call site and
// surfaced as 4xx responses; none are fatal.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTenantSuspended    = errors.New("restaurant is suspended")
	ErrNoTenant           = errors.New("no restaurant resolved")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrNotAdmin           = errors.New("user is not a restaurant admin")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrEmptyOrder         = errors.New("order has no items")
	ErrBadQuantity        = errors.New("quantity must be at least 1")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrCartConflict       = errors.New("cart is locked to another restaurant")
	ErrUnknownCustomer    = errors.New("customer not found in this restaurant")
)
