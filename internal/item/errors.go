package item

import "errors"

// Domain-specific errors for the item package.
var (
	ErrItemNotFound       = errors.New("item not found")
	ErrForbidden          = errors.New("user is not the owner of this item")
	ErrInvalidID          = errors.New("identifier must be a positive integer")
	ErrInvalidStatus      = errors.New("invalid item status")
	ErrItemNotAvailable   = errors.New("item is not available for reservation")
	ErrItemNotPurchasable = errors.New("item can no longer be purchased")
	ErrSelfReserve        = errors.New("owner cannot reserve their own item")
	ErrSelfPurchase       = errors.New("owner cannot buy their own item")
	ErrStatusConflict     = errors.New("item status changed concurrently")
)
