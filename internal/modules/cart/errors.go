package cart

import "errors"

var (
	ErrRoomNotFound     = errors.New("room type not found")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidPrice     = errors.New("invalid room price")
	ErrCartNotFound     = errors.New("cart not found")
	ErrItemNotFound     = errors.New("item not found in cart")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrCheckoutFailed   = errors.New("checkout failed")
	ErrCartConflict     = errors.New("cart was modified concurrently")
)
