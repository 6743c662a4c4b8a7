package catalog

import "errors"

var (
	ErrHotelNotFound       = errors.New("hotel not found")
	ErrRoomNotFound        = errors.New("room type not found")
	ErrInvalidRoom         = errors.New("invalid room type")
	ErrInvalidAvailability = errors.New("available must be between 0 and total")
	ErrInvalidFilter       = errors.New("invalid search filter")
)
