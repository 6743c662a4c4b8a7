package booking

import (
	"context"

	"hotelbooking/internal/domain"
)

// BookingRepository defines the booking operations exposed to users
type BookingRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]domain.Booking, error)
	DeleteForUser(ctx context.Context, bookingID, userID string) error
}
