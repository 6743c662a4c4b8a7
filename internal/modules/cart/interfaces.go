package cart

import (
	"context"

	"hotelbooking/internal/domain"
)

// RoomReader resolves the room type a line item is priced from
type RoomReader interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// CartStore persists whole carts under a revision guard
type CartStore interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Cart, error)
	Save(ctx context.Context, c *domain.Cart) error
	Delete(ctx context.Context, cartID string, revision int64) error
}

type BookingWriter interface {
	Create(ctx context.Context, b *domain.Booking) error
}

type bookingPublisher interface {
	PublishBookingsConfirmed(ctx context.Context, bookings []domain.Booking) error
}
