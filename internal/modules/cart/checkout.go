package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Checkout turns every line item into a confirmed booking and then deletes
// the cart. If any booking write fails the cart is left untouched; a retry
// reuses the same idempotency keys, so bookings already written are returned
// rather than created twice.
func (s *Service) Checkout(ctx context.Context, userID string) ([]domain.Booking, error) {
	c, err := s.carts.GetByUserID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	now := time.Now()
	bookings := make([]domain.Booking, len(c.Items))

	g, gctx := errgroup.WithContext(ctx)
	for i, item := range c.Items {
		bookings[i] = bookingFromItem(c, item, now)
		b := &bookings[i]
		g.Go(func() error {
			if err := s.bookings.Create(gctx, b); err != nil {
				return fmt.Errorf("item %s: %w", item.ItemKey, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("checkout booking write failed", "user_id", userID, "cart_id", c.ID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrCheckoutFailed, err)
	}

	if err := s.carts.Delete(ctx, c.ID, c.Revision); err != nil {
		switch {
		case errors.Is(err, repository.ErrRevisionConflict):
			return nil, ErrCartConflict
		case repository.IsNotFound(err):
			// a concurrent checkout of the same cart already retired it
		default:
			return nil, err
		}
	}
	s.invalidate(ctx, userID)

	s.log.Info("checkout completed", "user_id", userID, "cart_id", c.ID, "bookings", len(bookings), "total", c.TotalPrice.StringFixed(2))

	if err := s.publisher.PublishBookingsConfirmed(ctx, bookings); err != nil {
		s.log.Warn("booking events not published", "user_id", userID, "error", err)
	}
	return bookings, nil
}

func bookingFromItem(c *domain.Cart, item domain.CartItem, now time.Time) domain.Booking {
	return domain.Booking{
		ID:             uuid.NewString(),
		UserID:         c.UserID,
		IdempotencyKey: domain.BookingIdempotencyKey(c.ID, item.ItemKey),
		HotelID:        item.HotelID,
		HotelName:      item.HotelName,
		RoomTypeID:     item.RoomTypeID,
		RoomTypeName:   item.RoomTypeName,
		CheckInDate:    item.CheckInDate,
		CheckOutDate:   item.CheckOutDate,
		Nights:         item.Nights,
		PricePerNight:  item.PricePerNight,
		TotalPrice:     item.TotalPrice,
		BookingStatus:  domain.BookingConfirmed,
		CreatedAt:      now,
	}
}
