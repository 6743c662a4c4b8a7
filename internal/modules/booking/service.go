package booking

import (
	"context"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/logger"
	"hotelbooking/internal/repository"
)

type Service struct {
	bookings BookingRepository
	log      *logger.Logger
}

func NewService(bookings BookingRepository, log *logger.Logger) *Service {
	return &Service{bookings: bookings, log: log.With("component", "booking")}
}

// List returns the user's bookings, newest first. Never nil.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Booking, error) {
	out, err := s.bookings.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Booking{}
	}
	return out, nil
}

// Delete removes one of the user's bookings. Bookings owned by someone else
// are reported as missing.
func (s *Service) Delete(ctx context.Context, userID, bookingID string) error {
	if err := s.bookings.DeleteForUser(ctx, bookingID, userID); err != nil {
		if repository.IsNotFound(err) {
			return ErrBookingNotFound
		}
		return err
	}
	s.log.Info("booking deleted", "user_id", userID, "booking_id", bookingID)
	return nil
}
