package cart

import (
	"context"
	"errors"
	"fmt"

	"hotelbooking/internal/cache"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/logger"
	"hotelbooking/internal/pkg/money"
	"hotelbooking/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// Service owns the cart aggregate and the checkout that retires it.
type Service struct {
	rooms     RoomReader
	carts     CartStore
	bookings  BookingWriter
	cache     cache.CartCache
	publisher bookingPublisher
	log       *logger.Logger

	reads singleflight.Group
}

func NewService(
	rooms RoomReader,
	carts CartStore,
	bookings BookingWriter,
	cartCache cache.CartCache,
	publisher bookingPublisher,
	log *logger.Logger,
) *Service {
	return &Service{
		rooms:     rooms,
		carts:     carts,
		bookings:  bookings,
		cache:     cartCache,
		publisher: publisher,
		log:       log.With("component", "cart"),
	}
}

// GetCart returns the user's cart, or nil when the user has none.
func (s *Service) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	if c, err := s.cache.Get(ctx, userID); err == nil {
		return c, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.log.Warn("cart cache read failed", "user_id", userID, "error", err)
	}

	v, err, _ := s.reads.Do(userID, func() (any, error) {
		// generation must be read before the load, never after
		gen, genErr := s.cache.Generation(ctx, userID)

		c, err := s.carts.GetByUserID(ctx, userID)
		if err != nil {
			if repository.IsNotFound(err) {
				return (*domain.Cart)(nil), nil
			}
			return nil, err
		}
		if genErr != nil {
			s.log.Warn("cart cache generation read failed", "user_id", userID, "error", genErr)
			return c, nil
		}

		switch err := s.cache.Set(ctx, userID, gen, c); {
		case errors.Is(err, cache.ErrStaleGeneration):
			s.log.Debug("cart changed while loading, not cached", "user_id", userID)
		case err != nil:
			s.log.Warn("cart cache write failed", "user_id", userID, "error", err)
		}
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Cart), nil
}

func (s *Service) AddItem(ctx context.Context, userID string, req AddItemRequest) (*domain.Cart, error) {
	room, err := s.rooms.GetByID(ctx, req.RoomTypeID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	nights, err := money.Nights(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	if room.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	c, err := s.loadOrNew(ctx, userID)
	if err != nil {
		return nil, err
	}

	item := domain.CartItem{
		ItemKey:       uuid.NewString(),
		RoomTypeID:    room.ID,
		RoomTypeName:  room.RoomTypeName,
		HotelID:       room.HotelID,
		HotelName:     room.HotelName,
		PricePerNight: room.Price,
		CheckInDate:   req.CheckInDate,
		CheckOutDate:  req.CheckOutDate,
		Nights:        nights,
		TotalPrice:    money.LineTotal(room.Price, nights),
	}
	c.Items = append(c.Items, item)
	c.TotalPrice = c.TotalPrice.Add(item.TotalPrice)

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) RemoveItem(ctx context.Context, userID, itemKey string) (*domain.Cart, error) {
	c, err := s.carts.GetByUserID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	i, ok := c.FindItem(itemKey)
	if !ok {
		return nil, ErrItemNotFound
	}

	removed := c.Items[i]
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	c.TotalPrice = c.TotalPrice.Sub(removed.TotalPrice)

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) loadOrNew(ctx context.Context, userID string) (*domain.Cart, error) {
	c, err := s.carts.GetByUserID(ctx, userID)
	if err == nil {
		return c, nil
	}
	if !repository.IsNotFound(err) {
		return nil, err
	}
	return &domain.Cart{
		ID:         uuid.NewString(),
		UserID:     userID,
		Items:      []domain.CartItem{},
		TotalPrice: decimal.Zero,
	}, nil
}

func (s *Service) save(ctx context.Context, c *domain.Cart) error {
	if err := s.carts.Save(ctx, c); err != nil {
		if errors.Is(err, repository.ErrRevisionConflict) {
			return ErrCartConflict
		}
		return err
	}
	s.invalidate(ctx, c.UserID)
	return nil
}

func (s *Service) invalidate(ctx context.Context, userID string) {
	if err := s.cache.Delete(ctx, userID); err != nil {
		s.log.Warn("cart cache invalidation failed", "user_id", userID, "error", err)
	}
}
