package catalog

import (
	"context"

	"hotelbooking/internal/domain"
)

type HotelRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Hotel, error)
	List(ctx context.Context, limit int, after string) ([]domain.Hotel, string, error)
	Search(ctx context.Context, f domain.HotelFilter) ([]domain.Hotel, error)
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID string) ([]domain.Room, error)
	UpdateAvailability(ctx context.Context, id string, available int) (*domain.Room, error)
}

type AttractionRepository interface {
	List(ctx context.Context) ([]domain.Attraction, error)
	ListByHotel(ctx context.Context, hotelID string) ([]domain.Attraction, error)
	Search(ctx context.Context, hotelID string, maxDistance *float64) ([]domain.Attraction, error)
}
