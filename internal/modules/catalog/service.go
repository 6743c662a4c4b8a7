package catalog

import (
	"context"
	"strconv"
	"strings"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/logger"
	"hotelbooking/internal/pkg/money"
	"hotelbooking/internal/repository"

	"github.com/google/uuid"
)

// Service is the read side of the catalog plus the administrative room
// operations.
type Service struct {
	hotels      HotelRepository
	rooms       RoomRepository
	attractions AttractionRepository
	log         *logger.Logger
}

func NewService(hotels HotelRepository, rooms RoomRepository, attractions AttractionRepository, log *logger.Logger) *Service {
	return &Service{
		hotels:      hotels,
		rooms:       rooms,
		attractions: attractions,
		log:         log.With("component", "catalog"),
	}
}

/* ---------- HOTELS ---------- */

func (s *Service) ListHotels(ctx context.Context, limit int, after string) (*HotelPage, error) {
	if limit <= 0 {
		limit = defaultHotelPageSize
	}
	if limit > maxHotelPageSize {
		limit = maxHotelPageSize
	}

	hotels, next, err := s.hotels.List(ctx, limit, after)
	if err != nil {
		return nil, err
	}

	page := &HotelPage{Hotels: hotels}
	if next != "" {
		page.LastEvaluatedKey = &next
	}
	return page, nil
}

func (s *Service) GetHotel(ctx context.Context, id string) (*domain.Hotel, error) {
	h, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return h, nil
}

// SearchHotels parses raw query values. Blank values leave the bound open.
func (s *Service) SearchHotels(ctx context.Context, location, minPrice, maxPrice string) ([]domain.Hotel, error) {
	f := domain.HotelFilter{Location: location}

	if strings.TrimSpace(minPrice) != "" {
		d, err := money.Parse(minPrice)
		if err != nil {
			return nil, ErrInvalidFilter
		}
		f.MinPrice = &d
	}
	if strings.TrimSpace(maxPrice) != "" {
		d, err := money.Parse(maxPrice)
		if err != nil {
			return nil, ErrInvalidFilter
		}
		f.MaxPrice = &d
	}

	return s.hotels.Search(ctx, f)
}

/* ---------- ROOMS ---------- */

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	if req.Price.IsNegative() || *req.Total < 0 || *req.Available < 0 || *req.Available > *req.Total {
		return nil, ErrInvalidRoom
	}

	hotel, err := s.GetHotel(ctx, req.HotelID)
	if err != nil {
		return nil, err
	}

	room := &domain.Room{
		ID:           uuid.NewString(),
		HotelID:      hotel.ID,
		HotelName:    hotel.Name,
		RoomTypeName: strings.TrimSpace(req.RoomTypeName),
		Price:        req.Price.Truncate(money.Scale),
		Total:        *req.Total,
		Available:    *req.Available,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}

	s.log.Info("room type created", "room_type_id", room.ID, "hotel_id", room.HotelID)
	return room, nil
}

func (s *Service) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) ListRoomsByHotel(ctx context.Context, hotelID string) ([]domain.Room, error) {
	return s.rooms.ListByHotel(ctx, hotelID)
}

// UpdateAvailability sets the available count. Checkout never moves it.
func (s *Service) UpdateAvailability(ctx context.Context, id string, available int) (*domain.Room, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if available < 0 || available > room.Total {
		return nil, ErrInvalidAvailability
	}

	updated, err := s.rooms.UpdateAvailability(ctx, id, available)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return updated, nil
}

/* ---------- ATTRACTIONS ---------- */

func (s *Service) ListAttractions(ctx context.Context) ([]domain.Attraction, error) {
	return s.attractions.List(ctx)
}

func (s *Service) ListAttractionsByHotel(ctx context.Context, hotelID string) ([]domain.Attraction, error) {
	return s.attractions.ListByHotel(ctx, hotelID)
}

func (s *Service) SearchAttractions(ctx context.Context, hotelID, maxDistance string) ([]domain.Attraction, error) {
	var ceiling *float64
	if strings.TrimSpace(maxDistance) != "" {
		d, err := strconv.ParseFloat(strings.TrimSpace(maxDistance), 64)
		if err != nil || d < 0 {
			return nil, ErrInvalidFilter
		}
		ceiling = &d
	}
	return s.attractions.Search(ctx, strings.TrimSpace(hotelID), ceiling)
}
