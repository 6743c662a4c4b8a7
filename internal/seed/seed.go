// Package seed loads a YAML hotel catalog into the store and derives the
// per-hotel room types from each hotel's rating.
package seed

import (
	"context"
	"fmt"
	"io"
	"strings"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/logger"
	"hotelbooking/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const roomsPerType = 10

type Catalog struct {
	Hotels []HotelEntry `yaml:"hotels"`
}

type HotelEntry struct {
	Code        string            `yaml:"code"`
	Name        string            `yaml:"name"`
	City        string            `yaml:"city"`
	Country     string            `yaml:"country"`
	Address     string            `yaml:"address"`
	Rating      string            `yaml:"rating"`
	Description string            `yaml:"description"`
	Facilities  string            `yaml:"facilities"`
	Phone       string            `yaml:"phone"`
	Website     string            `yaml:"website"`
	Attractions []AttractionEntry `yaml:"attractions"`
}

type AttractionEntry struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Distance    float64 `yaml:"distance"`
}

// RoomType is a template applied to every seeded hotel.
type RoomType struct {
	Name       string
	Multiplier decimal.Decimal
}

var RoomTypes = []RoomType{
	{Name: "Single Room", Multiplier: decimal.NewFromInt(1)},
	{Name: "Deluxe Room", Multiplier: decimal.RequireFromString("1.3")},
	{Name: "Suite Room", Multiplier: decimal.NewFromInt(2)},
}

// Load decodes a catalog and rejects unknown keys.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for i, h := range c.Hotels {
		if strings.TrimSpace(h.Name) == "" {
			return nil, fmt.Errorf("hotel #%d: name is required", i+1)
		}
	}
	return &c, nil
}

// PriceForRating is rating*100-1 per night. Unknown or missing ratings are
// priced as 99 and FiveStar counts as 6.
func PriceForRating(r domain.HotelRating) decimal.Decimal {
	var stars int64
	switch r {
	case domain.RatingTwoStar:
		stars = 2
	case domain.RatingThreeStar:
		stars = 3
	case domain.RatingFourStar:
		stars = 4
	case domain.RatingFiveStar:
		stars = 6
	}
	if stars == 0 {
		return decimal.NewFromInt(99)
	}
	return decimal.NewFromInt(stars*100 - 1)
}

type hotelWriter interface {
	Create(ctx context.Context, h *domain.Hotel) error
}

type roomWriter interface {
	Create(ctx context.Context, room *domain.Room) error
}

type attractionWriter interface {
	Create(ctx context.Context, a *domain.Attraction) error
}

type Seeder struct {
	hotels      hotelWriter
	rooms       roomWriter
	attractions attractionWriter
	log         *logger.Logger
}

func NewSeeder(hotels hotelWriter, rooms roomWriter, attractions attractionWriter, log *logger.Logger) *Seeder {
	return &Seeder{hotels: hotels, rooms: rooms, attractions: attractions, log: log.With("component", "seed")}
}

type Stats struct {
	Hotels      int
	Rooms       int
	Attractions int
}

func (s *Seeder) Run(ctx context.Context, c *Catalog) (Stats, error) {
	var st Stats
	for _, entry := range c.Hotels {
		h := toHotel(entry)
		if err := s.hotels.Create(ctx, h); err != nil {
			return st, fmt.Errorf("create hotel %q: %w", entry.Name, err)
		}
		st.Hotels++

		for _, rt := range RoomTypes {
			room := &domain.Room{
				ID:           uuid.NewString(),
				HotelID:      h.ID,
				HotelName:    h.Name,
				RoomTypeName: rt.Name,
				Price:        h.PricePerNight.Mul(rt.Multiplier).Truncate(money.Scale),
				Total:        roomsPerType,
				Available:    roomsPerType,
			}
			if err := s.rooms.Create(ctx, room); err != nil {
				return st, fmt.Errorf("create room %q for %q: %w", rt.Name, h.Name, err)
			}
			st.Rooms++
		}

		for _, a := range entry.Attractions {
			attraction := &domain.Attraction{
				ID:          uuid.NewString(),
				HotelID:     h.ID,
				Name:        a.Name,
				Description: a.Description,
				Distance:    a.Distance,
			}
			if err := s.attractions.Create(ctx, attraction); err != nil {
				return st, fmt.Errorf("create attraction %q: %w", a.Name, err)
			}
			st.Attractions++
		}

		s.log.Debug("hotel seeded", "hotel_id", h.ID, "name", h.Name, "price", money.Format(h.PricePerNight))
	}
	return st, nil
}

func toHotel(e HotelEntry) *domain.Hotel {
	rating := domain.HotelRating(strings.TrimSpace(e.Rating))
	location := strings.Trim(strings.Join([]string{strings.TrimSpace(e.City), strings.TrimSpace(e.Country)}, ", "), ", ")
	return &domain.Hotel{
		ID:            uuid.NewString(),
		HotelCode:     e.Code,
		Name:          strings.TrimSpace(e.Name),
		CityName:      e.City,
		CountryName:   e.Country,
		Location:      location,
		Address:       e.Address,
		Rating:        rating,
		PricePerNight: PriceForRating(rating),
		Description:   e.Description,
		Facilities:    e.Facilities,
		PhoneNumber:   e.Phone,
		WebsiteURL:    e.Website,
	}
}
