package repository

import (
	"context"
	"strings"
	"time"

	"hotelbooking/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

type hotelModel struct {
	ID            string          `gorm:"column:id;primaryKey;size:36"`
	HotelCode     string          `gorm:"column:hotel_code;index"`
	Name          string          `gorm:"column:name;not null"`
	CityName      string          `gorm:"column:city_name"`
	CountryName   string          `gorm:"column:country_name"`
	Location      string          `gorm:"column:location"`
	Address       string          `gorm:"column:address"`
	Rating        string          `gorm:"column:rating"`
	PricePerNight decimal.Decimal `gorm:"column:price_per_night;type:decimal(12,2);not null"`
	Description   string          `gorm:"column:description;type:text"`
	Facilities    string          `gorm:"column:facilities;type:text"`
	PhoneNumber   string          `gorm:"column:phone_number"`
	WebsiteURL    string          `gorm:"column:website_url"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
}

func (hotelModel) TableName() string { return "hotels" }

func toDomainHotel(m hotelModel) domain.Hotel {
	return domain.Hotel{
		ID:            m.ID,
		HotelCode:     m.HotelCode,
		Name:          m.Name,
		CityName:      m.CityName,
		CountryName:   m.CountryName,
		Location:      m.Location,
		Address:       m.Address,
		Rating:        domain.HotelRating(m.Rating),
		PricePerNight: m.PricePerNight,
		Description:   m.Description,
		Facilities:    m.Facilities,
		PhoneNumber:   m.PhoneNumber,
		WebsiteURL:    m.WebsiteURL,
		CreatedAt:     m.CreatedAt,
	}
}

func toHotelModel(h *domain.Hotel) hotelModel {
	return hotelModel{
		ID:            h.ID,
		HotelCode:     h.HotelCode,
		Name:          h.Name,
		CityName:      h.CityName,
		CountryName:   h.CountryName,
		Location:      h.Location,
		Address:       h.Address,
		Rating:        string(h.Rating),
		PricePerNight: h.PricePerNight,
		Description:   h.Description,
		Facilities:    h.Facilities,
		PhoneNumber:   h.PhoneNumber,
		WebsiteURL:    h.WebsiteURL,
		CreatedAt:     h.CreatedAt,
	}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	m := toHotelModel(h)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*h = toDomainHotel(m)
	return nil
}

func (r *HotelRepository) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	var m hotelModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	h := toDomainHotel(m)
	return &h, nil
}

// List pages through hotels ordered by id. next is the id to pass as after
// for the following page, empty when there are no more rows.
func (r *HotelRepository) List(ctx context.Context, limit int, after string) ([]domain.Hotel, string, error) {
	q := r.db.WithContext(ctx).Order("id ASC").Limit(limit + 1)
	if after != "" {
		q = q.Where("id > ?", after)
	}

	var rows []hotelModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, "", err
	}

	next := ""
	if len(rows) > limit {
		rows = rows[:limit]
		next = rows[len(rows)-1].ID
	}

	hotels := make([]domain.Hotel, 0, len(rows))
	for _, m := range rows {
		hotels = append(hotels, toDomainHotel(m))
	}
	return hotels, next, nil
}

func (r *HotelRepository) Search(ctx context.Context, f domain.HotelFilter) ([]domain.Hotel, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if loc := strings.TrimSpace(f.Location); loc != "" {
		q = q.Where(`LOWER(location) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(loc))+"%")
	}
	if f.MinPrice != nil {
		q = q.Where("price_per_night >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price_per_night <= ?", *f.MaxPrice)
	}

	var rows []hotelModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	hotels := make([]domain.Hotel, 0, len(rows))
	for _, m := range rows {
		hotels = append(hotels, toDomainHotel(m))
	}
	return hotels, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// escapeLike makes s match literally inside a LIKE pattern using '\' as the
// escape character.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
