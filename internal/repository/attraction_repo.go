package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type AttractionRepository struct {
	db *gorm.DB
}

func NewAttractionRepository(db *gorm.DB) *AttractionRepository {
	return &AttractionRepository{db: db}
}

type attractionModel struct {
	ID          string    `gorm:"column:id;primaryKey;size:36"`
	HotelID     string    `gorm:"column:hotel_id;index;not null"`
	Name        string    `gorm:"column:name;not null"`
	Description string    `gorm:"column:description;type:text"`
	Distance    float64   `gorm:"column:distance"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (attractionModel) TableName() string { return "attractions" }

func toDomainAttraction(m attractionModel) domain.Attraction {
	return domain.Attraction{
		ID:          m.ID,
		HotelID:     m.HotelID,
		Name:        m.Name,
		Description: m.Description,
		Distance:    m.Distance,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *AttractionRepository) Create(ctx context.Context, a *domain.Attraction) error {
	m := attractionModel{
		ID:          a.ID,
		HotelID:     a.HotelID,
		Name:        a.Name,
		Description: a.Description,
		Distance:    a.Distance,
		CreatedAt:   a.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*a = toDomainAttraction(m)
	return nil
}

func (r *AttractionRepository) List(ctx context.Context) ([]domain.Attraction, error) {
	return r.find(r.db.WithContext(ctx).Order("name ASC"))
}

func (r *AttractionRepository) ListByHotel(ctx context.Context, hotelID string) ([]domain.Attraction, error) {
	return r.find(r.db.WithContext(ctx).Where("hotel_id = ?", hotelID).Order("distance ASC"))
}

// Search filters by hotel and by a distance ceiling. Empty or nil arguments
// are ignored.
func (r *AttractionRepository) Search(ctx context.Context, hotelID string, maxDistance *float64) ([]domain.Attraction, error) {
	q := r.db.WithContext(ctx).Order("distance ASC")
	if hotelID != "" {
		q = q.Where("hotel_id = ?", hotelID)
	}
	if maxDistance != nil {
		q = q.Where("distance <= ?", *maxDistance)
	}
	return r.find(q)
}

func (r *AttractionRepository) find(q *gorm.DB) ([]domain.Attraction, error) {
	var rows []attractionModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Attraction, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainAttraction(m))
	}
	return out, nil
}
