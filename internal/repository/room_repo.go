package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID           string          `gorm:"column:id;primaryKey;size:36"`
	HotelID      string          `gorm:"column:hotel_id;index;not null"`
	HotelName    string          `gorm:"column:hotel_name"`
	RoomTypeName string          `gorm:"column:room_type_name;not null"`
	Price        decimal.Decimal `gorm:"column:price;type:decimal(12,2);not null"`
	Total        int             `gorm:"column:total;not null"`
	Available    int             `gorm:"column:available;not null"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) domain.Room {
	return domain.Room{
		ID:           m.ID,
		HotelID:      m.HotelID,
		HotelName:    m.HotelName,
		RoomTypeName: m.RoomTypeName,
		Price:        m.Price,
		Total:        m.Total,
		Available:    m.Available,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	return roomModel{
		ID:           r.ID,
		HotelID:      r.HotelID,
		HotelName:    r.HotelName,
		RoomTypeName: r.RoomTypeName,
		Price:        r.Price,
		Total:        r.Total,
		Available:    r.Available,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*room = toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	var m roomModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	room := toDomainRoom(m)
	return &room, nil
}

func (r *RoomRepository) ListByHotel(ctx context.Context, hotelID string) ([]domain.Room, error) {
	var rows []roomModel
	if err := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("price ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	rooms := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		rooms = append(rooms, toDomainRoom(m))
	}
	return rooms, nil
}

func (r *RoomRepository) UpdateAvailability(ctx context.Context, id string, available int) (*domain.Room, error) {
	tx := r.db.WithContext(ctx).Model(&roomModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"available":  available,
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}
