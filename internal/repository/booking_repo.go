package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID             string          `gorm:"column:id;primaryKey;size:36"`
	UserID         string          `gorm:"column:user_id;index;not null"`
	IdempotencyKey string          `gorm:"column:idempotency_key;uniqueIndex;not null"`
	HotelID        string          `gorm:"column:hotel_id"`
	HotelName      string          `gorm:"column:hotel_name"`
	RoomTypeID     string          `gorm:"column:room_type_id;not null"`
	RoomTypeName   string          `gorm:"column:room_type_name"`
	CheckInDate    string          `gorm:"column:check_in_date;not null"`
	CheckOutDate   string          `gorm:"column:check_out_date;not null"`
	Nights         int             `gorm:"column:nights;not null"`
	PricePerNight  decimal.Decimal `gorm:"column:price_per_night;type:decimal(12,2);not null"`
	TotalPrice     decimal.Decimal `gorm:"column:total_price;type:decimal(12,2);not null"`
	BookingStatus  string          `gorm:"column:booking_status;not null"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) domain.Booking {
	return domain.Booking{
		ID:             m.ID,
		UserID:         m.UserID,
		IdempotencyKey: m.IdempotencyKey,
		HotelID:        m.HotelID,
		HotelName:      m.HotelName,
		RoomTypeID:     m.RoomTypeID,
		RoomTypeName:   m.RoomTypeName,
		CheckInDate:    m.CheckInDate,
		CheckOutDate:   m.CheckOutDate,
		Nights:         m.Nights,
		PricePerNight:  m.PricePerNight,
		TotalPrice:     m.TotalPrice,
		BookingStatus:  domain.BookingStatus(m.BookingStatus),
		CreatedAt:      m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:             b.ID,
		UserID:         b.UserID,
		IdempotencyKey: b.IdempotencyKey,
		HotelID:        b.HotelID,
		HotelName:      b.HotelName,
		RoomTypeID:     b.RoomTypeID,
		RoomTypeName:   b.RoomTypeName,
		CheckInDate:    b.CheckInDate,
		CheckOutDate:   b.CheckOutDate,
		Nights:         b.Nights,
		PricePerNight:  b.PricePerNight,
		TotalPrice:     b.TotalPrice,
		BookingStatus:  string(b.BookingStatus),
		CreatedAt:      b.CreatedAt,
	}
}

// Create inserts a booking. If a booking with the same idempotency key
// already exists, b is replaced with the stored one and no row is written.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	err := r.db.WithContext(ctx).Create(&m).Error
	if err == nil {
		*b = toDomainBooking(m)
		return nil
	}
	if !isUniqueViolation(err) || b.IdempotencyKey == "" {
		return err
	}

	var existing bookingModel
	if findErr := r.db.WithContext(ctx).
		Where("idempotency_key = ?", b.IdempotencyKey).
		First(&existing).Error; findErr != nil {
		return err
	}
	*b = toDomainBooking(existing)
	return nil
}

func (r *BookingRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Booking, error) {
	var rows []bookingModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainBooking(m))
	}
	return out, nil
}

// DeleteForUser removes a booking only when it belongs to userID.
func (r *BookingRepository) DeleteForUser(ctx context.Context, bookingID, userID string) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", bookingID, userID).
		Delete(&bookingModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
