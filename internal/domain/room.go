package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Room is a room type offered by a hotel. Available only moves through the
// administrative availability update.
type Room struct {
	ID           string          `json:"roomTypeId"`
	HotelID      string          `json:"hotelId"`
	HotelName    string          `json:"hotelName"`
	RoomTypeName string          `json:"roomTypeName"`
	Price        decimal.Decimal `json:"price"`
	Total        int             `json:"total"`
	Available    int             `json:"available"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
