package catalog

import (
	"hotelbooking/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	defaultHotelPageSize = 10
	maxHotelPageSize     = 100
)

// ---------- HOTELS ----------

type HotelPage struct {
	Hotels           []domain.Hotel `json:"hotels"`
	LastEvaluatedKey *string        `json:"lastEvaluatedKey"`
}

// ---------- ROOMS ----------

type CreateRoomRequest struct {
	HotelID      string           `json:"hotelId" binding:"required"`
	RoomTypeName string           `json:"roomTypeName" binding:"required"`
	Price        *decimal.Decimal `json:"price" binding:"required"`
	Total        *int             `json:"total" binding:"required"`
	Available    *int             `json:"available" binding:"required"`
}

type UpdateAvailabilityRequest struct {
	Available *int `json:"available" binding:"required"`
}
