package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
)

// Booking is created once per cart line item at checkout and never edited.
type Booking struct {
	ID             string          `json:"bookingId"`
	UserID         string          `json:"userId"`
	IdempotencyKey string          `json:"-"`
	HotelID        string          `json:"hotelId"`
	HotelName      string          `json:"hotelName"`
	RoomTypeID     string          `json:"roomTypeId"`
	RoomTypeName   string          `json:"roomTypeName"`
	CheckInDate    string          `json:"checkInDate"`
	CheckOutDate   string          `json:"checkOutDate"`
	Nights         int             `json:"nights"`
	PricePerNight  decimal.Decimal `json:"pricePerNight"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	BookingStatus  BookingStatus   `json:"bookingStatus"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// BookingIdempotencyKey ties a booking to the cart line item it came from.
func BookingIdempotencyKey(cartID, itemKey string) string {
	return cartID + ":" + itemKey
}
