package cart

import "hotelbooking/internal/domain"

type AddItemRequest struct {
	RoomTypeID   string `json:"roomTypeId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

type RemoveItemRequest struct {
	ItemKey string `json:"itemKey" binding:"required"`
}

type CartResponse struct {
	Message string       `json:"message"`
	Cart    *domain.Cart `json:"cart"`
}

type CheckoutResponse struct {
	Message  string           `json:"message"`
	Bookings []domain.Booking `json:"bookings"`
}
