package booking

type DeleteBookingRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
}
