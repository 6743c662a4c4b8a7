package booking

import (
	"errors"
	"net/http"

	"hotelbooking/internal/middleware"
	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
	rg.DELETE("/bookings", h.DeleteBooking)
}

// ListBookings
// @Summary  List my bookings
// @Tags     Bookings
// @Security BearerAuth
// @Success  200 {array} domain.Booking
// @Router   /bookings [GET]
func (h *Handler) ListBookings(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	bookings, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Raw(c, http.StatusOK, bookings)
}

// DeleteBooking
// @Summary  Delete one of my bookings
// @Tags     Bookings
// @Security BearerAuth
// @Param    request body DeleteBookingRequest true "booking id"
// @Success  200 {object} map[string]string
// @Failure  404 {object} map[string]interface{} "booking not found"
// @Router   /bookings [DELETE]
func (h *Handler) DeleteBooking(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req DeleteBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "bookingId is required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, req.BookingID); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete booking")
		return
	}
	response.Raw(c, http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
