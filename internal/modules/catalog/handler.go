package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the public catalog routes. adminOnly guards the
// room type writes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	hotels := r.Group("/hotels")
	{
		hotels.GET("", h.ListHotels)
		hotels.GET("/search", h.SearchHotels)
		hotels.GET("/:id", h.GetHotel)
	}

	rooms := r.Group("/rooms")
	{
		rooms.GET("/hotel", h.ListRoomsByHotel)
		rooms.GET("/rooms/:roomTypeId", h.GetRoom)
		rooms.POST("/rooms", adminOnly, h.CreateRoom)
		rooms.PATCH("/rooms/:roomTypeId/availability", adminOnly, h.UpdateAvailability)
	}

	attractions := r.Group("/attractions")
	{
		attractions.GET("", h.ListAttractions)
		attractions.GET("/search", h.SearchAttractions)
		attractions.GET("/:hotelId", h.ListAttractionsByHotel)
	}
}

/* ---------- HOTEL HANDLERS ---------- */

// ListHotels handles GET /hotels?limit=&lastEvaluatedKey=
func (h *Handler) ListHotels(c *gin.Context) {
	limit := defaultHotelPageSize
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	page, err := h.service.ListHotels(c.Request.Context(), limit, c.Query("lastEvaluatedKey"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Raw(c, http.StatusOK, page)
}

// SearchHotels handles GET /hotels/search?location=&minPrice=&maxPrice=
func (h *Handler) SearchHotels(c *gin.Context) {
	hotels, err := h.service.SearchHotels(c.Request.Context(), c.Query("location"), c.Query("minPrice"), c.Query("maxPrice"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Raw(c, http.StatusOK, hotels)
}

func (h *Handler) GetHotel(c *gin.Context) {
	hotel, err := h.service.GetHotel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Raw(c, http.StatusOK, hotel)
}

/* ---------- ROOM HANDLERS ---------- */

// CreateRoom
// @Summary  Create a room type
// @Tags     Rooms
// @Param    X-Admin-Token header string true "admin token"
// @Param    request body CreateRoomRequest true "hotelId, roomTypeName, price, total, available"
// @Success  201 {object} domain.Room
// @Failure  400 {object} map[string]interface{} "missing or invalid fields"
// @Failure  404 {object} map[string]interface{} "hotel not found"
// @Router   /rooms/rooms [POST]
func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "All fields are required")
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Raw(c, http.StatusCreated, room)
}

// UpdateAvailability
// @Summary  Set the available count of a room type
// @Tags     Rooms
// @Param    X-Admin-Token header string true "admin token"
// @Param    roomTypeId path string true "room type id"
// @Param    request body UpdateAvailabilityRequest true "available"
// @Success  200 {object} domain.Room
// @Router   /rooms/rooms/{roomTypeId}/availability [PATCH]
func (h *Handler) UpdateAvailability(c *gin.Context) {
	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Available count is required")
		return
	}

	room, err := h.service.UpdateAvailability(c.Request.Context(), c.Param("roomTypeId"), *req.Available)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Raw(c, http.StatusOK, room)
}

// ListRoomsByHotel handles GET /rooms/hotel?hotelId=
func (h *Handler) ListRoomsByHotel(c *gin.Context) {
	hotelID := c.Query("hotelId")
	if hotelID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "hotelId is required")
		return
	}

	rooms, err := h.service.ListRoomsByHotel(c.Request.Context(), hotelID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Raw(c, http.StatusOK, rooms)
}

func (h *Handler) GetRoom(c *gin.Context) {
	room, err := h.service.GetRoom(c.Request.Context(), c.Param("roomTypeId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Raw(c, http.StatusOK, room)
}

/* ---------- ATTRACTION HANDLERS ---------- */

func (h *Handler) ListAttractions(c *gin.Context) {
	out, err := h.service.ListAttractions(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Raw(c, http.StatusOK, out)
}

func (h *Handler) ListAttractionsByHotel(c *gin.Context) {
	out, err := h.service.ListAttractionsByHotel(c.Request.Context(), c.Param("hotelId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Raw(c, http.StatusOK, out)
}

// SearchAttractions handles GET /attractions/search?hotelId=&maxDistance=
func (h *Handler) SearchAttractions(c *gin.Context) {
	out, err := h.service.SearchAttractions(c.Request.Context(), c.Query("hotelId"), c.Query("maxDistance"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Raw(c, http.StatusOK, out)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrHotelNotFound):
		response.Error(c, http.StatusNotFound, "HOTEL_NOT_FOUND", "Hotel not found")
	case errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
	case errors.Is(err, ErrInvalidRoom):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "price, total and available must be non-negative and available <= total")
	case errors.Is(err, ErrInvalidAvailability):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrInvalidFilter):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid search parameters")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Catalog request failed")
	}
}
