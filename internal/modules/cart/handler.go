package cart

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

// RegisterRoutes expects rg to be behind JWTAuth.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", h.GetCart)
		cartGroup.POST("/add", h.AddItem)
		cartGroup.POST("/remove", h.RemoveItem)
		cartGroup.POST("/checkout", h.Checkout)
	}
}

// GetCart returns the caller's cart or null.
// @Summary  Get cart
// @Tags     Cart
// @Security BearerAuth
// @Success  200 {object} domain.Cart
// @Router   /cart [GET]
func (h *Handler) GetCart(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	cart, err := h.service.GetCart(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load cart")
		return
	}
	response.Raw(c, http.StatusOK, cart)
}

// AddItem books a stay of one room type into the cart.
// @Summary  Add a room type to the cart
// @Tags     Cart
// @Security BearerAuth
// @Param    request body AddItemRequest true "room type and stay dates"
// @Success  200 {object} CartResponse
// @Failure  400 {object} map[string]interface{} "invalid dates"
// @Failure  404 {object} map[string]interface{} "room type not found"
// @Router   /cart/add [POST]
func (h *Handler) AddItem(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "roomTypeId, checkInDate and checkOutDate are required")
		return
	}

	cart, err := h.service.AddItem(c.Request.Context(), userID, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Raw(c, http.StatusOK, CartResponse{Message: "Item added to cart", Cart: cart})
}

// RemoveItem drops one line item by its key.
// @Summary  Remove an item from the cart
// @Tags     Cart
// @Security BearerAuth
// @Param    request body RemoveItemRequest true "item key"
// @Success  200 {object} CartResponse
// @Failure  400 {object} map[string]interface{} "cart or item not found"
// @Router   /cart/remove [POST]
func (h *Handler) RemoveItem(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "itemKey is required")
		return
	}

	cart, err := h.service.RemoveItem(c.Request.Context(), userID, req.ItemKey)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Raw(c, http.StatusOK, CartResponse{Message: "Item removed from cart", Cart: cart})
}

// Checkout converts the cart into bookings.
// @Summary  Checkout the cart
// @Tags     Cart
// @Security BearerAuth
// @Success  200 {object} CheckoutResponse
// @Failure  400 {object} map[string]interface{} "empty cart or booking failure"
// @Failure  409 {object} map[string]interface{} "cart changed during checkout"
// @Router   /cart/checkout [POST]
func (h *Handler) Checkout(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	bookings, err := h.service.Checkout(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Raw(c, http.StatusOK, CheckoutResponse{Message: "Checkout successful", Bookings: bookings})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room type not found")
	case errors.Is(err, ErrInvalidDateRange):
		response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "Check-out must be at least one whole day after check-in")
	case errors.Is(err, ErrInvalidPrice):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Room type has an invalid price")
	case errors.Is(err, ErrCartNotFound):
		response.Error(c, http.StatusBadRequest, "CART_NOT_FOUND", "Cart not found")
	case errors.Is(err, ErrItemNotFound):
		response.Error(c, http.StatusBadRequest, "ITEM_NOT_FOUND", "Item not found in cart")
	case errors.Is(err, ErrEmptyCart):
		response.Error(c, http.StatusBadRequest, "EMPTY_CART", "Cart is empty")
	case errors.Is(err, ErrCheckoutFailed):
		_ = c.Error(err)
		response.Error(c, http.StatusBadRequest, "CHECKOUT_FAILED", "Checkout failed, the cart was kept")
	case errors.Is(err, ErrCartConflict):
		response.Error(c, http.StatusConflict, "CART_CONFLICT", "Cart was modified concurrently, retry")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Cart operation failed")
	}
}
