package favorite

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
	favorites := rg.Group("/favorites")
	{
		favorites.POST("", h.AddFavorite)
		favorites.GET("", h.GetFavorites)
		favorites.DELETE("", h.RemoveFavorite)
	}
}

// AddFavorite
// @Summary   Add an item to favorites
// @Tags      Favorites
// @Security  BearerAuth
// @Param     request body FavoriteRequest true "itemId, itemType"
// @Success   201 {object} domain.Favorite
// @Failure   400 {object} map[string]interface{} "already in favorites"
// @Router    /favorites [POST]
func (h *Handler) AddFavorite(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "itemId and itemType are required")
		return
	}

	userID, _ := middleware.UserID(c)
	f, err := h.service.Add(c.Request.Context(), userID, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Raw(c, http.StatusCreated, f)
}

// GetFavorites
// @Summary   List my favorites
// @Tags      Favorites
// @Security  BearerAuth
// @Success   200 {array} domain.Favorite
// @Router    /favorites [GET]
func (h *Handler) GetFavorites(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	out, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Raw(c, http.StatusOK, out)
}

// RemoveFavorite
// @Summary   Remove an item from favorites
// @Tags      Favorites
// @Security  BearerAuth
// @Param     request body FavoriteRequest true "itemId, itemType"
// @Success   200 {object} map[string]string
// @Failure   404 {object} map[string]interface{} "not in favorites"
// @Router    /favorites [DELETE]
func (h *Handler) RemoveFavorite(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "itemId and itemType are required")
		return
	}

	userID, _ := middleware.UserID(c)
	if err := h.service.Remove(c.Request.Context(), userID, req); err != nil {
		h.fail(c, err)
		return
	}
	response.Raw(c, http.StatusOK, gin.H{"message": "Item removed from favorites successfully"})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAlreadyFavorite):
		response.Error(c, http.StatusBadRequest, "ALREADY_FAVORITE", "Item is already in favorites")
	case errors.Is(err, ErrInvalidItemType):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrFavoriteNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Favorite not found")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Favorites request failed")
	}
}
