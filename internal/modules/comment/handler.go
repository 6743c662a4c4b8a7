package comment

import (
	"errors"
	"net/http"

	"hotelbooking/internal/middleware"
	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/comments/:itemType/:itemId", h.ListByItem)
	}
	if protected != nil {
		protected.POST("/comments", h.Create)
	}
}

// Create adds a comment to a hotel, room or attraction.
// @Summary   Add a comment
// @Tags      Comments
// @Security  BearerAuth
// @Param     request body CreateCommentRequest true "itemId, itemType, comment"
// @Success   201 {object} domain.Comment
// @Failure   400 {object} map[string]interface{} "empty, too long or bad item type"
// @Router    /comments [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "itemId and itemType are required")
		return
	}

	userID, _ := middleware.UserID(c)
	cm, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Raw(c, http.StatusCreated, cm)
}

// ListByItem
// @Summary  List comments for an item
// @Tags     Comments
// @Param    itemType path string true "hotel, room or attraction"
// @Param    itemId   path string true "item id"
// @Success  200 {array} domain.Comment
// @Router   /comments/{itemType}/{itemId} [GET]
func (h *Handler) ListByItem(c *gin.Context) {
	out, err := h.svc.ListByItem(c.Request.Context(), c.Param("itemType"), c.Param("itemId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Raw(c, http.StatusOK, out)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyComment), errors.Is(err, ErrCommentTooLong), errors.Is(err, ErrInvalidItemType):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Comment request failed")
	}
}
