package auth

import (
	"errors"
	"net/http"

	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

// Register creates an account.
// @Summary  Register a user
// @Tags     Auth
// @Param    request body RegisterRequest true "email, password, names"
// @Success  201 {object} RegisterResponse
// @Failure  400 {object} map[string]interface{} "validation error or email taken"
// @Router   /auth/register [POST]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid registration data", verr.Fields)
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusBadRequest, "EMAIL_EXISTS", "This email is already registered")
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register user")
		}
		return
	}

	response.Raw(c, http.StatusCreated, RegisterResponse{Message: "User registered successfully", UserID: user.ID})
}

// Login authenticates by email and password and returns a bearer token.
// @Summary  Log in
// @Tags     Auth
// @Param    request body LoginRequest true "email, password"
// @Success  200 {object} LoginResult
// @Failure  401 {object} map[string]interface{} "invalid credentials"
// @Failure  403 {object} map[string]interface{} "account locked"
// @Router   /auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		case errors.Is(err, ErrAccountLocked):
			response.Error(c, http.StatusForbidden, "ACCOUNT_LOCKED", "Account is temporarily locked. Try again later")
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		}
		return
	}

	response.Raw(c, http.StatusOK, result)
}
