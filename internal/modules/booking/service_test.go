package booking

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) DeleteForUser(ctx context.Context, bookingID, userID string) error {
	args := m.Called(ctx, bookingID, userID)
	return args.Error(0)
}

func TestService_List_EmptyIsNotNil(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("ListByUserID", mock.Anything, "u-1").Return(nil, nil)

	out, err := NewService(repo, logger.Nop()).List(context.Background(), "u-1")

	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestService_Delete_NotOwnedIsNotFound(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("DeleteForUser", mock.Anything, "b-1", "u-2").Return(gorm.ErrRecordNotFound)

	err := NewService(repo, logger.Nop()).Delete(context.Background(), "u-2", "b-1")

	assert.ErrorIs(t, err, ErrBookingNotFound)
	repo.AssertExpectations(t)
}

func TestService_Delete_StoreError(t *testing.T) {
	repo := new(MockBookingRepository)
	boom := errors.New("connection reset")
	repo.On("DeleteForUser", mock.Anything, "b-1", "u-1").Return(boom)

	err := NewService(repo, logger.Nop()).Delete(context.Background(), "u-1", "b-1")

	assert.ErrorIs(t, err, boom)
}

func TestHandler_Bookings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := new(MockBookingRepository)
	repo.On("ListByUserID", mock.Anything, "u-1").Return([]domain.Booking{{ID: "b-1", UserID: "u-1", BookingStatus: domain.BookingConfirmed}}, nil)
	repo.On("DeleteForUser", mock.Anything, "b-1", "u-1").Return(nil)
	repo.On("DeleteForUser", mock.Anything, "b-9", "u-1").Return(gorm.ErrRecordNotFound)

	r := gin.New()
	g := r.Group("/", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "u-1")
		c.Next()
	})
	NewHandler(NewService(repo, logger.Nop())).RegisterRoutes(g)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bookingStatus":"Confirmed"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/bookings", bytes.NewBufferString(`{"bookingId":"b-1"}`)))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/bookings", bytes.NewBufferString(`{"bookingId":"b-9"}`)))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/bookings", bytes.NewBufferString(`{}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
