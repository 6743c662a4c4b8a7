package favorite

import (
	"context"
	"testing"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, f *domain.Favorite) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, itemID string, itemType domain.ItemType) error {
	args := m.Called(ctx, userID, itemID, itemType)
	return args.Error(0)
}

func (m *MockFavoriteRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Favorite), args.Error(1)
}

func TestAdd(t *testing.T) {
	repo := new(MockFavoriteRepository)
	repo.On("Add", mock.Anything, mock.MatchedBy(func(f *domain.Favorite) bool {
		return f.ItemType == domain.ItemHotel && f.ItemID == "h-1" && f.UserID == "u-1"
	})).Return(nil).Once()

	f, err := NewService(repo).Add(context.Background(), "u-1", FavoriteRequest{ItemID: "h-1", ItemType: "HOTEL"})

	require.NoError(t, err)
	assert.NotEmpty(t, f.ID)
	repo.AssertExpectations(t)
}

func TestAdd_Duplicate(t *testing.T) {
	repo := new(MockFavoriteRepository)
	repo.On("Add", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	_, err := NewService(repo).Add(context.Background(), "u-1", FavoriteRequest{ItemID: "h-1", ItemType: "hotel"})

	assert.ErrorIs(t, err, ErrAlreadyFavorite)
}

func TestAdd_InvalidItemType(t *testing.T) {
	repo := new(MockFavoriteRepository)

	_, err := NewService(repo).Add(context.Background(), "u-1", FavoriteRequest{ItemID: "x", ItemType: "restaurant"})

	assert.ErrorIs(t, err, ErrInvalidItemType)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestRemove_NotFound(t *testing.T) {
	repo := new(MockFavoriteRepository)
	repo.On("Remove", mock.Anything, "u-1", "a-1", domain.ItemAttraction).Return(gorm.ErrRecordNotFound)

	err := NewService(repo).Remove(context.Background(), "u-1", FavoriteRequest{ItemID: "a-1", ItemType: "attraction"})

	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}
