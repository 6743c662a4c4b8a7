package favorite

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"

	"github.com/google/uuid"
)

type FavoriteRepository interface {
	Add(ctx context.Context, f *domain.Favorite) error
	Remove(ctx context.Context, userID, itemID string, itemType domain.ItemType) error
	ListByUserID(ctx context.Context, userID string) ([]domain.Favorite, error)
}

type Service struct {
	favorites FavoriteRepository
}

func NewService(favorites FavoriteRepository) *Service {
	return &Service{favorites: favorites}
}

func parseItemType(s string) (domain.ItemType, error) {
	t := domain.ItemType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", ErrInvalidItemType
	}
	return t, nil
}

func (s *Service) Add(ctx context.Context, userID string, req FavoriteRequest) (*domain.Favorite, error) {
	t, err := parseItemType(req.ItemType)
	if err != nil {
		return nil, err
	}

	f := &domain.Favorite{
		ID:        uuid.NewString(),
		UserID:    userID,
		ItemID:    strings.TrimSpace(req.ItemID),
		ItemType:  t,
		CreatedAt: time.Now(),
	}
	if err := s.favorites.Add(ctx, f); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyFavorite
		}
		return nil, err
	}
	return f, nil
}

func (s *Service) Remove(ctx context.Context, userID string, req FavoriteRequest) error {
	t, err := parseItemType(req.ItemType)
	if err != nil {
		return err
	}
	if err := s.favorites.Remove(ctx, userID, strings.TrimSpace(req.ItemID), t); err != nil {
		if repository.IsNotFound(err) {
			return ErrFavoriteNotFound
		}
		return err
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.Favorite, error) {
	return s.favorites.ListByUserID(ctx, userID)
}
