package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

type favoriteModel struct {
	ID        string    `gorm:"column:id;primaryKey;size:36"`
	UserID    string    `gorm:"column:user_id;not null;index;uniqueIndex:idx_favorites_user_item"`
	ItemID    string    `gorm:"column:item_id;not null;uniqueIndex:idx_favorites_user_item"`
	ItemType  string    `gorm:"column:item_type;not null;uniqueIndex:idx_favorites_user_item"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (favoriteModel) TableName() string { return "favorites" }

func toDomainFavorite(m favoriteModel) domain.Favorite {
	return domain.Favorite{
		ID:        m.ID,
		UserID:    m.UserID,
		ItemID:    m.ItemID,
		ItemType:  domain.ItemType(m.ItemType),
		CreatedAt: m.CreatedAt,
	}
}

// Add returns ErrDuplicate when the item is already in the user's favorites.
func (r *FavoriteRepository) Add(ctx context.Context, f *domain.Favorite) error {
	m := favoriteModel{
		ID:        f.ID,
		UserID:    f.UserID,
		ItemID:    f.ItemID,
		ItemType:  string(f.ItemType),
		CreatedAt: f.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	*f = toDomainFavorite(m)
	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, itemID string, itemType domain.ItemType) error {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ? AND item_type = ?", userID, itemID, string(itemType)).
		Delete(&favoriteModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByUserID returns newest first.
func (r *FavoriteRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Favorite, error) {
	var rows []favoriteModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Favorite, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainFavorite(m))
	}
	return out, nil
}
