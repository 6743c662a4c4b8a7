package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"hotelbooking/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// cartItems is stored as a single JSON column.
type cartItems []domain.CartItem

func (c cartItems) Value() (driver.Value, error) {
	if c == nil {
		c = cartItems{}
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *cartItems) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*c = nil
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("cart items: unsupported column type %T", src)
	}
	return json.Unmarshal(raw, c)
}

type cartModel struct {
	ID         string          `gorm:"column:id;primaryKey;size:36"`
	UserID     string          `gorm:"column:user_id;uniqueIndex;not null"`
	Items      cartItems       `gorm:"column:items;type:text;not null"`
	TotalPrice decimal.Decimal `gorm:"column:total_price;type:decimal(12,2);not null"`
	Revision   int64           `gorm:"column:revision;not null"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`
}

func (cartModel) TableName() string { return "carts" }

func toDomainCart(m cartModel) *domain.Cart {
	return &domain.Cart{
		ID:         m.ID,
		UserID:     m.UserID,
		Items:      []domain.CartItem(m.Items),
		TotalPrice: m.TotalPrice,
		Revision:   m.Revision,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *CartRepository) GetByUserID(ctx context.Context, userID string) (*domain.Cart, error) {
	var m cartModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainCart(m), nil
}

// Save writes the whole cart. A cart with Revision 0 is inserted; otherwise
// the row is only overwritten if its stored revision still matches. On
// success c.Revision holds the new revision.
func (r *CartRepository) Save(ctx context.Context, c *domain.Cart) error {
	now := time.Now()

	if c.Revision == 0 {
		m := cartModel{
			ID:         c.ID,
			UserID:     c.UserID,
			Items:      cartItems(c.Items),
			TotalPrice: c.TotalPrice,
			Revision:   1,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrRevisionConflict
			}
			return err
		}
		*c = *toDomainCart(m)
		return nil
	}

	tx := r.db.WithContext(ctx).Model(&cartModel{}).
		Where("id = ? AND revision = ?", c.ID, c.Revision).
		Updates(map[string]any{
			"items":       cartItems(c.Items),
			"total_price": c.TotalPrice,
			"revision":    c.Revision + 1,
			"updated_at":  now,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrRevisionConflict
	}
	c.Revision++
	c.UpdatedAt = now
	return nil
}

// Delete removes the cart if it is still at revision.
func (r *CartRepository) Delete(ctx context.Context, cartID string, revision int64) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND revision = ?", cartID, revision).
		Delete(&cartModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&cartModel{}).Where("id = ?", cartID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrRevisionConflict
	}
	return nil
}

// DeleteStale drops carts untouched since before and returns their owners.
// A cart saved between the lookup and the delete survives, but its owner is
// still listed.
func (r *CartRepository) DeleteStale(ctx context.Context, before time.Time) ([]string, error) {
	var stale []cartModel
	if err := r.db.WithContext(ctx).
		Select("id", "user_id").
		Where("updated_at < ?", before).
		Find(&stale).Error; err != nil {
		return nil, err
	}
	if len(stale) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(stale))
	userIDs := make([]string, 0, len(stale))
	for _, m := range stale {
		ids = append(ids, m.ID)
		userIDs = append(userIDs, m.UserID)
	}

	if err := r.db.WithContext(ctx).
		Where("id IN ? AND updated_at < ?", ids, before).
		Delete(&cartModel{}).Error; err != nil {
		return nil, err
	}
	return userIDs, nil
}
