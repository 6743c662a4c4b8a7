package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

type commentModel struct {
	ID        string    `gorm:"column:id;primaryKey;size:36"`
	UserID    string    `gorm:"column:user_id;index;not null"`
	ItemID    string    `gorm:"column:item_id;index:idx_comments_item;not null"`
	ItemType  string    `gorm:"column:item_type;index:idx_comments_item;not null"`
	Comment   string    `gorm:"column:comment;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (commentModel) TableName() string { return "comments" }

func toDomainComment(m commentModel) domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		UserID:    m.UserID,
		ItemID:    m.ItemID,
		ItemType:  domain.ItemType(m.ItemType),
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	m := commentModel{
		ID:        c.ID,
		UserID:    c.UserID,
		ItemID:    c.ItemID,
		ItemType:  string(c.ItemType),
		Comment:   c.Comment,
		CreatedAt: c.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*c = toDomainComment(m)
	return nil
}

func (r *CommentRepository) ListByItem(ctx context.Context, itemType domain.ItemType, itemID string) ([]domain.Comment, error) {
	var rows []commentModel
	if err := r.db.WithContext(ctx).
		Where("item_type = ? AND item_id = ?", string(itemType), itemID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Comment, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainComment(m))
	}
	return out, nil
}
