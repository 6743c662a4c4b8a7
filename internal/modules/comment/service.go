package comment

import (
	"context"
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"hotelbooking/internal/domain"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	ListByItem(ctx context.Context, itemType domain.ItemType, itemID string) ([]domain.Comment, error)
}

type Service struct {
	comments CommentRepository
	policy   *bluemonday.Policy
}

func NewService(comments CommentRepository) *Service {
	return &Service{comments: comments, policy: bluemonday.StrictPolicy()}
}

// Create stores the comment as plain text with every HTML tag removed.
func (s *Service) Create(ctx context.Context, userID string, req CreateCommentRequest) (*domain.Comment, error) {
	itemType := domain.ItemType(strings.ToLower(strings.TrimSpace(req.ItemType)))
	if !itemType.Valid() {
		return nil, ErrInvalidItemType
	}

	raw := strings.TrimSpace(req.Comment)
	if raw == "" {
		return nil, ErrEmptyComment
	}
	if utf8.RuneCountInString(raw) > domain.MaxCommentLength {
		return nil, ErrCommentTooLong
	}

	// StrictPolicy escapes what it keeps; unescape so storage holds plain text.
	text := strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(raw)))
	if text == "" {
		return nil, ErrEmptyComment
	}

	c := &domain.Comment{
		ID:        uuid.NewString(),
		UserID:    userID,
		ItemID:    strings.TrimSpace(req.ItemID),
		ItemType:  itemType,
		Comment:   text,
		CreatedAt: time.Now(),
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListByItem returns comments with their text HTML-escaped for display.
func (s *Service) ListByItem(ctx context.Context, itemType, itemID string) ([]domain.Comment, error) {
	t := domain.ItemType(strings.ToLower(itemType))
	if !t.Valid() {
		return nil, ErrInvalidItemType
	}

	out, err := s.comments.ListByItem(ctx, t, itemID)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Comment = html.EscapeString(out[i].Comment)
	}
	return out, nil
}
