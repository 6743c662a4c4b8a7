package comment

import (
	"context"
	"strings"
	"testing"

	"hotelbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memComments struct {
	rows []domain.Comment
}

func (m *memComments) Create(_ context.Context, c *domain.Comment) error {
	m.rows = append(m.rows, *c)
	return nil
}

func (m *memComments) ListByItem(_ context.Context, itemType domain.ItemType, itemID string) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, c := range m.rows {
		if c.ItemType == itemType && c.ItemID == itemID {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestCreate_StripsTags(t *testing.T) {
	repo := &memComments{}
	svc := NewService(repo)

	c, err := svc.Create(context.Background(), "u-1", CreateCommentRequest{
		ItemID: "h-1", ItemType: "Hotel", Comment: `<script>alert(1)</script>Great <b>view</b> & pool`,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ItemHotel, c.ItemType)
	assert.Equal(t, "Great view & pool", c.Comment)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&memComments{})
	ctx := context.Background()

	_, err := svc.Create(ctx, "u-1", CreateCommentRequest{ItemID: "h-1", ItemType: "hotel", Comment: "   "})
	assert.ErrorIs(t, err, ErrEmptyComment)

	_, err = svc.Create(ctx, "u-1", CreateCommentRequest{ItemID: "h-1", ItemType: "hotel", Comment: "<img src=x>"})
	assert.ErrorIs(t, err, ErrEmptyComment)

	_, err = svc.Create(ctx, "u-1", CreateCommentRequest{ItemID: "h-1", ItemType: "hotel", Comment: strings.Repeat("a", 501)})
	assert.ErrorIs(t, err, ErrCommentTooLong)

	_, err = svc.Create(ctx, "u-1", CreateCommentRequest{ItemID: "h-1", ItemType: "hotel", Comment: strings.Repeat("ä", 500)})
	assert.NoError(t, err)

	_, err = svc.Create(ctx, "u-1", CreateCommentRequest{ItemID: "h-1", ItemType: "spa", Comment: "nice"})
	assert.ErrorIs(t, err, ErrInvalidItemType)
}

func TestListByItem_EscapesOnRead(t *testing.T) {
	repo := &memComments{}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u-1", CreateCommentRequest{ItemID: "a-1", ItemType: "attraction", Comment: `Tom's "best" 5 > 4`})
	require.NoError(t, err)

	out, err := svc.ListByItem(ctx, "attraction", "a-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Tom&#39;s &#34;best&#34; 5 &gt; 4", out[0].Comment)
	assert.Equal(t, `Tom's "best" 5 > 4`, repo.rows[0].Comment)
}
