package cache

import (
	"context"
	"testing"
	"time"

	"hotelbooking/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, 10*time.Minute), mr
}

func sampleCart() *domain.Cart {
	return &domain.Cart{
		ID:     "c-1",
		UserID: "u-1",
		Items: []domain.CartItem{{
			ItemKey:       "k-1",
			RoomTypeID:    "r-1",
			PricePerNight: decimal.RequireFromString("120.00"),
			Nights:        4,
			TotalPrice:    decimal.RequireFromString("480.00"),
		}},
		TotalPrice: decimal.RequireFromString("480.00"),
		Revision:   3,
	}
}

func TestRedisCache_SetGet(t *testing.T) {
	c, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "u-1", 0, sampleCart()))
	assert.True(t, mr.Exists("cart:u-1"))

	ttl := mr.TTL("cart:u-1")
	assert.GreaterOrEqual(t, ttl, 10*time.Minute)
	assert.Less(t, ttl, 12*time.Minute)

	got, err := c.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "c-1", got.ID)
	assert.EqualValues(t, 3, got.Revision)
	require.Len(t, got.Items, 1)
	assert.True(t, got.TotalPrice.Equal(decimal.NewFromInt(480)))
}

func TestRedisCache_Miss(t *testing.T) {
	c, _ := setupTestRedis(t)

	_, err := c.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_Delete(t *testing.T) {
	c, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "u-1", 0, sampleCart()))
	require.NoError(t, c.Delete(ctx, "u-1"))
	assert.False(t, mr.Exists("cart:u-1"))

	gen, err := c.Generation(ctx, "u-1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, gen)
	assert.Greater(t, mr.TTL("cart:gen:u-1"), time.Duration(0))
}

func TestRedisCache_SetWithStaleGenerationIsDropped(t *testing.T) {
	c, mr := setupTestRedis(t)
	ctx := context.Background()

	gen, err := c.Generation(ctx, "u-1")
	require.NoError(t, err)
	assert.Zero(t, gen)

	// a checkout invalidates between the reader's load and its write-back
	require.NoError(t, c.Delete(ctx, "u-1"))

	assert.ErrorIs(t, c.Set(ctx, "u-1", gen, sampleCart()), ErrStaleGeneration)
	assert.False(t, mr.Exists("cart:u-1"))

	gen, err = c.Generation(ctx, "u-1")
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, "u-1", gen, sampleCart()))
	assert.True(t, mr.Exists("cart:u-1"))
}

func TestRedisCache_CorruptEntry(t *testing.T) {
	c, mr := setupTestRedis(t)
	require.NoError(t, mr.Set("cart:u-1", "{not json"))

	_, err := c.Get(context.Background(), "u-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_ServerDown(t *testing.T) {
	c, mr := setupTestRedis(t)
	mr.Close()

	_, err := c.Get(context.Background(), "u-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}
