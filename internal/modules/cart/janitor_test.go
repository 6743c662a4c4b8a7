package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotelbooking/internal/cache"
	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/logger"
	"hotelbooking/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStaleStore struct{ err error }

func (s failingStaleStore) DeleteStale(context.Context, time.Time) ([]string, error) {
	return nil, s.err
}

func TestJanitor_PurgeEvictsCachedCarts(t *testing.T) {
	db, err := database.Connect("file:cart_janitor_test?mode=memory&cache=shared", logger.Nop())
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	carts := repository.NewCartRepository(db)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cartCache := cache.NewRedisCache(client, time.Minute)

	ctx := context.Background()
	require.NoError(t, carts.Save(ctx, &domain.Cart{ID: "c-old", UserID: "u-old"}))
	require.NoError(t, db.Table("carts").Where("id = ?", "c-old").
		Update("updated_at", time.Now().Add(-60*24*time.Hour)).Error)
	require.NoError(t, carts.Save(ctx, &domain.Cart{ID: "c-new", UserID: "u-new"}))

	// both carts were read recently and sit in the cache
	svc := NewService(memRooms{}, carts, newMemBookings(), cartCache, &recordingPublisher{}, logger.Nop())
	for _, userID := range []string{"u-old", "u-new"} {
		c, err := svc.GetCart(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, c)
	}
	require.True(t, mr.Exists("cart:u-old"))

	n, err := NewJanitor(carts, cartCache, logger.Nop()).Purge(ctx, time.Now().Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.False(t, mr.Exists("cart:u-old"))
	assert.True(t, mr.Exists("cart:u-new"))

	c, err := svc.GetCart(ctx, "u-old")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestJanitor_PurgeStoreError(t *testing.T) {
	boom := errors.New("db down")

	_, err := NewJanitor(failingStaleStore{err: boom}, cache.NoopCache{}, logger.Nop()).Purge(context.Background(), time.Now())

	assert.ErrorIs(t, err, boom)
}
