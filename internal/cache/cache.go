package cache

import (
	"context"
	"errors"

	"hotelbooking/internal/domain"
)

var (
	ErrCacheMiss = errors.New("cache miss")
	// ErrStaleGeneration means the entry was invalidated after the caller
	// read its generation, so the value it loaded may already be gone.
	ErrStaleGeneration = errors.New("cache generation moved")
)

// CartCache is a cache-aside store for carts. Readers take Generation before
// loading from the database and hand it back to Set; Delete moves the
// generation on, so a load that raced a mutation is never written back.
type CartCache interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	Generation(ctx context.Context, userID string) (int64, error)
	Set(ctx context.Context, userID string, generation int64, cart *domain.Cart) error
	Delete(ctx context.Context, userID string) error
}

// NoopCache always misses. Used when no Redis address is configured.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) (*domain.Cart, error)      { return nil, ErrCacheMiss }
func (NoopCache) Generation(context.Context, string) (int64, error)      { return 0, nil }
func (NoopCache) Set(context.Context, string, int64, *domain.Cart) error { return nil }
func (NoopCache) Delete(context.Context, string) error                   { return nil }
