package cart

import (
	"context"
	"time"

	"hotelbooking/internal/cache"
	"hotelbooking/internal/pkg/logger"
)

type staleCartStore interface {
	DeleteStale(ctx context.Context, before time.Time) ([]string, error)
}

// Janitor removes abandoned carts and their cached copies.
type Janitor struct {
	carts staleCartStore
	cache cache.CartCache
	log   *logger.Logger
}

func NewJanitor(carts staleCartStore, cartCache cache.CartCache, log *logger.Logger) *Janitor {
	return &Janitor{carts: carts, cache: cartCache, log: log.With("component", "cart_janitor")}
}

// Purge deletes carts untouched since before and evicts each owner's cache
// entry. It returns how many owners were evicted.
func (j *Janitor) Purge(ctx context.Context, before time.Time) (int, error) {
	userIDs, err := j.carts.DeleteStale(ctx, before)
	if err != nil {
		return 0, err
	}

	for _, userID := range userIDs {
		if err := j.cache.Delete(ctx, userID); err != nil {
			j.log.Warn("stale cart cache eviction failed", "user_id", userID, "error", err)
		}
	}
	return len(userIDs), nil
}
