package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"hotelbooking/internal/domain"

	"github.com/redis/go-redis/v9"
)

const minGenerationTTL = 24 * time.Hour

// setIfGeneration writes KEYS[1] only while KEYS[2] still holds ARGV[1].
// A missing generation key counts as 0.
var setIfGeneration = redis.NewScript(`
local cur = redis.call('GET', KEYS[2])
if not cur then cur = '0' end
if cur ~= ARGV[1] then return 0 end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

type RedisCache struct {
	client        *redis.Client
	baseTTL       time.Duration
	generationTTL time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	genTTL := 4 * ttl
	if genTTL < minGenerationTTL {
		genTTL = minGenerationTTL
	}
	return &RedisCache{
		client:        client,
		baseTTL:       ttl,
		generationTTL: genTTL,
	}
}

func (r *RedisCache) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, cacheKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	return &cart, nil
}

func (r *RedisCache) Generation(ctx context.Context, userID string) (int64, error) {
	gen, err := r.client.Get(ctx, generationKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get generation failed: %w", err)
	}
	return gen, nil
}

// Set stores the cart with a jittered TTL so entries written together do not
// expire together. It returns ErrStaleGeneration and writes nothing when the
// cart was invalidated after generation was read.
func (r *RedisCache) Set(ctx context.Context, userID string, generation int64, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	ttl := r.baseTTL + jitter(r.baseTTL)
	stored, err := setIfGeneration.Run(ctx, r.client,
		[]string{cacheKey(userID), generationKey(userID)},
		strconv.FormatInt(generation, 10), data, ttl.Milliseconds(),
	).Int()
	if err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	if stored == 0 {
		return ErrStaleGeneration
	}
	return nil
}

// Delete drops the entry and bumps the generation in one transaction.
func (r *RedisCache) Delete(ctx context.Context, userID string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(userID))
		pipe.PExpire(ctx, generationKey(userID), r.generationTTL)
		pipe.Del(ctx, cacheKey(userID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func jitter(base time.Duration) time.Duration {
	spread := int64(base / 5)
	if spread <= 0 {
		return 0
	}
	return time.Duration(rand.Int64N(spread))
}

func cacheKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

func generationKey(userID string) string {
	return fmt.Sprintf("cart:gen:%s", userID)
}
