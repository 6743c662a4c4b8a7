package main

import (
	"context"
	"time"

	"hotelbooking/internal/cache"
	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/modules/cart"
	"hotelbooking/internal/pkg/logger"
	"hotelbooking/internal/repository"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Fatal("config load failed", "error", err)
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "cart-cleanup"})

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("db connect failed", "error", err)
	}

	var cartCache cache.CartCache = cache.NoopCache{}
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()
		cartCache = cache.NewRedisCache(client, cfg.CartCacheTTL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-cfg.CartMaxAge)
	janitor := cart.NewJanitor(repository.NewCartRepository(db), cartCache, log)
	n, err := janitor.Purge(ctx, cutoff)
	if err != nil {
		log.Fatal("cleanup carts failed", "error", err)
	}

	log.Info("cart cleanup completed", "deleted", n, "older_than", cutoff.Format(time.RFC3339))
}
