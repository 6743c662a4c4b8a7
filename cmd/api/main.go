package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"hotelbooking/internal/app"
	"hotelbooking/internal/cache"
	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/events"
	"hotelbooking/internal/pkg/logger"
	"hotelbooking/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Fatal("config load failed", "error", err)
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "hotelbooking-api"})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("db connect failed", "error", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("auto migrate failed", "error", err)
	}

	var cartCache cache.CartCache = cache.NoopCache{}
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			log.Warn("redis unavailable, cart reads will hit the database", "addr", cfg.RedisAddr, "error", err)
		}
		cartCache = cache.NewRedisCache(client, cfg.CartCacheTTL)
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaBookingTopic, log)
		log.Info("publishing booking events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaBookingTopic)
	}
	defer publisher.Close()

	router := app.NewRouter(app.Deps{
		Config:    cfg,
		DB:        db,
		Log:       log,
		Cache:     cartCache,
		Publisher: publisher,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http server listening", "addr", cfg.HTTPAddr, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	log.Info("server stopped")
}
