package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppEnv             = "dev"
	defaultHTTPAddr           = ":8080"
	defaultDatabaseURL        = "hotelbooking.db"
	defaultJWTSecret          = "change-me-jwt-secret"
	defaultJWTTTL             = "24h"
	defaultLockoutMaxAttempts = "5"
	defaultLockoutDuration    = "30m"
	defaultRedisDB            = "0"
	defaultCartCacheTTL       = "15m"
	defaultBookingTopic       = "booking-events"
	defaultLogLevel           = "info"
	defaultLogFormat          = "json"
	defaultCartMaxAge         = "720h"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	// AdminToken guards catalog administration; empty leaves it open.
	AdminToken string

	LockoutMaxAttempts int
	LockoutDuration    time.Duration

	// RedisAddr empty disables the cart cache.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CartCacheTTL  time.Duration
	CartMaxAge    time.Duration

	// KafkaBrokers empty disables booking event publishing.
	KafkaBrokers      []string
	KafkaBookingTopic string

	LogLevel  string
	LogFormat string

	CORSAllowedOrigins []string
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = defaultAppEnv
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.AdminToken = strings.TrimSpace(os.Getenv("ADMIN_TOKEN"))
	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.KafkaBrokers = splitList(os.Getenv("KAFKA_BROKERS"))
	cfg.KafkaBookingTopic = strings.TrimSpace(getEnv("KAFKA_BOOKING_TOPIC", defaultBookingTopic))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel)))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(getEnv("LOG_FORMAT", defaultLogFormat)))
	cfg.CORSAllowedOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))

	var err error
	if cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL); err != nil {
		return nil, err
	}
	if cfg.LockoutDuration, err = parseDurationEnv("LOCKOUT_DURATION", defaultLockoutDuration); err != nil {
		return nil, err
	}
	if cfg.CartCacheTTL, err = parseDurationEnv("CART_CACHE_TTL", defaultCartCacheTTL); err != nil {
		return nil, err
	}
	if cfg.CartMaxAge, err = parseDurationEnv("CART_MAX_AGE", defaultCartMaxAge); err != nil {
		return nil, err
	}
	if cfg.LockoutMaxAttempts, err = parseIntEnv("LOCKOUT_MAX_ATTEMPTS", defaultLockoutMaxAttempts); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = parseIntEnv("REDIS_DB", defaultRedisDB); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.LockoutMaxAttempts <= 0 {
		return fmt.Errorf("LOCKOUT_MAX_ATTEMPTS must be > 0")
	}
	if cfg.LockoutDuration <= 0 {
		return fmt.Errorf("LOCKOUT_DURATION must be > 0")
	}
	if cfg.CartCacheTTL <= 0 {
		return fmt.Errorf("CART_CACHE_TTL must be > 0")
	}
	if cfg.CartMaxAge <= 0 {
		return fmt.Errorf("CART_MAX_AGE must be > 0")
	}
	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaBookingTopic == "" {
		return fmt.Errorf("KAFKA_BOOKING_TOPIC must be set when KAFKA_BROKERS is set")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.AdminToken == "" {
			return fmt.Errorf("in prod/release ADMIN_TOKEN must be set")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
