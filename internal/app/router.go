package app

import (
	"fmt"
	"net/http"

	"hotelbooking/internal/cache"
	"hotelbooking/internal/config"
	"hotelbooking/internal/events"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/cart"
	"hotelbooking/internal/modules/catalog"
	"hotelbooking/internal/modules/comment"
	"hotelbooking/internal/modules/favorite"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/pkg/logger"
	"hotelbooking/internal/pkg/response"
	"hotelbooking/internal/pkg/validator"
	"hotelbooking/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Deps are the process-wide collaborators the router wires into modules.
// Cache and Publisher default to no-ops when nil.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Log       *logger.Logger
	Cache     cache.CartCache
	Publisher events.Publisher
}

func NewRouter(d Deps) *gin.Engine {
	if d.Cache == nil {
		d.Cache = cache.NoopCache{}
	}
	if d.Publisher == nil {
		d.Publisher = events.NoopPublisher{}
	}
	if err := registerBindingRules(); err != nil {
		panic(err)
	}

	cfg := d.Config

	userRepo := repository.NewUserRepository(d.DB)
	hotelRepo := repository.NewHotelRepository(d.DB)
	roomRepo := repository.NewRoomRepository(d.DB)
	attractionRepo := repository.NewAttractionRepository(d.DB)
	cartRepo := repository.NewCartRepository(d.DB)
	bookingRepo := repository.NewBookingRepository(d.DB)
	commentRepo := repository.NewCommentRepository(d.DB)
	favoriteRepo := repository.NewFavoriteRepository(d.DB)

	tokens := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	lockout := auth.LockoutPolicy{MaxAttempts: cfg.LockoutMaxAttempts, Duration: cfg.LockoutDuration}

	authHandler := auth.NewHandler(auth.NewService(userRepo, tokens, lockout, d.Log))
	catalogHandler := catalog.NewHandler(catalog.NewService(hotelRepo, roomRepo, attractionRepo, d.Log))
	cartHandler := cart.NewHandler(cart.NewService(roomRepo, cartRepo, bookingRepo, d.Cache, d.Publisher, d.Log))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, d.Log))
	commentHandler := comment.NewHandler(comment.NewService(commentRepo))
	favoriteHandler := favorite.NewHandler(favorite.NewService(favoriteRepo))

	metrics := middleware.NewMetrics()

	r := gin.New()
	r.Use(
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RequestLogger(d.Log),
		middleware.ErrorLogger(d.Log),
		metrics.Middleware(),
	)

	r.GET("/healthz", healthz(d.DB))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	public := r.Group("/")
	authHandler.RegisterRoutes(public)
	catalogHandler.RegisterRoutes(public, middleware.AdminToken(cfg.AdminToken, d.Log))

	protected := r.Group("/")
	protected.Use(middleware.JWTAuth(tokens))
	cartHandler.RegisterRoutes(protected)
	bookingHandler.RegisterRoutes(protected)
	favoriteHandler.RegisterRoutes(protected)
	commentHandler.RegisterRoutes(public, protected)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Route not found")
	})

	return r
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database is not reachable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	}
}

// registerBindingRules teaches gin's `binding:` tags the custom rules.
func registerBindingRules() error {
	v, ok := binding.Validator.Engine().(*playground.Validate)
	if !ok {
		return fmt.Errorf("gin binding engine is %T, not a go-playground validator", binding.Validator.Engine())
	}
	if err := validator.RegisterRules(v); err != nil {
		return fmt.Errorf("register validation rules: %w", err)
	}
	return nil
}
