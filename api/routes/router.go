// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"cinebook/internal/bookings"
	"cinebook/internal/checkout"
	"cinebook/internal/notifications"
	"cinebook/internal/promotions"
	"cinebook/internal/seats"
	"cinebook/internal/showtimes"
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/database"
	"cinebook/internal/shared/middleware"
	"cinebook/pkg/cache"
	"cinebook/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	cache    cache.Service
	producer notifications.Producer

	// Services shared across features for dependency injection
	showtimeService  showtimes.Service
	seatService      seats.Service
	promotionService promotions.Service
	bookingService   bookings.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, cacheService cache.Service, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		cache:    cacheService,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	api.Use(middleware.SessionID(), middleware.OptionalAuth(r.config))
	{
		// Showtime and seat routes must come first: checkout depends on
		// the services they build.
		r.setupShowtimeRoutes(api)
		r.setupSeatRoutes(api)
		r.setupPromotionRoutes(api)
		r.setupBookingRoutes(api)
		r.setupCheckoutRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "cinebook-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cinebook-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

func (r *Router) setupShowtimeRoutes(rg *gin.RouterGroup) {
	showtimeRepo := showtimes.NewRepository(r.db.GetPostgreSQL())
	r.showtimeService = showtimes.NewService(showtimeRepo)
	showtimeController := showtimes.NewController(r.showtimeService)

	showtimes.SetupShowtimeRoutes(rg, showtimeController)
}

func (r *Router) setupSeatRoutes(rg *gin.RouterGroup) {
	r.seatService = seats.NewService(r.showtimeService)
	seatController := seats.NewController(r.seatService)

	seats.SetupSeatRoutes(rg, seatController)
}

func (r *Router) setupPromotionRoutes(rg *gin.RouterGroup) {
	promotionRepo := promotions.NewRepository(r.db.GetPostgreSQL())
	r.promotionService = promotions.NewService(promotionRepo)
	promotionController := promotions.NewController(r.promotionService)

	promotions.SetupPromotionRoutes(rg, promotionController)
}

func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	r.bookingService = bookings.NewService(bookingRepo)
	bookingController := bookings.NewController(r.bookingService)

	bookings.SetupBookingRoutes(rg, bookingController)
}

func (r *Router) setupCheckoutRoutes(rg *gin.RouterGroup) {
	draftStore := checkout.NewDraftStore(r.cache, r.config.Redis.DraftTTL)
	checkoutService := checkout.NewService(
		draftStore,
		r.showtimeService,
		r.seatService,
		r.promotionService,
		r.bookingService,
		r.producer,
		r.cache,
		r.config.Redis.SubmitLockTTL,
		logger.GetDefault(),
	)
	checkoutController := checkout.NewController(checkoutService)

	checkout.SetupCheckoutRoutes(rg, checkoutController)
}
