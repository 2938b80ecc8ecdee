// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"matchday/internal/bookings"
	"matchday/internal/matches"
	"matchday/internal/notifications"
	"matchday/internal/seats"
	"matchday/internal/shared/config"
	"matchday/internal/shared/database"
	"matchday/internal/users"
	"matchday/pkg/cache"
	"matchday/pkg/logger"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer

	// Services shared across modules for dependency injection
	matchService matches.Service
	seatService  seats.Service
	userService  users.Service
}

// NewRouter creates a new router instance. producer may be nil when the
// confirmation pipeline is disabled.
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes. The API is served at the
// engine root; clients of the original service expect unprefixed paths.
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group("/")
	{
		// Catalog modules first; the booking engine depends on them
		r.setupUserRoutes(api)
		r.setupMatchRoutes(api)
		r.setupSeatRoutes(api)
		r.setupBookingRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	// Root endpoint doubles as a liveness probe
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "matchday-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "matchday-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

// setupUserRoutes configures user routes
func (r *Router) setupUserRoutes(rg *gin.RouterGroup) {
	userRepo := users.NewRepository(r.db.GetPostgreSQL())
	userService := users.NewService(userRepo)
	userController := users.NewController(userService)

	r.userService = userService

	users.SetupUserRoutes(rg, userController)
}

// setupMatchRoutes configures match catalog routes
func (r *Router) setupMatchRoutes(rg *gin.RouterGroup) {
	matchRepo := matches.NewRepository(r.db.GetPostgreSQL())
	cacheService := cache.NewService(r.db.GetRedisClient())
	matchService := matches.NewService(matchRepo, cacheService, r.config.Redis.MatchListTTL)
	matchController := matches.NewController(matchService)

	r.matchService = matchService

	matches.SetupMatchRoutes(rg, matchController)
}

// setupSeatRoutes configures seat availability routes
func (r *Router) setupSeatRoutes(rg *gin.RouterGroup) {
	seatRepo := seats.NewRepository(r.db.GetPostgreSQL())
	seatService := seats.NewService(seatRepo, r.matchService)
	seatController := seats.NewController(seatService)

	r.seatService = seatService

	seats.SetupSeatRoutes(rg, seatController)
}

// setupBookingRoutes configures the booking engine routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())

	var notifier bookings.Notifier
	if r.producer != nil {
		notifier = r.producer
	}

	bookingService := bookings.NewService(
		bookingRepo,
		r.matchService,
		r.seatService,
		r.userService,
		notifier,
		logger.GetDefault(),
	)
	bookingController := bookings.NewController(bookingService)

	bookings.SetupBookingRoutes(rg, bookingController)
}
