package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/foodtrack/foodtrack-server/internal/adapters/handler/http/middleware"
	"github.com/foodtrack/foodtrack-server/internal/core/services"
)

type RouterDependencies struct {
	AuthHandler        *AuthHandler
	ProfileHandler     *ProfileHandler
	FoodHandler        *FoodHandler
	TrackerHandler     *TrackerHandler
	StatsHandler       *StatsHandler
	ChatHandler        *ChatHandler
	MarathonHandler    *MarathonHandler
	MeasurementHandler *MeasurementHandler
	TokenService       *services.TokenService
	DB                 *sqlx.DB
	Redis              *redis.Client
	StartTime          time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		dbStatus := "connected"
		if err := deps.DB.Ping(); err != nil {
			dbStatus = "unreachable"
		}

		redisStatus := "connected"
		if deps.Redis == nil || deps.Redis.Ping(c.Request.Context()).Err() != nil {
			redisStatus = "unreachable"
		}

		statusCode := 200
		if dbStatus == "unreachable" {
			statusCode = 503
		}

		c.JSON(statusCode, gin.H{
			"status":   "ok",
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		})
	})

	// The limiter reads the authenticated user id from the context, so on
	// protected routes it must sit after the auth middleware. The public
	// auth routes get an IP-keyed instance of the same limiter.
	var limiter gin.HandlerFunc
	if deps.Redis != nil {
		limiter = middleware.RateLimiterMiddleware(deps.Redis, 100, 1*time.Minute)
	}

	apiV1 := router.Group("/api/v1")

	public := apiV1.Group("")
	if limiter != nil {
		public.Use(limiter)
	}
	deps.AuthHandler.RegisterRoutes(public)

	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenService))
	if limiter != nil {
		protected.Use(limiter)
	}
	{
		deps.ProfileHandler.RegisterRoutes(protected)
		deps.FoodHandler.RegisterRoutes(protected)
		deps.TrackerHandler.RegisterRoutes(protected)
		deps.StatsHandler.RegisterRoutes(protected)
		deps.ChatHandler.RegisterRoutes(protected)
		deps.MarathonHandler.RegisterRoutes(protected)
		deps.MeasurementHandler.RegisterRoutes(protected)
	}

	return router
}
