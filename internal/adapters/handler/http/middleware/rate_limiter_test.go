package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupTestRedis(t *testing.T) *redis.Client {
	_ = godotenv.Load("../../../../../.env")

	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       1,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("Skipping integration test (Redis down): %v", err)
	}

	rdb.FlushDB(ctx)
	return rdb
}

// loggedInAs mimics the auth middleware's contract: the limiter sits
// behind it on protected routes and keys by the user id it stored.
func loggedInAs(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

func doGet(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Forwarded-For", ip)
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiterMiddleware_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb := setupTestRedis(t)
	defer rdb.Close()

	ctx := context.Background()

	t.Run("Authenticated requests share one window across IPs", func(t *testing.T) {
		rdb.FlushDB(ctx)

		router := gin.New()
		router.Use(loggedInAs(42))
		router.Use(RateLimiterMiddleware(rdb, 2, 1*time.Minute))
		router.GET("/test", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		assert.Equal(t, http.StatusOK, doGet(router, "10.0.0.1").Code)
		assert.Equal(t, http.StatusOK, doGet(router, "10.0.0.2").Code)

		w := doGet(router, "10.0.0.3")
		assert.Equal(t, http.StatusTooManyRequests, w.Code, "same user must be throttled regardless of IP")
		assert.Contains(t, w.Body.String(), "Too many requests")

		count, err := rdb.Get(ctx, "rate_limit:user:42").Int64()
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("Users behind one NAT do not throttle each other", func(t *testing.T) {
		rdb.FlushDB(ctx)

		ip := "192.168.1.100"
		limit := 1

		for _, userID := range []int64{7, 8, 9} {
			router := gin.New()
			router.Use(loggedInAs(userID))
			router.Use(RateLimiterMiddleware(rdb, limit, 1*time.Minute))
			router.GET("/test", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			assert.Equal(t, http.StatusOK, doGet(router, ip).Code)
		}
	})

	t.Run("Anonymous requests fall back to the client IP", func(t *testing.T) {
		rdb.FlushDB(ctx)

		limit := 2
		router := gin.New()
		router.Use(RateLimiterMiddleware(rdb, limit, 1*time.Minute))
		router.GET("/test", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		ip := "192.168.1.101"

		for i := 1; i <= limit; i++ {
			w := doGet(router, ip)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, fmt.Sprintf("%d", limit-i), w.Header().Get("X-RateLimit-Remaining"))
		}

		assert.Equal(t, http.StatusTooManyRequests, doGet(router, ip).Code)
		assert.Equal(t, http.StatusOK, doGet(router, "192.168.1.102").Code, "other IPs keep their own window")
	})

	t.Run("Fail Open (Redis Down)", func(t *testing.T) {
		badRdb := redis.NewClient(&redis.Options{
			Addr: "localhost:9999",
		})

		router := gin.New()
		router.Use(RateLimiterMiddleware(badRdb, 5, 1*time.Minute))
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "passed")
		})

		assert.Equal(t, http.StatusOK, doGet(router, "10.1.1.1").Code)
	})
}
