package ratelimit

import (
	"fmt"
	"net/http"
	"strings"

	"matchday/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Middleware enforces per-IP request budgets on every route
func Middleware(rateLimiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		// Determine rate limit type from route
		limitType := getRateLimitType(c.FullPath())

		result, err := rateLimiter.IsAllowed(c.Request.Context(), clientIP, limitType)
		if err != nil {
			// A broken limiter must not take the API down with it.
			c.Next()
			return
		}

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetTime))

		if !result.Allowed {
			response.AbortWithDetail(c, http.StatusTooManyRequests, "Rate limit exceeded, please retry later")
			return
		}

		c.Next()
	}
}

// getRateLimitType classifies a route into a rate limit bucket
func getRateLimitType(path string) RateLimitType {
	switch {
	// Health/monitoring endpoints
	case strings.HasPrefix(path, "/health"),
		strings.HasPrefix(path, "/ping"):
		return RateLimitTypeHealth

	// The contended write path gets the tightest budget
	case strings.HasPrefix(path, "/book_seats"):
		return RateLimitTypeBooking

	// Public catalog reads
	case path == "/",
		strings.HasPrefix(path, "/login_user"),
		strings.HasPrefix(path, "/matches"),
		strings.HasPrefix(path, "/availability"),
		strings.HasPrefix(path, "/get_bookings"):
		return RateLimitTypePublic

	default:
		return RateLimitTypeDefault
	}
}
