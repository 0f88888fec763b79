package middlewares

import (
	"sync"
	"time"

	"casamento/pkg/app"
	"casamento/pkg/limiter"
	"casamento/pkg/logger"
	"casamento/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"golang.org/x/time/rate"
)

const (
	// DefaultBurst allows short spikes above the sustained rate.
	DefaultBurst = 100
	// DefaultTimeout bounds the wait for a token.
	DefaultTimeout = 50 * time.Millisecond
)

var (
	// limiters caches one token bucket per key.
	limiters sync.Map
	// lastCleanup tracks when a key was last touched.
	lastCleanup sync.Map
)

// RateLimitConfig describes one limit.
type RateLimitConfig struct {
	Limit   string
	Burst   int
	Timeout time.Duration
}

// LimitIP rate-limits by client IP.
//
// Supported limit formats:
//   - 5 reqs/second:   "5-S"
//   - 10 reqs/minute:  "10-M"
//   - 1000 reqs/hour:  "1000-H"
//   - 2000 reqs/day:   "2000-D"
func LimitIP(limit string) gin.HandlerFunc {
	if app.IsTesting() {
		limit = "1000000-H"
	}

	config := RateLimitConfig{
		Limit:   limit,
		Burst:   DefaultBurst,
		Timeout: DefaultTimeout,
	}

	return createLimiterHandler(func(c *gin.Context) string {
		return limiter.GetKeyIP(c)
	}, config)
}

// LimitPerRoute rate-limits by client IP plus route path.
func LimitPerRoute(limit string) gin.HandlerFunc {
	if app.IsTesting() {
		limit = "1000000-H"
	}

	config := RateLimitConfig{
		Limit:   limit,
		Burst:   DefaultBurst,
		Timeout: DefaultTimeout,
	}

	return createLimiterHandler(func(c *gin.Context) string {
		return limiter.GetKeyRouteWithIP(c)
	}, config)
}

func createLimiterHandler(keyFunc func(*gin.Context) string, config RateLimitConfig) gin.HandlerFunc {
	go cleanupLimiters()

	return func(c *gin.Context) {
		key := keyFunc(c)

		lim, err := getLimiter(key, config)
		if err != nil {
			logger.ErrorString("Limiter", "create", err.Error())
			// Degrade open: a broken limiter must not take the site down.
			c.Next()
			return
		}

		if !lim.Allow() {
			response.JSON(c, gin.H{
				"code":    429,
				"message": "Muitas requisições, tente novamente em instantes",
				"error":   "Too Many Requests",
			})
			c.Abort()
			return
		}

		setRateLimitHeaders(c, lim)

		c.Next()
	}
}

func getLimiter(key string, config RateLimitConfig) (*rate.Limiter, error) {
	if lim, exists := limiters.Load(key); exists {
		lastCleanup.Store(key, time.Now())
		return lim.(*rate.Limiter), nil
	}

	r, err := limiter.ParseLimit(config.Limit)
	if err != nil {
		return nil, err
	}

	lim := rate.NewLimiter(rate.Limit(r.Rate), config.Burst)

	actual, _ := limiters.LoadOrStore(key, lim)
	lastCleanup.Store(key, time.Now())
	return actual.(*rate.Limiter), nil
}

func setRateLimitHeaders(c *gin.Context, lim *rate.Limiter) {
	c.Header("X-RateLimit-Limit", cast.ToString(float64(lim.Limit())))
	c.Header("X-RateLimit-Remaining", cast.ToString(int(lim.Tokens())))
	c.Header("X-RateLimit-Reset", cast.ToString(time.Now().Add(time.Second).Unix()))
}

// cleanupLimiters drops buckets idle for more than a day.
func cleanupLimiters() {
	ticker := time.NewTicker(1 * time.Hour)
	for range ticker.C {
		now := time.Now()
		limiters.Range(func(key, value interface{}) bool {
			lastAccess, _ := lastCleanup.Load(key)
			if lastAccess == nil {
				lastCleanup.Store(key, now)
				return true
			}

			if now.Sub(lastAccess.(time.Time)) > 24*time.Hour {
				limiters.Delete(key)
				lastCleanup.Delete(key)
			}
			return true
		})
	}
}
