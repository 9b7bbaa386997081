package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/spa-management/backend/internal/domain/error"
	"github.com/spa-management/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute

	rateLimitKeyPrefix = "ratelimit:login:"
)

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

// RateLimiter provides IP-based rate limiting for the login endpoint. With a
// Redis client the counters are shared across replicas; without one it falls
// back to a per-process in-memory window.
type RateLimiter struct {
	mu             sync.Mutex
	entries        map[string]*rateLimitEntry
	client         *redis.Client
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a new in-memory rate limiter with default settings.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a new in-memory rate limiter with custom settings.
func NewRateLimiterWithConfig(maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		entries:        make(map[string]*rateLimitEntry),
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// NewRedisRateLimiter creates a rate limiter whose counters live in Redis.
func NewRedisRateLimiter(client *redis.Client, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		entries:        make(map[string]*rateLimitEntry),
		client:         client,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(c.Request.Context(), clientIP) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow reports whether another attempt is permitted for the key.
func (rl *RateLimiter) allow(ctx context.Context, key string) bool {
	if rl.client != nil {
		return rl.allowRedis(ctx, key)
	}
	return rl.allowInMemory(key)
}

func (rl *RateLimiter) allowRedis(ctx context.Context, key string) bool {
	redisKey := rateLimitKeyPrefix + key

	attempts, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		// Fail open on Redis errors; login still requires valid credentials.
		slog.Warn("Rate limiter Redis error, allowing request", "error", err)
		return true
	}
	if attempts == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.windowDuration).Err(); err != nil {
			slog.Warn("Rate limiter failed to set window expiry", "error", err)
		}
	}

	return attempts <= int64(rl.maxAttempts)
}

func (rl *RateLimiter) allowInMemory(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	entry, exists := rl.entries[key]
	if !exists || now.After(entry.resetTime) {
		rl.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(rl.windowDuration),
		}
		return true
	}

	entry.attempts++
	return entry.attempts <= rl.maxAttempts
}

// Reset clears the counter for a key. Used by tests.
func (rl *RateLimiter) Reset(ctx context.Context, key string) error {
	if rl.client != nil {
		return rl.client.Del(ctx, rateLimitKeyPrefix+key).Err()
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.entries, key)
	return nil
}
