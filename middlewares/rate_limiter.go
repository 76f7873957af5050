package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// RateLimiter counts requests per key in fixed windows. Counters live in
// Redis when a client is given, otherwise in process memory.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration

	mu        sync.Mutex
	counts    map[string]*windowCount
	nextSweep time.Time
	now       func() time.Time
}

type windowCount struct {
	count   int
	resetAt time.Time
}

func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		counts: make(map[string]*windowCount),
		now:    time.Now,
	}
}

// Allow records one request for key and reports whether it is within the
// limit. A non-positive limit disables limiting.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if rl.limit <= 0 {
		return true, nil
	}
	if rl.rdb != nil {
		return rl.allowRedis(ctx, key)
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := rl.now()
	rl.sweepLocked(now)
	wc, ok := rl.counts[key]
	if !ok || !now.Before(wc.resetAt) {
		wc = &windowCount{resetAt: now.Add(rl.window)}
		rl.counts[key] = wc
	}
	wc.count++
	return wc.count <= rl.limit, nil
}

// sweepLocked drops finished windows, at most once per window length.
func (rl *RateLimiter) sweepLocked(now time.Time) {
	if now.Before(rl.nextSweep) {
		return
	}
	for key, wc := range rl.counts {
		if !now.Before(wc.resetAt) {
			delete(rl.counts, key)
		}
	}
	rl.nextSweep = now.Add(rl.window)
}

// allowRedis counts in a fixed window keyed in Redis. A counter left
// without an expiry, e.g. after a failed EXPIRE, gets one on the next call.
func (rl *RateLimiter) allowRedis(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("rate:%s", key)

	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := rl.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		ttl = pipe.TTL(ctx, redisKey)
		return nil
	})
	if err != nil {
		return false, err
	}
	if ttl.Val() < 0 {
		if err := rl.rdb.Expire(ctx, redisKey, rl.window).Err(); err != nil {
			return false, err
		}
	}
	return incr.Val() <= int64(rl.limit), nil
}

// RateLimit rejects requests beyond the limit with 429. The key is the
// authenticated user, falling back to the client IP. Redis errors let the
// request through.
func RateLimit(rl *RateLimiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		who := c.ClientIP()
		if userID, ok := c.Get("userID"); ok {
			who = fmt.Sprint(userID)
		}

		allowed, err := rl.Allow(c.Request.Context(), scope+":"+who)
		if err != nil {
			log.WithError(err).WithField("scope", scope).Warn("Rate limiter unavailable")
			c.Next()
			return
		}
		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Please try again later."})
			c.Abort()
			return
		}
		c.Next()
	}
}
