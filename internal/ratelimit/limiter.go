package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window counter stored in Redis: at most limit hits per
// key in each window.
type Limiter struct {
	rdb    redis.Cmdable
	prefix string
	limit  int64
	window time.Duration
}

func New(rdb redis.Cmdable, prefix string, limit int, window time.Duration) *Limiter {
	return &Limiter{rdb: rdb, prefix: prefix, limit: int64(limit), window: window}
}

// Allow records one hit for key and reports whether it is within the limit,
// together with the time left until the window resets.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	redisKey := fmt.Sprintf("%s:%s", l.prefix, key)

	count, err := l.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("ratelimit: incr: %w", err)
	}

	ttl, err := l.rdb.PTTL(ctx, redisKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("ratelimit: ttl: %w", err)
	}
	// A key without expiry starts its window now.
	if count == 1 || ttl < 0 {
		if err := l.rdb.PExpire(ctx, redisKey, l.window).Err(); err != nil {
			return false, 0, fmt.Errorf("ratelimit: expire: %w", err)
		}
		ttl = l.window
	}

	return count <= l.limit, ttl, nil
}
