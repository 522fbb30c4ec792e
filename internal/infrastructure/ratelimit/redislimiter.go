// Package ratelimit throttles the public tracking redirect. The limiter
// fails open: a Redis outage must never break prospect-facing links.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"leadloft/internal/shared/logger"
)

type Limiter interface {
	// Allow reports whether the given key may proceed under the
	// per-minute and per-hour budgets.
	Allow(ctx context.Context, key string) bool
}

type RedisLimiter struct {
	client    *redis.Client
	perMinute int
	perHour   int
	log       logger.Interface
}

func NewRedisLimiter(client *redis.Client, perMinute, perHour int, log logger.Interface) *RedisLimiter {
	return &RedisLimiter{
		client:    client,
		perMinute: perMinute,
		perHour:   perHour,
		log:       log.Named("ratelimit"),
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	if !l.allowWindow(ctx, key, "1m", time.Minute, l.perMinute) {
		return false
	}
	return l.allowWindow(ctx, key, "1h", time.Hour, l.perHour)
}

func (l *RedisLimiter) allowWindow(ctx context.Context, key, suffix string, window time.Duration, limit int) bool {
	if limit <= 0 {
		return true
	}

	redisKey := fmt.Sprintf("ratelimit:%s:%s", key, suffix)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window)

	if _, err := pipe.Exec(ctx); err != nil {
		l.log.Warnw("rate limit check failed, allowing request", "key", redisKey, "error", err)
		return true
	}

	return incr.Val() <= int64(limit)
}
