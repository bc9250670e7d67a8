// Package ratelimit throttles sensitive endpoints per client IP using a
// sliding window kept in Redis.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// Limiter counts requests per IP and purpose. A Limiter without a Redis
// client allows everything.
type Limiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewLimiter(client *redis.Client, limit int, window time.Duration) *Limiter {
	return &Limiter{
		client: client,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Enabled reports whether requests are actually being counted
func (l *Limiter) Enabled() bool {
	return l != nil && l.client != nil && l.limit > 0
}

// CheckIPRateLimitWithPurpose reports whether ip already used up its
// allowance for purpose within the current window.
func (l *Limiter) CheckIPRateLimitWithPurpose(ctx context.Context, ip, purpose string) (bool, error) {
	if !l.Enabled() {
		return false, nil
	}

	key := ipKey(ip, purpose)
	windowStart := l.now().Add(-l.window)

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	count := pipe.ZCard(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}

	return int(count.Val()) >= l.limit, nil
}

// RecordIPRequestWithPurpose adds one request to ip's window for purpose
func (l *Limiter) RecordIPRequestWithPurpose(ctx context.Context, ip, purpose string) error {
	if !l.Enabled() {
		return nil
	}

	key := ipKey(ip, purpose)
	now := l.now()

	pipe := l.client.Pipeline()
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: strconv.FormatInt(now.UnixNano(), 10),
	})
	pipe.Expire(ctx, key, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record request: %w", err)
	}

	return nil
}

func ipKey(ip, purpose string) string {
	return fmt.Sprintf("%sip:%s:%s", keyPrefix, purpose, ip)
}
