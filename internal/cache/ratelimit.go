package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// rateLimitIPPrefix is the Redis key prefix for per-IP rate limit counters.
const rateLimitIPPrefix = "ratelimit:ip:"

// RateLimitResult contains the result of a rate limit check.
type RateLimitResult struct {
	Allowed    bool
	Remaining  int64
	ResetAt    time.Time
	RetryAfter time.Duration
}

// fixedWindowScript implements a fixed-window counter.
// Incrementing and setting the window expiry happen in one atomic
// operation; the counter resets when the window key expires.
var fixedWindowScript = redis.NewScript(`
	local key = KEYS[1]
	local limit = tonumber(ARGV[1])     -- max requests per window
	local window = tonumber(ARGV[2])    -- window length in seconds

	local count = redis.call('INCR', key)
	if count == 1 then
		redis.call('EXPIRE', key, window)
	end

	local ttl = redis.call('TTL', key)
	if ttl < 0 then
		ttl = window
	end

	local allowed = 0
	if count <= limit then
		allowed = 1
	end

	return {allowed, count, ttl}
`)

// CheckIPRateLimit checks and updates the fixed-window rate limit for a
// client IP. IPs are hashed before keying so raw addresses never reach Redis.
func (c *Cache) CheckIPRateLimit(ctx context.Context, ip string, limit int, window time.Duration) (*RateLimitResult, error) {
	key := rateLimitIPPrefix + hashIP(ip)

	result, err := fixedWindowScript.Run(ctx, c.client,
		[]string{key},
		limit, int(window.Seconds()),
	).Int64Slice()

	if err != nil {
		// The caller decides the failure policy (the middleware fails open).
		return nil, fmt.Errorf("rate limit script: %w", err)
	}

	allowed := result[0] == 1
	count := result[1]
	ttl := time.Duration(result[2]) * time.Second

	remaining := int64(limit) - count
	if remaining < 0 {
		remaining = 0
	}

	res := &RateLimitResult{
		Allowed:   allowed,
		Remaining: remaining,
		ResetAt:   time.Now().Add(ttl),
	}
	if !allowed {
		res.RetryAfter = ttl
	}

	return res, nil
}

// hashIP creates a truncated SHA256 hash of an IP address.
// This provides privacy while maintaining uniqueness.
func hashIP(ip string) string {
	hash := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(hash[:8]) // 16 hex chars
}
