package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiterInterface defines the contract for rate limiting operations.
type RateLimiterInterface interface {
	CheckLimit(ctx context.Context, key string, limit int, duration time.Duration) (bool, time.Duration, error)
}

// RateLimitService provides fixed-window rate limiting backed by Redis.
type RateLimitService struct {
	redis     *redis.Client
	keyPrefix string
}

func NewRateLimitService(redisClient *redis.Client) *RateLimitService {
	return &RateLimitService{
		redis:     redisClient,
		keyPrefix: "rate_limit:",
	}
}

func (s *RateLimitService) CheckLimit(ctx context.Context, key string, limit int, duration time.Duration) (bool, time.Duration, error) {
	rKey := s.keyPrefix + key

	pipe := s.redis.Pipeline()
	incr := pipe.Incr(ctx, rKey)
	pipe.Expire(ctx, rKey, duration)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}

	if incr.Val() > int64(limit) {
		ttl, err := s.redis.TTL(ctx, rKey).Result()
		if err != nil {
			return false, 0, err
		}
		return false, ttl, nil
	}

	return true, 0, nil
}
