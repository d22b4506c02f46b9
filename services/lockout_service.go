package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockoutServiceInterface defines the contract for login lockout tracking.
type LockoutServiceInterface interface {
	// IsLocked reports whether the account is currently locked and, if so,
	// for how much longer.
	IsLocked(ctx context.Context, username string) (bool, time.Duration, error)
	// RecordFailure counts one failed login. Returns the attempts remaining
	// before lockout, or zero when this failure triggered the lock.
	RecordFailure(ctx context.Context, username string) (int, error)
	// Clear resets the failure counter after a successful login.
	Clear(ctx context.Context, username string) error
}

// LockoutService tracks consecutive failed logins per account in Redis.
// Hitting the attempt limit locks the account for the lockout duration;
// the lock expires on its own via the key TTL.
type LockoutService struct {
	redis       *redis.Client
	maxAttempts int
	lockout     time.Duration
}

func NewLockoutService(redisClient *redis.Client, maxAttempts int, lockout time.Duration) *LockoutService {
	return &LockoutService{
		redis:       redisClient,
		maxAttempts: maxAttempts,
		lockout:     lockout,
	}
}

func (s *LockoutService) key(username string) string {
	return "login_attempts:" + username
}

func (s *LockoutService) IsLocked(ctx context.Context, username string) (bool, time.Duration, error) {
	count, err := s.redis.Get(ctx, s.key(username)).Int64()
	if err != nil {
		if err == redis.Nil {
			return false, 0, nil
		}
		return false, 0, err
	}

	if count < int64(s.maxAttempts) {
		return false, 0, nil
	}

	ttl, err := s.redis.TTL(ctx, s.key(username)).Result()
	if err != nil {
		return false, 0, err
	}
	return true, ttl, nil
}

func (s *LockoutService) RecordFailure(ctx context.Context, username string) (int, error) {
	rKey := s.key(username)

	pipe := s.redis.Pipeline()
	incr := pipe.Incr(ctx, rKey)
	pipe.Expire(ctx, rKey, s.lockout)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	remaining := s.maxAttempts - int(incr.Val())
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (s *LockoutService) Clear(ctx context.Context, username string) error {
	return s.redis.Del(ctx, s.key(username)).Err()
}
