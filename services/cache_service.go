package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/VoyageGenie/voyage-backend/logger"
	"github.com/VoyageGenie/voyage-backend/types"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CacheServiceInterface defines the contract for the itinerary snapshot
// cache used as a read fallback when the database is unreachable.
type CacheServiceInterface interface {
	GetItineraries(ctx context.Context, userID string) ([]types.Itinerary, error)
	SetItineraries(ctx context.Context, userID string, itineraries []types.Itinerary) error
	Invalidate(ctx context.Context, userID string) error
}

// CacheService keeps one JSON snapshot of each user's full itinerary list
// in Redis. Writes are best effort: a cache failure is logged, never
// surfaced to the caller's main flow.
type CacheService struct {
	redis *redis.Client
	ttl   time.Duration
	log   *zap.SugaredLogger
}

func NewCacheService(redisClient *redis.Client, ttl time.Duration) *CacheService {
	return &CacheService{
		redis: redisClient,
		ttl:   ttl,
		log:   logger.GetLogger(),
	}
}

func (s *CacheService) key(userID string) string {
	return "itineraries:" + userID
}

func (s *CacheService) GetItineraries(ctx context.Context, userID string) ([]types.Itinerary, error) {
	raw, err := s.redis.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var itineraries []types.Itinerary
	if err := json.Unmarshal(raw, &itineraries); err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (s *CacheService) SetItineraries(ctx context.Context, userID string, itineraries []types.Itinerary) error {
	raw, err := json.Marshal(itineraries)
	if err != nil {
		return err
	}

	if err := s.redis.Set(ctx, s.key(userID), raw, s.ttl).Err(); err != nil {
		s.log.Warnw("Failed to write itinerary cache", "userId", userID, "error", err)
		return err
	}
	return nil
}

func (s *CacheService) Invalidate(ctx context.Context, userID string) error {
	return s.redis.Del(ctx, s.key(userID)).Err()
}
