package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"simpasar/internal/models"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *CacheService) Close() error {
	return s.client.Close()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Market snapshot caching. The payment path hits this on every dynamic
// code request, so the snapshot (static payload + due day) lives in Redis
// with a short TTL and is invalidated whenever the market row changes.

const marketSnapshotTTL = 15 * time.Minute

func (s *CacheService) CacheMarketSnapshot(ctx context.Context, snapshot *models.MarketSnapshot) error {
	if snapshot == nil {
		return errors.New("cannot cache nil market snapshot")
	}
	key := s.GenerateKey("market", "code", snapshot.MarketCode)
	return s.SetWithTTL(ctx, key, snapshot, marketSnapshotTTL)
}

func (s *CacheService) GetMarketSnapshot(ctx context.Context, marketCode string) (*models.MarketSnapshot, bool) {
	var snapshot models.MarketSnapshot
	key := s.GenerateKey("market", "code", marketCode)
	found, err := s.Get(ctx, key, &snapshot)
	if err != nil || !found {
		return nil, false
	}
	return &snapshot, true
}

func (s *CacheService) InvalidateMarket(ctx context.Context, marketCode string) error {
	return s.Delete(ctx, s.GenerateKey("market", "code", marketCode))
}
