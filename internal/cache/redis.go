package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	_, err = client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

const overviewKey = "report:overview"

// StoreOverview caches the overview counters for a short window so the
// dashboard does not hit the database on every refresh.
func (r *RedisClient) StoreOverview(counts map[string]int64, ttl time.Duration) error {
	jsonData, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("failed to marshal overview: %w", err)
	}
	return r.client.Set(r.ctx, overviewKey, jsonData, ttl).Err()
}

// GetOverview returns the cached counters, or (nil, nil) on a cache miss.
func (r *RedisClient) GetOverview() (map[string]int64, error) {
	jsonData, err := r.client.Get(r.ctx, overviewKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get overview: %w", err)
	}

	var counts map[string]int64
	if err := json.Unmarshal([]byte(jsonData), &counts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal overview: %w", err)
	}
	return counts, nil
}
