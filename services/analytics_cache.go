package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// AnalyticsCache keeps dashboard snapshots in Redis for a short TTL. Counts on
// the dashboard are already only dashboard-grade consistent, so serving a
// snapshot a few seconds old loses nothing. A nil client disables caching.
type AnalyticsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAnalyticsCache(rdb *redis.Client, ttl time.Duration) *AnalyticsCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &AnalyticsCache{rdb: rdb, ttl: ttl}
}

// Get unmarshals a cached snapshot into dest and reports whether it was found.
func (c *AnalyticsCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("analytics cache: corrupt entry for %s: %v", key, err)
		return false
	}
	return true
}

// Set stores a snapshot; cache write failures are logged and ignored.
func (c *AnalyticsCache) Set(ctx context.Context, key string, v interface{}) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("analytics cache: marshal failed for %s: %v", key, err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Printf("analytics cache: set failed for %s: %v", key, err)
	}
}
