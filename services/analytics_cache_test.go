package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Pending int64 `json:"pending"`
	Total   int64 `json:"total"`
}

func newTestCache(t *testing.T, ttl time.Duration) (*AnalyticsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewAnalyticsCache(rdb, ttl), mr
}

func TestAnalyticsCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	var missed snapshot
	require.False(t, cache.Get(ctx, "analytics:admin:today", &missed))

	cache.Set(ctx, "analytics:admin:today", snapshot{Pending: 3, Total: 12})

	var got snapshot
	require.True(t, cache.Get(ctx, "analytics:admin:today", &got))
	assert.Equal(t, int64(3), got.Pending)
	assert.Equal(t, int64(12), got.Total)
}

func TestAnalyticsCacheExpires(t *testing.T) {
	cache, mr := newTestCache(t, time.Second)
	ctx := context.Background()

	cache.Set(ctx, "analytics:admin:week", snapshot{Total: 1})
	mr.FastForward(2 * time.Second)

	var got snapshot
	assert.False(t, cache.Get(ctx, "analytics:admin:week", &got))
}

func TestAnalyticsCacheNilClientDegrades(t *testing.T) {
	cache := NewAnalyticsCache(nil, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "analytics:admin:today", snapshot{Total: 5})

	var got snapshot
	assert.False(t, cache.Get(ctx, "analytics:admin:today", &got))
}

func TestAnalyticsCacheIgnoresCorruptEntries(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set("analytics:admin:today", "not-json"))

	var got snapshot
	assert.False(t, cache.Get(context.Background(), "analytics:admin:today", &got))
}
