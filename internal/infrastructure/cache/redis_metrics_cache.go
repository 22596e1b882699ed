// Package cache provides the dashboard metrics cache implementations.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/optivista/backend/internal/application/report"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const metricsKey = "dashboard:metrics"

// RedisMetricsCache caches the dashboard snapshot in Redis with a TTL. Cache
// failures degrade to a recompute, never to a request failure.
type RedisMetricsCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisMetricsCache creates a Redis-backed metrics cache
func NewRedisMetricsCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisMetricsCache {
	return &RedisMetricsCache{client: client, ttl: ttl, log: log.Named("metrics-cache")}
}

// Get returns the cached snapshot if present and fresh
func (c *RedisMetricsCache) Get(ctx context.Context) (*report.DashboardMetrics, bool) {
	data, err := c.client.Get(ctx, metricsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("metrics cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var metrics report.DashboardMetrics
	if err := json.Unmarshal(data, &metrics); err != nil {
		c.log.Warn("metrics cache payload corrupt", zap.Error(err))
		return nil, false
	}
	return &metrics, true
}

// Set stores the snapshot with the configured TTL
func (c *RedisMetricsCache) Set(ctx context.Context, metrics *report.DashboardMetrics) {
	data, err := json.Marshal(metrics)
	if err != nil {
		c.log.Warn("metrics cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, metricsKey, data, c.ttl).Err(); err != nil {
		c.log.Warn("metrics cache write failed", zap.Error(err))
	}
}
