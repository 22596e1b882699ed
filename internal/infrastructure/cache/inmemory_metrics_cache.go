package cache

import (
	"context"
	"sync"
	"time"

	"github.com/optivista/backend/internal/application/report"
)

// InMemoryMetricsCache is a process-local metrics cache for deployments
// without Redis and for tests
type InMemoryMetricsCache struct {
	mu        sync.RWMutex
	snapshot  *report.DashboardMetrics
	expiresAt time.Time
	ttl       time.Duration
}

// NewInMemoryMetricsCache creates an in-memory metrics cache
func NewInMemoryMetricsCache(ttl time.Duration) *InMemoryMetricsCache {
	return &InMemoryMetricsCache{ttl: ttl}
}

// Get returns the cached snapshot if present and fresh
func (c *InMemoryMetricsCache) Get(ctx context.Context) (*report.DashboardMetrics, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snapshot == nil || time.Now().After(c.expiresAt) {
		return nil, false
	}
	copied := *c.snapshot
	return &copied, true
}

// Set stores the snapshot with the configured TTL
func (c *InMemoryMetricsCache) Set(ctx context.Context, metrics *report.DashboardMetrics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := *metrics
	c.snapshot = &copied
	c.expiresAt = time.Now().Add(c.ttl)
}
