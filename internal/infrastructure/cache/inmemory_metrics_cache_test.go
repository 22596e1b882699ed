package cache

import (
	"context"
	"testing"
	"time"

	"github.com/optivista/backend/internal/application/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryMetricsCache_SetAndGet(t *testing.T) {
	c := NewInMemoryMetricsCache(time.Minute)
	ctx := context.Background()

	_, ok := c.Get(ctx)
	assert.False(t, ok)

	c.Set(ctx, &report.DashboardMetrics{Patients: 3})

	got, ok := c.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, 3, got.Patients)
}

func TestInMemoryMetricsCache_Expiry(t *testing.T) {
	c := NewInMemoryMetricsCache(10 * time.Millisecond)
	ctx := context.Background()

	c.Set(ctx, &report.DashboardMetrics{Patients: 3})
	time.Sleep(25 * time.Millisecond)

	_, ok := c.Get(ctx)
	assert.False(t, ok)
}

func TestInMemoryMetricsCache_ReturnsCopies(t *testing.T) {
	c := NewInMemoryMetricsCache(time.Minute)
	ctx := context.Background()

	c.Set(ctx, &report.DashboardMetrics{Patients: 3})

	first, ok := c.Get(ctx)
	require.True(t, ok)
	first.Patients = 99

	second, ok := c.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, 3, second.Patients)
}
