package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInventoryItem_Validation(t *testing.T) {
	_, err := NewInventoryItem("", "Acme", "frames", decimal.NewFromInt(100), 5, nil)
	assert.Error(t, err)

	_, err = NewInventoryItem("Frame A", "Acme", "frames", decimal.NewFromInt(-1), 5, nil)
	assert.Error(t, err)

	_, err = NewInventoryItem("Frame A", "Acme", "frames", decimal.NewFromInt(100), -1, nil)
	assert.Error(t, err)

	item, err := NewInventoryItem("Frame A", "Acme", "frames", decimal.NewFromInt(100), 5, nil)
	require.NoError(t, err)
	assert.NotNil(t, item.Specifications)
}

func TestInventoryItem_AdjustStock(t *testing.T) {
	item, err := NewInventoryItem("Frame A", "Acme", "frames", decimal.NewFromInt(100), 5, nil)
	require.NoError(t, err)

	require.NoError(t, item.AdjustStock(-3))
	assert.Equal(t, 2, item.Stock)

	err = item.AdjustStock(-3)
	assert.Error(t, err)
	assert.Equal(t, 2, item.Stock)
}

func TestInventoryItem_IsLowStock(t *testing.T) {
	item, err := NewInventoryItem("Frame A", "Acme", "frames", decimal.NewFromInt(100), 5, nil)
	require.NoError(t, err)

	assert.True(t, item.IsLowStock(5))
	assert.False(t, item.IsLowStock(4))
}
