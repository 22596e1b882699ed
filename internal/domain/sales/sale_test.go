package sales

import (
	"testing"

	"github.com/optivista/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSale_Defaults(t *testing.T) {
	sale, err := NewSale("patient-1", "opt-1")
	require.NoError(t, err)

	assert.Empty(t, sale.ID)
	assert.Equal(t, SaleStatusPending, sale.Status)
	assert.True(t, sale.TotalAmount.IsZero())
	assert.Empty(t, sale.Items)
}

func TestNewSale_MissingRefs(t *testing.T) {
	_, err := NewSale("", "opt-1")
	assert.Error(t, err)

	_, err = NewSale("patient-1", "")
	assert.Error(t, err)
}

func TestNewLineItem_Validation(t *testing.T) {
	_, err := NewLineItem("", 1, decimal.NewFromInt(10))
	assert.Error(t, err)

	_, err = NewLineItem("Frame A", 0, decimal.NewFromInt(10))
	assert.Error(t, err)

	_, err = NewLineItem("Frame A", 1, decimal.NewFromInt(-1))
	assert.Error(t, err)
}

func TestSale_AddItem_RecomputesTotal(t *testing.T) {
	sale, err := NewSale("patient-1", "opt-1")
	require.NoError(t, err)

	require.NoError(t, sale.AddItem("Frame A", 1, decimal.RequireFromString("150.00")))
	require.NoError(t, sale.AddItem("Lens B", 2, decimal.RequireFromString("45.00")))

	assert.True(t, sale.TotalAmount.Equal(decimal.RequireFromString("240.00")),
		"expected total 240.00, got %s", sale.TotalAmount)
	assert.True(t, sale.Items[1].Amount.Equal(decimal.RequireFromString("90.00")))
}

func TestSale_RemoveItem_RecomputesTotal(t *testing.T) {
	sale, err := NewSale("patient-1", "opt-1")
	require.NoError(t, err)
	require.NoError(t, sale.AddItem("Frame A", 1, decimal.RequireFromString("150.00")))
	require.NoError(t, sale.AddItem("Lens B", 2, decimal.RequireFromString("45.00")))

	require.NoError(t, sale.RemoveItem(0))

	assert.Len(t, sale.Items, 1)
	assert.True(t, sale.TotalAmount.Equal(decimal.RequireFromString("90.00")))

	err = sale.RemoveItem(5)
	assert.Error(t, err)
}

func TestSale_AddItem_RejectedInTerminalStates(t *testing.T) {
	for _, terminal := range []SaleStatus{SaleStatusDelivered, SaleStatusCancelled} {
		sale, err := NewSale("patient-1", "opt-1")
		require.NoError(t, err)
		require.NoError(t, sale.AddItem("Frame A", 1, decimal.NewFromInt(100)))
		sale.Status = terminal

		err = sale.AddItem("Lens B", 1, decimal.NewFromInt(50))
		assert.ErrorIs(t, err, shared.ErrInvalidStateTransition)
		assert.Len(t, sale.Items, 1)
		assert.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(100)))
	}
}

func TestSaleStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    SaleStatus
		to      SaleStatus
		allowed bool
	}{
		{SaleStatusPending, SaleStatusPreparing, true},
		{SaleStatusPending, SaleStatusCancelled, true},
		{SaleStatusPending, SaleStatusReady, false},
		{SaleStatusPending, SaleStatusDelivered, false},
		{SaleStatusPreparing, SaleStatusReady, true},
		{SaleStatusPreparing, SaleStatusCancelled, true},
		{SaleStatusPreparing, SaleStatusDelivered, false},
		{SaleStatusReady, SaleStatusDelivered, true},
		{SaleStatusReady, SaleStatusCancelled, true},
		{SaleStatusReady, SaleStatusPending, false},
		{SaleStatusDelivered, SaleStatusCancelled, false},
		{SaleStatusCancelled, SaleStatusPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestSale_TransitionTo_SetsTimestamps(t *testing.T) {
	sale, err := NewSale("patient-1", "opt-1")
	require.NoError(t, err)

	require.NoError(t, sale.TransitionTo(SaleStatusPreparing))
	require.NoError(t, sale.TransitionTo(SaleStatusReady))
	require.NotNil(t, sale.ReadyAt)
	assert.Nil(t, sale.DeliveredAt)

	require.NoError(t, sale.TransitionTo(SaleStatusDelivered))
	require.NotNil(t, sale.DeliveredAt)
}

func TestSale_TransitionTo_Invalid(t *testing.T) {
	sale, err := NewSale("patient-1", "opt-1")
	require.NoError(t, err)

	err = sale.TransitionTo(SaleStatusDelivered)
	assert.ErrorIs(t, err, shared.ErrInvalidStateTransition)
	assert.Equal(t, SaleStatusPending, sale.Status)

	err = sale.TransitionTo(SaleStatus("bogus"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, shared.ErrInvalidStateTransition)
}

func TestSale_CancelFromAnyNonDeliveredState(t *testing.T) {
	for _, from := range []SaleStatus{SaleStatusPending, SaleStatusPreparing, SaleStatusReady} {
		sale, err := NewSale("patient-1", "opt-1")
		require.NoError(t, err)
		sale.Status = from

		require.NoError(t, sale.TransitionTo(SaleStatusCancelled))
		assert.NotNil(t, sale.CancelledAt)
	}
}

func TestSale_DistinctProductNames(t *testing.T) {
	sale, err := NewSale("patient-1", "opt-1")
	require.NoError(t, err)
	require.NoError(t, sale.AddItem("Frame A", 1, decimal.NewFromInt(150)))
	require.NoError(t, sale.AddItem("Lens B", 2, decimal.NewFromInt(45)))
	require.NoError(t, sale.AddItem("Frame A", 1, decimal.NewFromInt(150)))

	assert.Equal(t, []string{"Frame A", "Lens B"}, sale.DistinctProductNames())
}
