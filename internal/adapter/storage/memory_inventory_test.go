package storage

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/nozama/internal/core/domain"
)

func TestMemoryInventory_IncreaseCreatesEntry(t *testing.T) {
	ctx := context.Background()
	inv := NewMemoryInventory()

	require.NoError(t, inv.Increase(ctx, 1, 2))
	require.NoError(t, inv.Increase(ctx, 1, 3))

	qty, ok, err := inv.Quantity(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, qty)
}

func TestMemoryInventory_IncreaseZeroRegistersItem(t *testing.T) {
	ctx := context.Background()
	inv := NewMemoryInventory()

	require.NoError(t, inv.Increase(ctx, 7, 0))

	err := inv.Decrease(ctx, 7, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestMemoryInventory_NegativeQuantities(t *testing.T) {
	ctx := context.Background()
	inv := NewMemoryInventory()
	require.NoError(t, inv.Increase(ctx, 1, 4))

	err := inv.Increase(ctx, 1, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	err = inv.Decrease(ctx, 1, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	err = inv.Increase(ctx, 2, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	qty, _, _ := inv.Quantity(ctx, 1)
	assert.Equal(t, 4, qty)

	_, ok, _ := inv.Quantity(ctx, 2)
	assert.False(t, ok, "rejected increase must not create the item")
}

func TestMemoryInventory_DecreaseUnknownItem(t *testing.T) {
	inv := NewMemoryInventory()

	err := inv.Decrease(context.Background(), 3, 1)

	var stockErr *domain.StockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, domain.KindUnknownItem, stockErr.Kind)
	assert.Equal(t, 3, stockErr.ItemID)
	assert.Equal(t, 1, stockErr.Requested)
	assert.Equal(t, 0, stockErr.Available)
}

func TestMemoryInventory_DecreaseInsufficientStock(t *testing.T) {
	ctx := context.Background()
	inv := NewMemoryInventory()
	require.NoError(t, inv.Increase(ctx, 1, 2))

	err := inv.Decrease(ctx, 1, 5)

	var stockErr *domain.StockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, domain.KindInsufficientStock, stockErr.Kind)
	assert.Equal(t, 5, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available)

	qty, _, _ := inv.Quantity(ctx, 1)
	assert.Equal(t, 2, qty, "stock must be unchanged after a refused decrease")
}

func TestMemoryInventory_DecreaseToZero(t *testing.T) {
	ctx := context.Background()
	inv := NewMemoryInventory()
	require.NoError(t, inv.Increase(ctx, 1, 2))

	require.NoError(t, inv.Decrease(ctx, 1, 2))

	qty, ok, _ := inv.Quantity(ctx, 1)
	assert.True(t, ok)
	assert.Equal(t, 0, qty)
}

func TestMemoryInventory_ConcurrentDecreaseNeverOversells(t *testing.T) {
	ctx := context.Background()
	inv := NewMemoryInventory()

	initialStock := 20
	totalRequests := 200
	require.NoError(t, inv.Increase(ctx, 1, initialStock))

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := inv.Decrease(ctx, 1, 1)
			if err == nil {
				successCount.Add(1)
				return
			}
			if !errors.Is(err, domain.ErrInsufficientStock) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(initialStock), successCount.Load())
	qty, _, _ := inv.Quantity(ctx, 1)
	assert.Equal(t, 0, qty)
}

func TestMemoryInventory_ConcurrentIncreaseAndDecrease(t *testing.T) {
	ctx := context.Background()
	inv := NewMemoryInventory()
	require.NoError(t, inv.Increase(ctx, 1, 0))

	var decreased atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, inv.Increase(ctx, 1, 3))
		}()
		go func() {
			defer wg.Done()
			if inv.Decrease(ctx, 1, 2) == nil {
				decreased.Add(2)
			}
		}()
	}

	wg.Wait()

	qty, _, _ := inv.Quantity(ctx, 1)
	assert.GreaterOrEqual(t, qty, 0)
	assert.Equal(t, int64(300), decreased.Load()+int64(qty), "no update may be lost")
}

func TestMemoryInventory_Snapshot(t *testing.T) {
	ctx := context.Background()
	inv := NewMemoryInventory()
	require.NoError(t, inv.Increase(ctx, 2, 4))
	require.NoError(t, inv.Increase(ctx, 1, 2))

	levels, err := inv.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.StockLevel{
		{ItemID: 1, Quantity: 2},
		{ItemID: 2, Quantity: 4},
	}, levels)
}
