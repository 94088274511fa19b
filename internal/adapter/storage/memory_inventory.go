package storage

import (
	"context"
	"math"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rl1809/nozama/internal/core/domain"
)

// MemoryInventory is a process-local inventory store. Quantities are only
// changed through atomic add and compare-and-swap; no lock is ever taken.
type MemoryInventory struct {
	items   sync.Map // int -> *atomic.Int64
	retries atomic.Uint64
}

func NewMemoryInventory() *MemoryInventory {
	return &MemoryInventory{}
}

func (m *MemoryInventory) Increase(_ context.Context, itemID int, quantity int) error {
	if quantity < 0 {
		return domain.InvalidQuantity(itemID, quantity, "cannot add negative inventory")
	}

	counter := m.counter(itemID)
	for {
		current := counter.Load()
		if current > math.MaxInt64-int64(quantity) {
			return domain.InvalidQuantity(itemID, quantity, "stock would overflow")
		}
		if counter.CompareAndSwap(current, current+int64(quantity)) {
			return nil
		}
		m.retries.Add(1)
	}
}

// Decrease subtracts quantity from the item's stock. It reads the current
// value, checks it, and swaps in the new value only if nothing changed in
// between; a lost race restarts the whole cycle with a fresh read.
func (m *MemoryInventory) Decrease(_ context.Context, itemID int, quantity int) error {
	if quantity < 0 {
		return domain.InvalidQuantity(itemID, quantity, "cannot remove negative inventory")
	}

	v, ok := m.items.Load(itemID)
	if !ok {
		return domain.UnknownItem(itemID, quantity)
	}
	counter := v.(*atomic.Int64)

	for {
		available := counter.Load()
		if available < int64(quantity) {
			return domain.InsufficientStock(itemID, quantity, int(available))
		}
		if counter.CompareAndSwap(available, available-int64(quantity)) {
			return nil
		}
		m.retries.Add(1)
		runtime.Gosched()
	}
}

func (m *MemoryInventory) Quantity(_ context.Context, itemID int) (int, bool, error) {
	v, ok := m.items.Load(itemID)
	if !ok {
		return 0, false, nil
	}
	return int(v.(*atomic.Int64).Load()), true, nil
}

func (m *MemoryInventory) Snapshot(_ context.Context) ([]domain.StockLevel, error) {
	var levels []domain.StockLevel
	m.items.Range(func(key, value any) bool {
		levels = append(levels, domain.StockLevel{
			ItemID:   key.(int),
			Quantity: int(value.(*atomic.Int64).Load()),
		})
		return true
	})
	sortStockLevels(levels)
	return levels, nil
}

// Retries reports how many compare-and-swap attempts lost a race.
func (m *MemoryInventory) Retries() uint64 {
	return m.retries.Load()
}

func (m *MemoryInventory) counter(itemID int) *atomic.Int64 {
	if v, ok := m.items.Load(itemID); ok {
		return v.(*atomic.Int64)
	}
	v, _ := m.items.LoadOrStore(itemID, new(atomic.Int64))
	return v.(*atomic.Int64)
}

func sortStockLevels(levels []domain.StockLevel) {
	sort.Slice(levels, func(i, j int) bool { return levels[i].ItemID < levels[j].ItemID })
}
