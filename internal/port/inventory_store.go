package port

import (
	"context"

	"github.com/rl1809/nozama/internal/core/domain"
)

type InventoryStore interface {
	// Increase adds stock for an item, creating the entry if absent
	Increase(ctx context.Context, itemID int, quantity int) error

	// Decrease atomically removes stock, failing with a *domain.StockError
	// when the item is unknown or has too few units
	Decrease(ctx context.Context, itemID int, quantity int) error

	// Quantity returns the current stock and whether the item exists
	Quantity(ctx context.Context, itemID int) (int, bool, error)

	// Snapshot lists every known item ordered by item ID
	Snapshot(ctx context.Context) ([]domain.StockLevel, error)
}
