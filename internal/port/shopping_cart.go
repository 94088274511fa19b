package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/rl1809/nozama/internal/core/domain"
)

type ShoppingCart interface {
	// Add increments the quantity of an item, quantity must be at least 1
	Add(ctx context.Context, itemID int, quantity int) error

	// UpdateQuantity sets an exact quantity, zero removes the line
	UpdateQuantity(ctx context.Context, itemID int, quantity int) error

	// Remove deletes a line, it is a no-op when the item is not in the cart
	Remove(ctx context.Context, itemID int) error

	// Empty clears every line
	Empty(ctx context.Context) error

	// Items returns a snapshot of the current lines ordered by item ID
	Items(ctx context.Context) ([]domain.Line, error)
}

type CartStore interface {
	// Cart returns the cart owned by a shopper, creating it on first use
	Cart(shopperID uuid.UUID) ShoppingCart
}
