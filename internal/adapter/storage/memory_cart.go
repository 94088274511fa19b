package storage

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/rl1809/nozama/internal/core/domain"
	"github.com/rl1809/nozama/internal/port"
)

// MemoryCart keeps a single shopper's cart in process memory.
type MemoryCart struct {
	mu    sync.Mutex
	items map[int]int
}

func NewMemoryCart() *MemoryCart {
	return &MemoryCart{items: make(map[int]int)}
}

func (c *MemoryCart) Add(_ context.Context, itemID int, quantity int) error {
	if quantity < 1 {
		return domain.InvalidQuantity(itemID, quantity, "cannot add fewer than one item to a cart")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.items[itemID] > math.MaxInt-quantity {
		return domain.InvalidQuantity(itemID, quantity, "cart quantity would overflow")
	}
	c.items[itemID] += quantity
	return nil
}

func (c *MemoryCart) UpdateQuantity(_ context.Context, itemID int, quantity int) error {
	if quantity < 0 {
		return domain.InvalidQuantity(itemID, quantity, "cannot set a negative cart quantity")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if quantity == 0 {
		delete(c.items, itemID)
		return nil
	}
	c.items[itemID] = quantity
	return nil
}

func (c *MemoryCart) Remove(_ context.Context, itemID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, itemID)
	return nil
}

func (c *MemoryCart) Empty(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.items)
	return nil
}

func (c *MemoryCart) Items(_ context.Context) ([]domain.Line, error) {
	c.mu.Lock()
	lines := make([]domain.Line, 0, len(c.items))
	for itemID, quantity := range c.items {
		lines = append(lines, domain.Line{ItemID: itemID, Quantity: quantity})
	}
	c.mu.Unlock()

	sortLines(lines)
	return lines, nil
}

// MemoryCartStore hands out one MemoryCart per shopper.
type MemoryCartStore struct {
	carts sync.Map // uuid.UUID -> *MemoryCart
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{}
}

func (s *MemoryCartStore) Cart(shopperID uuid.UUID) port.ShoppingCart {
	if v, ok := s.carts.Load(shopperID); ok {
		return v.(*MemoryCart)
	}
	v, _ := s.carts.LoadOrStore(shopperID, NewMemoryCart())
	return v.(*MemoryCart)
}

func sortLines(lines []domain.Line) {
	sort.Slice(lines, func(i, j int) bool { return lines[i].ItemID < lines[j].ItemID })
}
