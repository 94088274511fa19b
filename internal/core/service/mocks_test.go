package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/rl1809/nozama/internal/core/domain"
)

var errStoreDown = errors.New("store unavailable")

func noopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("test")
}

// Mock InventoryStore that can be told to fail for specific items
type mockStore struct {
	mu           sync.Mutex
	stock        map[int]int
	failDecrease map[int]bool
	failIncrease map[int]bool
	increases    []domain.Line
}

func newMockStore(stock map[int]int) *mockStore {
	return &mockStore{
		stock:        stock,
		failDecrease: make(map[int]bool),
		failIncrease: make(map[int]bool),
	}
}

func (m *mockStore) Increase(ctx context.Context, itemID int, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if quantity < 0 {
		return domain.InvalidQuantity(itemID, quantity, "negative")
	}
	if m.failIncrease[itemID] {
		return errStoreDown
	}
	m.stock[itemID] += quantity
	m.increases = append(m.increases, domain.Line{ItemID: itemID, Quantity: quantity})
	return nil
}

func (m *mockStore) Decrease(ctx context.Context, itemID int, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if quantity < 0 {
		return domain.InvalidQuantity(itemID, quantity, "negative")
	}
	if m.failDecrease[itemID] {
		return errStoreDown
	}
	available, ok := m.stock[itemID]
	if !ok {
		return domain.UnknownItem(itemID, quantity)
	}
	if available < quantity {
		return domain.InsufficientStock(itemID, quantity, available)
	}
	m.stock[itemID] = available - quantity
	return nil
}

func (m *mockStore) Quantity(ctx context.Context, itemID int) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	qty, ok := m.stock[itemID]
	return qty, ok, nil
}

func (m *mockStore) Snapshot(ctx context.Context) ([]domain.StockLevel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var levels []domain.StockLevel
	for itemID, qty := range m.stock {
		levels = append(levels, domain.StockLevel{ItemID: itemID, Quantity: qty})
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].ItemID < levels[j].ItemID })
	return levels, nil
}

func (m *mockStore) get(itemID int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stock[itemID]
}

// Mock ShoppingCart standing in for the Redis-backed cart
type mockCart struct {
	mu        sync.Mutex
	items     map[int]int
	emptied   int
	failItems bool
	failEmpty bool
}

func newMockCart(items map[int]int) *mockCart {
	return &mockCart{items: items}
}

func (m *mockCart) Add(ctx context.Context, itemID int, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[itemID] += quantity
	return nil
}

func (m *mockCart) UpdateQuantity(ctx context.Context, itemID int, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[itemID] = quantity
	return nil
}

func (m *mockCart) Remove(ctx context.Context, itemID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, itemID)
	return nil
}

func (m *mockCart) Empty(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failEmpty {
		return errStoreDown
	}
	m.items = make(map[int]int)
	m.emptied++
	return nil
}

func (m *mockCart) Items(ctx context.Context) ([]domain.Line, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failItems {
		return nil, errStoreDown
	}
	lines := make([]domain.Line, 0, len(m.items))
	for itemID, qty := range m.items {
		lines = append(lines, domain.Line{ItemID: itemID, Quantity: qty})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ItemID < lines[j].ItemID })
	return lines, nil
}

// Mock Fulfiller returning canned results
type mockFulfiller struct {
	mu     sync.Mutex
	ok     bool
	errs   []domain.OrderError
	err    error
	orders []domain.Order
}

func (m *mockFulfiller) TryFulfill(ctx context.Context, order domain.Order) (bool, []domain.OrderError, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, order)
	return m.ok, m.errs, m.err
}

// Mock OrderRepository and OrderPublisher
type mockRecorder struct {
	mu        sync.Mutex
	saved     []domain.OrderRecord
	published []domain.OrderRecord
	saveErr   error
	pubErr    error
}

func (m *mockRecorder) SaveOrder(ctx context.Context, record domain.OrderRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, record)
	return nil
}

func (m *mockRecorder) GetOrder(ctx context.Context, orderID string) (*domain.OrderRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.saved {
		if r.ID == orderID {
			rec := r
			return &rec, nil
		}
	}
	return nil, nil
}

func (m *mockRecorder) PublishOrderPlaced(ctx context.Context, record domain.OrderRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pubErr != nil {
		return m.pubErr
	}
	m.published = append(m.published, record)
	return nil
}

func (m *mockRecorder) counts() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.saved), len(m.published)
}
