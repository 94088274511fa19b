package domain

import (
	"fmt"
	"time"
)

// Line is a single (item, quantity) pair of a cart or an order.
type Line struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// Order is an immutable snapshot of the lines a shopper is checking out.
type Order struct {
	lines []Line
}

// NewOrder copies lines into a new Order. Every line must request at least
// one unit.
func NewOrder(lines []Line) (Order, error) {
	copied := make([]Line, len(lines))
	for i, l := range lines {
		if l.Quantity < 1 {
			return Order{}, InvalidQuantity(l.ItemID, l.Quantity, "order lines must request at least one unit")
		}
		copied[i] = l
	}
	return Order{lines: copied}, nil
}

// Lines returns a copy of the order lines in the order they were given.
func (o Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

func (o Order) Len() int {
	return len(o.lines)
}

// OrderError explains why one line of an order could not be fulfilled.
// Available is 0 when the item does not exist.
type OrderError struct {
	ItemID    int       `json:"item_id"`
	Requested int       `json:"requested_quantity"`
	Available int       `json:"available_quantity"`
	Kind      ErrorKind `json:"-"`
}

func (e OrderError) String() string {
	return fmt.Sprintf("Item %d was requested with a quantity of %d, but only %d are available.", e.ItemID, e.Requested, e.Available)
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
)

// OrderRecord is the ledger entry written after a successful checkout.
type OrderRecord struct {
	ID        string
	ShopperID string
	Lines     []Line
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalUnits sums the quantities across all lines.
func (r OrderRecord) TotalUnits() int {
	total := 0
	for _, l := range r.Lines {
		total += l.Quantity
	}
	return total
}
