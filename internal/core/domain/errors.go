package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrUnknownItem       = errors.New("unknown item")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderFailed       = errors.New("unable to fulfill order")
)

// ErrorKind tags the reason a stock operation was refused.
type ErrorKind int

const (
	KindInvalidArgument ErrorKind = iota + 1
	KindUnknownItem
	KindInsufficientStock
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindUnknownItem:
		return "unknown_item"
	case KindInsufficientStock:
		return "insufficient_stock"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindUnknownItem:
		return ErrUnknownItem
	case KindInsufficientStock:
		return ErrInsufficientStock
	default:
		return nil
	}
}

// StockError is returned by inventory and cart operations that were refused
// without changing any state.
type StockError struct {
	Kind      ErrorKind
	ItemID    int
	Requested int
	Available int
	Reason    string
}

func (e *StockError) Error() string {
	switch e.Kind {
	case KindUnknownItem:
		return fmt.Sprintf("item %d: %v", e.ItemID, ErrUnknownItem)
	case KindInsufficientStock:
		return fmt.Sprintf("item %d: %v: requested %d, available %d", e.ItemID, ErrInsufficientStock, e.Requested, e.Available)
	default:
		if e.Reason != "" {
			return fmt.Sprintf("%v: %s", ErrInvalidArgument, e.Reason)
		}
		return ErrInvalidArgument.Error()
	}
}

func (e *StockError) Unwrap() error {
	return e.Kind.sentinel()
}

// InvalidQuantity reports a quantity outside the allowed domain.
func InvalidQuantity(itemID, quantity int, reason string) *StockError {
	return &StockError{Kind: KindInvalidArgument, ItemID: itemID, Requested: quantity, Reason: reason}
}

func UnknownItem(itemID, requested int) *StockError {
	return &StockError{Kind: KindUnknownItem, ItemID: itemID, Requested: requested}
}

func InsufficientStock(itemID, requested, available int) *StockError {
	return &StockError{Kind: KindInsufficientStock, ItemID: itemID, Requested: requested, Available: available}
}

// OrderFailedError aggregates every line of an order that could not be
// fulfilled, in line order.
type OrderFailedError struct {
	Errors []OrderError
}

func (e *OrderFailedError) Error() string {
	if len(e.Errors) == 0 {
		return ErrOrderFailed.Error()
	}
	lines := make([]string, 0, len(e.Errors))
	for _, oe := range e.Errors {
		lines = append(lines, oe.String())
	}
	return strings.Join(lines, "\n")
}

func (e *OrderFailedError) Unwrap() error {
	return ErrOrderFailed
}
