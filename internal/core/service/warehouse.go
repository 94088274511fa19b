package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/rl1809/nozama/internal/core/domain"
	"github.com/rl1809/nozama/internal/port"
)

// Warehouse fulfills orders against a shared inventory store. Reservations
// are optimistic: each line is decreased independently and, if any line is
// refused, the lines already taken are put back.
type Warehouse struct {
	store  port.InventoryStore
	logger *zap.Logger
	tracer trace.Tracer
}

func NewWarehouse(store port.InventoryStore, logger *zap.Logger, tracer trace.Tracer) *Warehouse {
	return &Warehouse{
		store:  store,
		logger: logger,
		tracer: tracer,
	}
}

// Add puts units of an item into stock.
func (w *Warehouse) Add(ctx context.Context, itemID, quantity int) error {
	if err := w.store.Increase(ctx, itemID, quantity); err != nil {
		return err
	}
	w.logger.Debug("stock added", zap.Int("item_id", itemID), zap.Int("quantity", quantity))
	return nil
}

// Remove takes units of an item out of stock.
func (w *Warehouse) Remove(ctx context.Context, itemID, quantity int) error {
	if err := w.store.Decrease(ctx, itemID, quantity); err != nil {
		return err
	}
	w.logger.Debug("stock removed", zap.Int("item_id", itemID), zap.Int("quantity", quantity))
	return nil
}

func (w *Warehouse) Stock(ctx context.Context, itemID int) (int, bool, error) {
	return w.store.Quantity(ctx, itemID)
}

func (w *Warehouse) Levels(ctx context.Context) ([]domain.StockLevel, error) {
	return w.store.Snapshot(ctx)
}

// TryFulfill attempts every line of the order before deciding. Refused lines
// are reported in order; a store failure aborts the pass and is returned as
// err. In both cases nothing reserved by this call is kept.
func (w *Warehouse) TryFulfill(ctx context.Context, order domain.Order) (bool, []domain.OrderError, error) {
	ctx, span := w.tracer.Start(ctx, "Warehouse.TryFulfill",
		trace.WithAttributes(attribute.Int("order.lines", order.Len())))
	defer span.End()

	var (
		orderErrors []domain.OrderError
		fulfilled   []domain.Line
	)

	for _, line := range order.Lines() {
		err := w.store.Decrease(ctx, line.ItemID, line.Quantity)
		if err == nil {
			fulfilled = append(fulfilled, line)
			continue
		}

		if oe, ok := toOrderError(line, err); ok {
			orderErrors = append(orderErrors, oe)
			continue
		}

		err = fmt.Errorf("reserve item %d: %w", line.ItemID, err)
		if rollbackErr := w.compensate(ctx, fulfilled); rollbackErr != nil {
			err = errors.Join(err, rollbackErr)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "store failure")
		return false, nil, err
	}

	if len(orderErrors) == 0 {
		span.SetStatus(codes.Ok, "fulfilled")
		return true, nil, nil
	}

	span.SetAttributes(attribute.Int("order.refused_lines", len(orderErrors)))
	span.SetStatus(codes.Error, "order refused")
	w.logger.Info("order refused",
		zap.Int("refused_lines", len(orderErrors)),
		zap.Int("released_lines", len(fulfilled)),
	)

	if err := w.compensate(ctx, fulfilled); err != nil {
		span.RecordError(err)
		return false, orderErrors, err
	}
	return false, orderErrors, nil
}

// compensate restores exactly what was reserved. It runs even if ctx has been
// cancelled.
func (w *Warehouse) compensate(ctx context.Context, fulfilled []domain.Line) error {
	ctx = context.WithoutCancel(ctx)

	var errs []error
	for _, line := range fulfilled {
		if err := w.store.Increase(ctx, line.ItemID, line.Quantity); err != nil {
			w.logger.Error("CRITICAL rollback failed",
				zap.Int("item_id", line.ItemID),
				zap.Int("quantity", line.Quantity),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("release item %d: %w", line.ItemID, err))
		}
	}
	return errors.Join(errs...)
}

func toOrderError(line domain.Line, err error) (domain.OrderError, bool) {
	var stockErr *domain.StockError
	if !errors.As(err, &stockErr) {
		return domain.OrderError{}, false
	}

	switch stockErr.Kind {
	case domain.KindUnknownItem:
		return domain.OrderError{ItemID: line.ItemID, Requested: line.Quantity, Kind: stockErr.Kind}, true
	case domain.KindInsufficientStock:
		return domain.OrderError{
			ItemID:    line.ItemID,
			Requested: line.Quantity,
			Available: stockErr.Available,
			Kind:      stockErr.Kind,
		}, true
	default:
		return domain.OrderError{}, false
	}
}
