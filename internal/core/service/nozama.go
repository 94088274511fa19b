package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/rl1809/nozama/internal/core/domain"
	"github.com/rl1809/nozama/internal/port"
)

// Session ties a shopper to the cart they are checking out.
type Session struct {
	ShopperID uuid.UUID
	Cart      port.ShoppingCart
}

// Nozama checks out carts against a warehouse.
type Nozama struct {
	warehouse port.Fulfiller
	ledger    *OrderLedger
	logger    *zap.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

func NewNozama(warehouse port.Fulfiller, logger *zap.Logger, tracer trace.Tracer) *Nozama {
	return &Nozama{
		warehouse: warehouse,
		logger:    logger,
		tracer:    tracer,
		now:       time.Now,
	}
}

// WithLedger makes every successful checkout produce an order record.
func (n *Nozama) WithLedger(ledger *OrderLedger) *Nozama {
	n.ledger = ledger
	return n
}

// Checkout turns the session's cart into an order and fulfills it. On
// success the cart is emptied; if any line cannot be fulfilled a
// *domain.OrderFailedError is returned and the cart is left as it was.
func (n *Nozama) Checkout(ctx context.Context, session Session) (domain.OrderRecord, error) {
	ctx, span := n.tracer.Start(ctx, "Nozama.Checkout",
		trace.WithAttributes(attribute.String("shopper.id", session.ShopperID.String())))
	defer span.End()

	lines, err := session.Cart.Items(ctx)
	if err != nil {
		return domain.OrderRecord{}, n.fail(span, fmt.Errorf("read cart: %w", err))
	}
	order, err := domain.NewOrder(lines)
	if err != nil {
		return domain.OrderRecord{}, n.fail(span, err)
	}

	ok, orderErrors, err := n.warehouse.TryFulfill(ctx, order)
	if err != nil {
		return domain.OrderRecord{}, n.fail(span, fmt.Errorf("fulfill order: %w", err))
	}
	if !ok {
		n.logger.Info("checkout refused",
			zap.String("shopper_id", session.ShopperID.String()),
			zap.Int("refused_lines", len(orderErrors)),
		)
		return domain.OrderRecord{}, n.fail(span, &domain.OrderFailedError{Errors: orderErrors})
	}

	now := n.now()
	record := domain.OrderRecord{
		ShopperID: session.ShopperID.String(),
		Lines:     order.Lines(),
		Status:    domain.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// An empty cart checks out trivially and leaves nothing to record.
	if order.Len() > 0 {
		record.ID = uuid.NewString()
		span.SetAttributes(attribute.String("order.id", record.ID))

		if n.ledger != nil {
			if err := n.ledger.Submit(ctx, record); err != nil {
				n.logger.Warn("order not recorded", zap.String("order_id", record.ID), zap.Error(err))
			}
		}
	}

	if err := session.Cart.Empty(ctx); err != nil {
		n.logger.Error("order fulfilled but cart not emptied",
			zap.String("order_id", record.ID),
			zap.String("shopper_id", record.ShopperID),
			zap.Error(err),
		)
		return record, n.fail(span, fmt.Errorf("empty cart after order %s: %w", record.ID, err))
	}

	n.logger.Info("checkout complete",
		zap.String("order_id", record.ID),
		zap.String("shopper_id", record.ShopperID),
		zap.Int("units", record.TotalUnits()),
	)
	span.SetStatus(codes.Ok, "order placed")
	return record, nil
}

func (n *Nozama) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
