package port

import (
	"context"

	"github.com/rl1809/nozama/internal/core/domain"
)

type Fulfiller interface {
	// TryFulfill reserves every line of an order or none of them. ok is false
	// when at least one line was refused, errs then lists the refused lines
	TryFulfill(ctx context.Context, order domain.Order) (ok bool, errs []domain.OrderError, err error)
}
