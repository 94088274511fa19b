package port

import (
	"context"

	"github.com/rl1809/nozama/internal/core/domain"
)

type OrderRepository interface {
	// SaveOrder persists a fulfilled order and its lines
	SaveOrder(ctx context.Context, record domain.OrderRecord) error

	// GetOrder retrieves an order by ID, nil when it does not exist
	GetOrder(ctx context.Context, orderID string) (*domain.OrderRecord, error)
}

type OrderPublisher interface {
	// PublishOrderPlaced announces a fulfilled order to downstream consumers
	PublishOrderPlaced(ctx context.Context, record domain.OrderRecord) error
}
