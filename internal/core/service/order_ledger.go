package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rl1809/nozama/internal/core/domain"
	"github.com/rl1809/nozama/internal/port"
)

var ErrLedgerClosed = errors.New("order ledger closed")

const recordTimeout = 5 * time.Second

// OrderLedger records fulfilled orders asynchronously. Checkouts hand records
// to a buffered queue and a pool of workers persists and publishes them.
type OrderLedger struct {
	repo      port.OrderRepository
	publisher port.OrderPublisher
	logger    *zap.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan domain.OrderRecord
	wg     sync.WaitGroup
}

// NewOrderLedger creates a ledger. repo and publisher may each be nil, in
// which case that step is skipped.
func NewOrderLedger(repo port.OrderRepository, publisher port.OrderPublisher, queueSize int, logger *zap.Logger) *OrderLedger {
	return &OrderLedger{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		queue:     make(chan domain.OrderRecord, queueSize),
	}
}

func (l *OrderLedger) Submit(ctx context.Context, record domain.OrderRecord) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return ErrLedgerClosed
	}

	select {
	case l.queue <- record:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start launches n workers draining the queue.
func (l *OrderLedger) Start(n int) {
	for i := 0; i < n; i++ {
		l.wg.Add(1)
		go func(id int) {
			defer l.wg.Done()
			l.workerLoop(id)
		}(i)
	}
	l.logger.Info("order ledger started", zap.Int("workers", n))
}

// Close stops accepting records and waits for queued ones to be processed.
func (l *OrderLedger) Close() {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.queue)
	}
	l.mu.Unlock()

	l.wg.Wait()
}

func (l *OrderLedger) workerLoop(id int) {
	for record := range l.queue {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		l.record(ctx, id, record)
		cancel()
	}
}

func (l *OrderLedger) record(ctx context.Context, worker int, record domain.OrderRecord) {
	log := l.logger.With(zap.Int("worker", worker), zap.String("order_id", record.ID))

	record.Status = domain.OrderStatusConfirmed
	record.UpdatedAt = time.Now()

	if l.repo != nil {
		if err := l.repo.SaveOrder(ctx, record); err != nil {
			log.Error("failed to save order", zap.Error(err))
			return
		}
		log.Debug("saved order")
	}

	if l.publisher != nil {
		if err := l.publisher.PublishOrderPlaced(ctx, record); err != nil {
			log.Error("failed to publish order", zap.Error(err))
			return
		}
		log.Debug("published order")
	}
}
