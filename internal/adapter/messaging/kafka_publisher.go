package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/rl1809/nozama/internal/core/domain"
)

const (
	eventTypeOrderPlaced = "OrderPlaced"
	batchTimeout         = 10 * time.Millisecond
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderPlacedEvent is the payload published for every fulfilled order.
type OrderPlacedEvent struct {
	Type       string        `json:"type"`
	OrderID    string        `json:"order_id"`
	ShopperID  string        `json:"shopper_id"`
	Lines      []domain.Line `json:"lines"`
	TotalUnits int           `json:"total_units"`
	PlacedAt   time.Time     `json:"placed_at"`
}

type KafkaOrderPublisher struct {
	writer messageWriter
}

func NewKafkaOrderPublisher(brokers []string, topic string) *KafkaOrderPublisher {
	return &KafkaOrderPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: batchTimeout,
			RequiredAcks: kafka.RequireAll,
		},
	}
}

func (p *KafkaOrderPublisher) PublishOrderPlaced(ctx context.Context, record domain.OrderRecord) error {
	payload, err := json.Marshal(OrderPlacedEvent{
		Type:       eventTypeOrderPlaced,
		OrderID:    record.ID,
		ShopperID:  record.ShopperID,
		Lines:      record.Lines,
		TotalUnits: record.TotalUnits(),
		PlacedAt:   record.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(record.ID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventTypeOrderPlaced)},
		},
	})
	if err != nil {
		return fmt.Errorf("write order event: %w", err)
	}
	return nil
}

func (p *KafkaOrderPublisher) Close() error {
	return p.writer.Close()
}
