package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/nozama/internal/core/domain"
)

const (
	stockKeyPrefix = "stock:"
	cartKeyPrefix  = "cart:"
	scanBatchSize  = 100
)

// RedisInventory keeps stock levels in Redis string keys. Decrease uses
// WATCH/MULTI so a concurrent writer aborts the transaction and the
// read-check-write cycle starts over.
type RedisInventory struct {
	client *redis.Client
}

func NewRedisInventory(client *redis.Client) *RedisInventory {
	return &RedisInventory{client: client}
}

func (r *RedisInventory) Increase(ctx context.Context, itemID int, quantity int) error {
	if quantity < 0 {
		return domain.InvalidQuantity(itemID, quantity, "cannot add negative inventory")
	}
	if err := r.client.IncrBy(ctx, stockKey(itemID), int64(quantity)).Err(); err != nil {
		return fmt.Errorf("increase stock: %w", err)
	}
	return nil
}

func (r *RedisInventory) Decrease(ctx context.Context, itemID int, quantity int) error {
	if quantity < 0 {
		return domain.InvalidQuantity(itemID, quantity, "cannot remove negative inventory")
	}

	key := stockKey(itemID)
	decrease := func(tx *redis.Tx) error {
		available, err := tx.Get(ctx, key).Int()
		if errors.Is(err, redis.Nil) {
			return domain.UnknownItem(itemID, quantity)
		}
		if err != nil {
			return err
		}
		if available < quantity {
			return domain.InsufficientStock(itemID, quantity, available)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.DecrBy(ctx, key, int64(quantity))
			return nil
		})
		return err
	}

	for {
		err := r.client.Watch(ctx, decrease, key)
		if !errors.Is(err, redis.TxFailedErr) {
			var stockErr *domain.StockError
			if err != nil && !errors.As(err, &stockErr) {
				return fmt.Errorf("decrease stock: %w", err)
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("decrease stock: %w", err)
		}
	}
}

func (r *RedisInventory) Quantity(ctx context.Context, itemID int) (int, bool, error) {
	available, err := r.client.Get(ctx, stockKey(itemID)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get stock: %w", err)
	}
	return available, true, nil
}

func (r *RedisInventory) Snapshot(ctx context.Context) ([]domain.StockLevel, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, stockKeyPrefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan stock keys: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("read stock: %w", err)
	}

	levels := make([]domain.StockLevel, 0, len(keys))
	for i, key := range keys {
		raw, ok := values[i].(string)
		if !ok {
			continue // deleted between SCAN and MGET
		}
		itemID, err := strconv.Atoi(strings.TrimPrefix(key, stockKeyPrefix))
		if err != nil {
			continue
		}
		quantity, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parse stock for item %d: %w", itemID, err)
		}
		levels = append(levels, domain.StockLevel{ItemID: itemID, Quantity: quantity})
	}
	sortStockLevels(levels)
	return levels, nil
}

// SetStock overwrites an item's stock. Used to seed Redis from configuration.
func (r *RedisInventory) SetStock(ctx context.Context, itemID int, quantity int) error {
	if quantity < 0 {
		return domain.InvalidQuantity(itemID, quantity, "cannot set negative inventory")
	}
	return r.client.Set(ctx, stockKey(itemID), quantity, 0).Err()
}

func stockKey(itemID int) string {
	return stockKeyPrefix + strconv.Itoa(itemID)
}
