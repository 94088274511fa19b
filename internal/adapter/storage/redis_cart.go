package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/nozama/internal/core/domain"
	"github.com/rl1809/nozama/internal/port"
)

// RedisCart stores a shopper's cart as a Redis hash of item ID to quantity.
type RedisCart struct {
	client *redis.Client
	key    string
}

func NewRedisCart(client *redis.Client, shopperID uuid.UUID) *RedisCart {
	return &RedisCart{client: client, key: cartKeyPrefix + shopperID.String()}
}

func (c *RedisCart) Add(ctx context.Context, itemID int, quantity int) error {
	if quantity < 1 {
		return domain.InvalidQuantity(itemID, quantity, "cannot add fewer than one item to a cart")
	}
	err := c.client.HIncrBy(ctx, c.key, strconv.Itoa(itemID), int64(quantity)).Err()
	if err != nil && strings.Contains(err.Error(), "would overflow") {
		return domain.InvalidQuantity(itemID, quantity, "cart quantity would overflow")
	}
	if err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

func (c *RedisCart) UpdateQuantity(ctx context.Context, itemID int, quantity int) error {
	if quantity < 0 {
		return domain.InvalidQuantity(itemID, quantity, "cannot set a negative cart quantity")
	}
	if quantity == 0 {
		return c.Remove(ctx, itemID)
	}
	if err := c.client.HSet(ctx, c.key, strconv.Itoa(itemID), quantity).Err(); err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	return nil
}

func (c *RedisCart) Remove(ctx context.Context, itemID int) error {
	if err := c.client.HDel(ctx, c.key, strconv.Itoa(itemID)).Err(); err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}

func (c *RedisCart) Empty(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("empty cart: %w", err)
	}
	return nil
}

func (c *RedisCart) Items(ctx context.Context) ([]domain.Line, error) {
	fields, err := c.client.HGetAll(ctx, c.key).Result()
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}

	lines := make([]domain.Line, 0, len(fields))
	for field, value := range fields {
		itemID, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parse cart item %q: %w", field, err)
		}
		quantity, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("parse cart quantity for item %d: %w", itemID, err)
		}
		if quantity <= 0 {
			continue
		}
		lines = append(lines, domain.Line{ItemID: itemID, Quantity: quantity})
	}
	sortLines(lines)
	return lines, nil
}

// RedisCartStore hands out Redis-backed carts sharing one client.
type RedisCartStore struct {
	client *redis.Client
}

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{client: client}
}

func (s *RedisCartStore) Cart(shopperID uuid.UUID) port.ShoppingCart {
	return NewRedisCart(s.client, shopperID)
}
