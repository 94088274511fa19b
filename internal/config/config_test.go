package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/nozama/internal/core/domain"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"HTTP_ADDR", "GRPC_ADDR", "INVENTORY_BACKEND", "CART_BACKEND", "REDIS_ADDR",
		"MYSQL_DSN", "KAFKA_BROKERS", "KAFKA_TOPIC", "WORKER_COUNT", "QUEUE_SIZE",
		"LOG_LEVEL", "OTEL_ENDPOINT", "SEED_STOCK",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, ":50051", cfg.GRPCAddr)
	assert.Equal(t, BackendMemory, cfg.InventoryBackend)
	assert.Equal(t, BackendMemory, cfg.CartBackend)
	assert.False(t, cfg.UsesRedis())
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, 10, cfg.WorkerCount)
	assert.Equal(t, 10000, cfg.QueueSize)
	assert.Equal(t, []domain.StockLevel{{ItemID: 1, Quantity: 2}, {ItemID: 2, Quantity: 4}}, cfg.SeedStock)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("INVENTORY_BACKEND", "redis")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("WORKER_COUNT", "3")
	t.Setenv("SEED_STOCK", "7:10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.UsesRedis())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 3, cfg.WorkerCount)
	assert.Equal(t, []domain.StockLevel{{ItemID: 7, Quantity: 10}}, cfg.SeedStock)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"WORKER_COUNT", "zero"},
		{"QUEUE_SIZE", "-5"},
		{"CART_BACKEND", "postgres"},
		{"SEED_STOCK", "1:-2"},
		{"SEED_STOCK", "1=2"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseLine(t *testing.T) {
	item, qty, err := ParseLine(" 3 : 4 ")
	require.NoError(t, err)
	assert.Equal(t, 3, item)
	assert.Equal(t, 4, qty)

	_, _, err = ParseLine("3:x")
	assert.Error(t, err)
}
