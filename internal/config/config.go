package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rl1809/nozama/internal/core/domain"
)

const (
	ServiceName    = "nozama"
	ServiceVersion = "0.1.0"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

const (
	defaultHTTPAddr    = ":8080"
	defaultGRPCAddr    = ":50051"
	defaultRedisAddr   = "localhost:6379"
	defaultKafkaTopic  = "orders.placed"
	defaultWorkerCount = 10
	defaultQueueSize   = 10000
	defaultLogLevel    = "info"
	defaultSeedStock   = "1:2,2:4"
)

type Config struct {
	HTTPAddr         string
	GRPCAddr         string
	InventoryBackend string
	CartBackend      string
	RedisAddr        string
	MySQLDSN         string
	KafkaBrokers     []string
	KafkaTopic       string
	WorkerCount      int
	QueueSize        int
	LogLevel         string
	OtelEndpoint     string
	SeedStock        []domain.StockLevel
}

// Load reads configuration from the environment, falling back to defaults
// suited to a single local process.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:         getEnv("HTTP_ADDR", defaultHTTPAddr),
		GRPCAddr:         getEnv("GRPC_ADDR", defaultGRPCAddr),
		InventoryBackend: getEnv("INVENTORY_BACKEND", BackendMemory),
		CartBackend:      getEnv("CART_BACKEND", BackendMemory),
		RedisAddr:        getEnv("REDIS_ADDR", defaultRedisAddr),
		MySQLDSN:         os.Getenv("MYSQL_DSN"),
		KafkaBrokers:     splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:       getEnv("KAFKA_TOPIC", defaultKafkaTopic),
		LogLevel:         getEnv("LOG_LEVEL", defaultLogLevel),
		OtelEndpoint:     os.Getenv("OTEL_ENDPOINT"),
	}

	var err error
	if cfg.WorkerCount, err = getPositiveInt("WORKER_COUNT", defaultWorkerCount); err != nil {
		return nil, err
	}
	if cfg.QueueSize, err = getPositiveInt("QUEUE_SIZE", defaultQueueSize); err != nil {
		return nil, err
	}
	if cfg.SeedStock, err = ParseStock(getEnv("SEED_STOCK", defaultSeedStock)); err != nil {
		return nil, fmt.Errorf("SEED_STOCK: %w", err)
	}

	for name, backend := range map[string]string{
		"INVENTORY_BACKEND": cfg.InventoryBackend,
		"CART_BACKEND":      cfg.CartBackend,
	} {
		if backend != BackendMemory && backend != BackendRedis {
			return nil, fmt.Errorf("%s must be %q or %q, got %q", name, BackendMemory, BackendRedis, backend)
		}
	}

	return cfg, nil
}

// UsesRedis reports whether any component needs a Redis connection.
func (c *Config) UsesRedis() bool {
	return c.InventoryBackend == BackendRedis || c.CartBackend == BackendRedis
}

// ParseStock parses a comma separated list of item:quantity pairs.
func ParseStock(s string) ([]domain.StockLevel, error) {
	var levels []domain.StockLevel
	for _, pair := range splitList(s) {
		itemID, quantity, err := ParseLine(pair)
		if err != nil {
			return nil, err
		}
		if quantity < 0 {
			return nil, fmt.Errorf("negative stock in %q", pair)
		}
		levels = append(levels, domain.StockLevel{ItemID: itemID, Quantity: quantity})
	}
	return levels, nil
}

// ParseLine parses a single item:quantity pair.
func ParseLine(pair string) (int, int, error) {
	item, qty, ok := strings.Cut(pair, ":")
	if !ok {
		return 0, 0, fmt.Errorf("expected item:quantity, got %q", pair)
	}
	itemID, err := strconv.Atoi(strings.TrimSpace(item))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid item in %q: %w", pair, err)
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(qty))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid quantity in %q: %w", pair, err)
	}
	return itemID, quantity, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getPositiveInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
