package tests

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/rl1809/nozama/internal/adapter/storage"
	"github.com/rl1809/nozama/internal/core/domain"
	"github.com/rl1809/nozama/internal/core/service"
)

type testEnv struct {
	redis     *redis.Client
	inventory *storage.RedisInventory
	carts     *storage.RedisCartStore
	warehouse *service.Warehouse
	cleanup   func()
}

func setupTestEnv(t *testing.T) *testEnv {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	inventory := storage.NewRedisInventory(rdb)
	tracer := noop.NewTracerProvider().Tracer("integration")

	return &testEnv{
		redis:     rdb,
		inventory: inventory,
		carts:     storage.NewRedisCartStore(rdb),
		warehouse: service.NewWarehouse(inventory, zap.NewNop(), tracer),
		cleanup: func() {
			rdb.Close()
		},
	}
}

func (e *testEnv) nozama() *service.Nozama {
	return service.NewNozama(e.warehouse, zap.NewNop(), noop.NewTracerProvider().Tracer("integration"))
}

func (e *testEnv) session(t *testing.T, lines ...domain.Line) service.Session {
	t.Helper()
	shopperID := uuid.New()
	cart := e.carts.Cart(shopperID)
	for _, line := range lines {
		if err := cart.Add(context.Background(), line.ItemID, line.Quantity); err != nil {
			t.Fatalf("failed to fill cart: %v", err)
		}
	}
	t.Cleanup(func() { cart.Empty(context.Background()) })
	return service.Session{ShopperID: shopperID, Cart: cart}
}

func openMySQL(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/nozama?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := storage.NewMySQLAdapter(db).EnsureSchema(context.Background()); err != nil {
		t.Fatalf("schema setup failed: %v", err)
	}
	return db
}

func TestIntegration_CheckoutScenarios(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	ctx := context.Background()
	const itemA, itemB, missing = 910001, 910002, 910003

	reset := func() {
		env.redis.Del(ctx, "stock:910003")
		env.inventory.SetStock(ctx, itemA, 2)
		env.inventory.SetStock(ctx, itemB, 4)
	}

	t.Run("fulfillable order", func(t *testing.T) {
		reset()
		session := env.session(t, domain.Line{ItemID: itemA, Quantity: 1}, domain.Line{ItemID: itemB, Quantity: 2})

		if _, err := env.nozama().Checkout(ctx, session); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		items, _ := session.Cart.Items(ctx)
		if len(items) != 0 {
			t.Errorf("expected empty cart, got %v", items)
		}
		if qty, _, _ := env.inventory.Quantity(ctx, itemB); qty != 2 {
			t.Errorf("expected stock 2, got %d", qty)
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		reset()
		session := env.session(t, domain.Line{ItemID: itemA, Quantity: 5})

		_, err := env.nozama().Checkout(ctx, session)
		var failed *domain.OrderFailedError
		if !errors.As(err, &failed) {
			t.Fatalf("expected OrderFailedError, got %v", err)
		}
		want := domain.OrderError{ItemID: itemA, Requested: 5, Available: 2, Kind: domain.KindInsufficientStock}
		if len(failed.Errors) != 1 || failed.Errors[0] != want {
			t.Errorf("expected %+v, got %+v", want, failed.Errors)
		}

		items, _ := session.Cart.Items(ctx)
		if len(items) != 1 {
			t.Errorf("expected cart intact, got %v", items)
		}
	})

	t.Run("unknown item rolls back the rest", func(t *testing.T) {
		reset()
		session := env.session(t, domain.Line{ItemID: itemA, Quantity: 1}, domain.Line{ItemID: missing, Quantity: 1})

		_, err := env.nozama().Checkout(ctx, session)
		var failed *domain.OrderFailedError
		if !errors.As(err, &failed) {
			t.Fatalf("expected OrderFailedError, got %v", err)
		}
		if len(failed.Errors) != 1 || failed.Errors[0].ItemID != missing || failed.Errors[0].Available != 0 {
			t.Errorf("unexpected order errors: %+v", failed.Errors)
		}
		if qty, _, _ := env.inventory.Quantity(ctx, itemA); qty != 2 {
			t.Errorf("expected stock restored to 2, got %d", qty)
		}
	})
}

func TestIntegration_ConcurrentCheckoutWithLedger(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	db := openMySQL(t)
	defer db.Close()

	ctx := context.Background()
	const itemID = 910010
	initialStock := 10
	totalShoppers := 20

	env.inventory.SetStock(ctx, itemID, initialStock)

	ledger := service.NewOrderLedger(storage.NewMySQLAdapter(db), nil, 100, zap.NewNop())
	ledger.Start(3)
	nozama := env.nozama().WithLedger(ledger)

	sessions := make([]service.Session, totalShoppers)
	for i := range sessions {
		sessions[i] = env.session(t, domain.Line{ItemID: itemID, Quantity: 1})
	}

	var mu sync.Mutex
	var orderIDs []string
	var wg sync.WaitGroup

	for _, session := range sessions {
		wg.Add(1)
		go func(session service.Session) {
			defer wg.Done()
			record, err := nozama.Checkout(ctx, session)
			if err == nil {
				mu.Lock()
				orderIDs = append(orderIDs, record.ID)
				mu.Unlock()
			} else if !errors.Is(err, domain.ErrOrderFailed) {
				t.Errorf("unexpected error: %v", err)
			}
		}(session)
	}

	wg.Wait()
	ledger.Close()

	if len(orderIDs) != initialStock {
		t.Errorf("expected %d successful checkouts, got %d", initialStock, len(orderIDs))
	}

	if qty, _, _ := env.inventory.Quantity(ctx, itemID); qty != 0 {
		t.Errorf("expected Redis stock 0, got %d", qty)
	}

	repo := storage.NewMySQLAdapter(db)
	for _, id := range orderIDs {
		record, err := repo.GetOrder(ctx, id)
		if err != nil {
			t.Fatalf("failed to load order %s: %v", id, err)
		}
		if record == nil {
			t.Errorf("order %s was not recorded", id)
			continue
		}
		if record.Status != domain.OrderStatusConfirmed {
			t.Errorf("expected order %s confirmed, got %s", id, record.Status)
		}
	}

	// Cleanup
	for _, id := range orderIDs {
		db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	}
}
