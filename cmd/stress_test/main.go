package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/rl1809/nozama/internal/adapter/storage"
	"github.com/rl1809/nozama/internal/core/domain"
	"github.com/rl1809/nozama/internal/core/service"
)

const (
	itemCount     = 5
	initialStock  = 200
	totalShoppers = 500
	maxLines      = 3
	maxQuantity   = 4
)

func main() {
	ctx := context.Background()
	tracer := noop.NewTracerProvider().Tracer("stress")

	inventory := storage.NewMemoryInventory()
	carts := storage.NewMemoryCartStore()
	warehouse := service.NewWarehouse(inventory, zap.NewNop(), tracer)
	nozama := service.NewNozama(warehouse, zap.NewNop(), tracer)

	for item := 1; item <= itemCount; item++ {
		if err := warehouse.Add(ctx, item, initialStock); err != nil {
			log.Fatalf("failed to seed item %d: %v", item, err)
		}
	}

	var successCount atomic.Int32
	var failCount atomic.Int32
	var unitsSold atomic.Int64

	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalShoppers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))

			shopperID := uuid.New()
			cart := carts.Cart(shopperID)
			for n := rng.Intn(maxLines) + 1; n > 0; n-- {
				if err := cart.Add(ctx, rng.Intn(itemCount)+1, rng.Intn(maxQuantity)+1); err != nil {
					log.Fatalf("failed to fill cart: %v", err)
				}
			}

			record, err := nozama.Checkout(ctx, service.Session{ShopperID: shopperID, Cart: cart})
			switch {
			case err == nil:
				successCount.Add(1)
				unitsSold.Add(int64(record.TotalUnits()))
			case errors.Is(err, domain.ErrOrderFailed):
				failCount.Add(1)
			default:
				log.Fatalf("checkout failed unexpectedly: %v", err)
			}
		}(int64(i))
	}

	wg.Wait()
	elapsed := time.Since(start)

	levels, err := warehouse.Levels(ctx)
	if err != nil {
		log.Fatalf("failed to read stock: %v", err)
	}
	remaining := 0
	negative := false
	for _, level := range levels {
		remaining += level.Quantity
		if level.Quantity < 0 {
			negative = true
		}
	}

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Items:            %d x %d units\n", itemCount, initialStock)
	fmt.Printf("Shoppers:         %d\n", totalShoppers)
	fmt.Printf("Successful:       %d\n", successCount.Load())
	fmt.Printf("Failed:           %d\n", failCount.Load())
	fmt.Printf("Units Sold:       %d\n", unitsSold.Load())
	fmt.Printf("Units Remaining:  %d\n", remaining)
	fmt.Printf("CAS Retries:      %d\n", inventory.Retries())
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	if negative {
		fmt.Println("FAIL: Stock went negative")
	} else {
		fmt.Println("PASS: No item oversold")
	}

	if int64(remaining)+unitsSold.Load() == itemCount*initialStock {
		fmt.Println("PASS: Every unit accounted for")
	} else {
		fmt.Printf("FAIL: Expected %d units, got %d sold + %d remaining\n",
			itemCount*initialStock, unitsSold.Load(), remaining)
	}
}
