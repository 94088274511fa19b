// Command checkout places a single order against a small seeded warehouse.
//
//	checkout 1:1 2:2
//
// Each argument is an item:quantity pair added to a fresh cart. Malformed
// pairs are skipped.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/rl1809/nozama/internal/adapter/storage"
	"github.com/rl1809/nozama/internal/config"
	"github.com/rl1809/nozama/internal/core/domain"
	"github.com/rl1809/nozama/internal/core/service"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	tracer := noop.NewTracerProvider().Tracer("checkout")
	warehouse := service.NewWarehouse(storage.NewMemoryInventory(), zap.NewNop(), tracer)
	if err := warehouse.Add(ctx, 1, 2); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := warehouse.Add(ctx, 2, 4); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	nozama := service.NewNozama(warehouse, zap.NewNop(), tracer)

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "No order specified")
		return 1
	}

	session := service.Session{ShopperID: uuid.New(), Cart: storage.NewMemoryCart()}
	for _, arg := range args {
		itemID, quantity, err := config.ParseLine(arg)
		if err != nil {
			continue
		}
		if err := session.Cart.Add(ctx, itemID, quantity); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing order: %v\n", err)
			return 1
		}
	}

	lines, err := session.Cart.Items(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	pairs := make([]string, 0, len(lines))
	for _, line := range lines {
		pairs = append(pairs, fmt.Sprintf("%d:%d", line.ItemID, line.Quantity))
	}
	fmt.Println(strings.Join(pairs, ", "))

	if _, err := nozama.Checkout(ctx, session); err != nil {
		var failed *domain.OrderFailedError
		if errors.As(err, &failed) {
			fmt.Fprintln(os.Stderr, failed.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error placing order: %v\n", err)
		}
		return 1
	}
	fmt.Println("Order successful")
	return 0
}
