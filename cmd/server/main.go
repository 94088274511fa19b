package main

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/rl1809/nozama/internal/adapter/handler"
	"github.com/rl1809/nozama/internal/adapter/handler/pb"
	"github.com/rl1809/nozama/internal/adapter/messaging"
	"github.com/rl1809/nozama/internal/adapter/storage"
	"github.com/rl1809/nozama/internal/config"
	"github.com/rl1809/nozama/internal/core/service"
	"github.com/rl1809/nozama/internal/platform/observability"
	"github.com/rl1809/nozama/internal/port"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := observability.SetupTracing(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()
	tracer := observability.Tracer()

	// Redis
	var rdb *redis.Client
	if cfg.UsesRedis() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			PoolSize: 100,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return err
		}
		defer rdb.Close()
		logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	}

	var store port.InventoryStore
	var redisInventory *storage.RedisInventory
	if cfg.InventoryBackend == config.BackendRedis {
		redisInventory = storage.NewRedisInventory(rdb)
		store = redisInventory
	} else {
		store = storage.NewMemoryInventory()
	}

	var carts port.CartStore
	if cfg.CartBackend == config.BackendRedis {
		carts = storage.NewRedisCartStore(rdb)
	} else {
		carts = storage.NewMemoryCartStore()
	}

	warehouse := service.NewWarehouse(store, logger, tracer)

	// Seed stock
	for _, level := range cfg.SeedStock {
		if redisInventory != nil {
			err = redisInventory.SetStock(ctx, level.ItemID, level.Quantity)
		} else {
			err = warehouse.Add(ctx, level.ItemID, level.Quantity)
		}
		if err != nil {
			return err
		}
		logger.Info("seeded stock", zap.Int("item_id", level.ItemID), zap.Int("quantity", level.Quantity))
	}

	// Order ledger
	var repo port.OrderRepository
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return err
		}
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			return err
		}
		mysqlAdapter := storage.NewMySQLAdapter(db)
		if err := mysqlAdapter.EnsureSchema(ctx); err != nil {
			return err
		}
		repo = mysqlAdapter
		logger.Info("connected to mysql")
	}

	var publisher port.OrderPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := messaging.NewKafkaOrderPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		logger.Info("publishing orders to kafka", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	}

	nozama := service.NewNozama(warehouse, logger, tracer)
	var ledger *service.OrderLedger
	if repo != nil || publisher != nil {
		ledger = service.NewOrderLedger(repo, publisher, cfg.QueueSize, logger)
		ledger.Start(cfg.WorkerCount)
		nozama = nozama.WithLedger(ledger)
		logger.Info("started order ledger", zap.Int("workers", cfg.WorkerCount))
	}

	// gRPC server
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLoggingInterceptor(logger)))
	pb.RegisterWarehouseServer(grpcServer, handler.NewGRPCHandler(warehouse, nozama, carts))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}

	go func() {
		logger.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("gRPC server error", zap.Error(err))
		}
	}()

	// HTTP server
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.NewHTTPHandler(warehouse, nozama, carts, logger).Routes(),
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown failed", zap.Error(err))
	}
	logger.Info("HTTP server stopped")

	grpcServer.GracefulStop()
	logger.Info("gRPC server stopped")

	// drain pending orders before connections close
	if ledger != nil {
		ledger.Close()
		logger.Info("order ledger stopped")
	}
	return nil
}
