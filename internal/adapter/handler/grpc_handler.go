package handler

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rl1809/nozama/internal/adapter/handler/pb"
	"github.com/rl1809/nozama/internal/core/domain"
	"github.com/rl1809/nozama/internal/core/service"
	"github.com/rl1809/nozama/internal/port"
)

type GRPCHandler struct {
	pb.UnimplementedWarehouseServer
	warehouse *service.Warehouse
	nozama    *service.Nozama
	carts     port.CartStore
}

func NewGRPCHandler(warehouse *service.Warehouse, nozama *service.Nozama, carts port.CartStore) *GRPCHandler {
	return &GRPCHandler{warehouse: warehouse, nozama: nozama, carts: carts}
}

func (h *GRPCHandler) AddStock(ctx context.Context, req *pb.StockRequest) (*pb.StockReply, error) {
	if err := h.warehouse.Add(ctx, int(req.GetItemId()), int(req.GetQuantity())); err != nil {
		return nil, toStatus(err)
	}
	return h.GetStock(ctx, &pb.GetStockRequest{ItemId: req.GetItemId()})
}

func (h *GRPCHandler) RemoveStock(ctx context.Context, req *pb.StockRequest) (*pb.StockReply, error) {
	if err := h.warehouse.Remove(ctx, int(req.GetItemId()), int(req.GetQuantity())); err != nil {
		return nil, toStatus(err)
	}
	return h.GetStock(ctx, &pb.GetStockRequest{ItemId: req.GetItemId()})
}

func (h *GRPCHandler) GetStock(ctx context.Context, req *pb.GetStockRequest) (*pb.StockReply, error) {
	itemID := int(req.GetItemId())
	qty, found, err := h.warehouse.Stock(ctx, itemID)
	if err != nil {
		return nil, toStatus(err)
	}
	if !found {
		return nil, toStatus(domain.UnknownItem(itemID, 0))
	}
	return &pb.StockReply{ItemId: req.GetItemId(), Quantity: int64(qty)}, nil
}

func (h *GRPCHandler) AddToCart(ctx context.Context, req *pb.CartItemRequest) (*pb.CartReply, error) {
	shopperID, err := uuid.Parse(req.GetShopperId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid shopper id")
	}

	cart := h.carts.Cart(shopperID)
	if err := cart.Add(ctx, int(req.GetItemId()), int(req.GetQuantity())); err != nil {
		return nil, toStatus(err)
	}
	lines, err := cart.Items(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.CartReply{Lines: toPBLines(lines)}, nil
}

func (h *GRPCHandler) TryFulfill(ctx context.Context, req *pb.FulfillRequest) (*pb.OrderReply, error) {
	order, err := domain.NewOrder(fromPBLines(req.GetLines()))
	if err != nil {
		return nil, toStatus(err)
	}

	ok, orderErrors, err := h.warehouse.TryFulfill(ctx, order)
	if err != nil {
		return nil, toStatus(err)
	}
	if !ok {
		return &pb.OrderReply{
			Success: false,
			Message: domain.ErrOrderFailed.Error(),
			Errors:  toPBOrderErrors(orderErrors),
		}, nil
	}
	return &pb.OrderReply{Success: true, Message: "order fulfilled"}, nil
}

func (h *GRPCHandler) Checkout(ctx context.Context, req *pb.CheckoutRequest) (*pb.OrderReply, error) {
	shopperID, err := uuid.Parse(req.GetShopperId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid shopper id")
	}

	record, err := h.nozama.Checkout(ctx, service.Session{
		ShopperID: shopperID,
		Cart:      h.carts.Cart(shopperID),
	})
	if err != nil {
		var failed *domain.OrderFailedError
		if errors.As(err, &failed) {
			return &pb.OrderReply{
				Success: false,
				Message: domain.ErrOrderFailed.Error(),
				Errors:  toPBOrderErrors(failed.Errors),
			}, nil
		}
		return nil, toStatus(err)
	}

	return &pb.OrderReply{
		Success: true,
		Message: "order placed successfully",
		OrderId: record.ID,
	}, nil
}

func toPBLines(lines []domain.Line) []*pb.Line {
	out := make([]*pb.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, &pb.Line{ItemId: int64(l.ItemID), Quantity: int64(l.Quantity)})
	}
	return out
}

func fromPBLines(lines []*pb.Line) []domain.Line {
	out := make([]domain.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, domain.Line{ItemID: int(l.GetItemId()), Quantity: int(l.GetQuantity())})
	}
	return out
}

func toPBOrderErrors(errs []domain.OrderError) []*pb.OrderError {
	out := make([]*pb.OrderError, 0, len(errs))
	for _, e := range errs {
		out = append(out, &pb.OrderError{
			ItemId:            int64(e.ItemID),
			RequestedQuantity: int64(e.Requested),
			AvailableQuantity: int64(e.Available),
			Reason:            e.Kind.String(),
			Message:           e.String(),
		})
	}
	return out
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrUnknownItem):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Errorf(codes.Internal, "internal error: %v", err)
	}
}

// UnaryLoggingInterceptor logs every call with its outcome and latency.
func UnaryLoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.Duration("latency", time.Since(start)),
			zap.String("code", status.Code(err).String()),
		}
		if status.Code(err) == codes.Internal {
			logger.Error("grpc call failed", append(fields, zap.Error(err))...)
		} else {
			logger.Debug("grpc call", fields...)
		}
		return resp, err
	}
}
