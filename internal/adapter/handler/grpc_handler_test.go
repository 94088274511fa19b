package handler

import (
	"context"
	"net"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/rl1809/nozama/internal/adapter/handler/pb"
)

const bufSize = 1024 * 1024

func newGRPCClient(t *testing.T, s *testServer) pb.WarehouseClient {
	t.Helper()
	listener := bufconn.Listen(bufSize)

	server := grpc.NewServer(grpc.UnaryInterceptor(UnaryLoggingInterceptor(zap.NewNop())))
	pb.RegisterWarehouseServer(server, s.grpc)
	go server.Serve(listener)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		server.Stop()
		listener.Close()
	})
	return pb.NewWarehouseClient(conn)
}

func TestGRPC_ServiceContract(t *testing.T) {
	var _ pb.WarehouseServer = (*GRPCHandler)(nil)

	svc := pb.File_api_nozama_v1_warehouse_proto.Services().ByName("Warehouse")
	require.NotNil(t, svc)
	assert.Equal(t, protoreflect.FullName(pb.Warehouse_ServiceDesc.ServiceName), svc.FullName())
	assert.Equal(t, len(pb.Warehouse_ServiceDesc.Methods), svc.Methods().Len())

	checkout := svc.Methods().ByName("Checkout")
	require.NotNil(t, checkout)
	assert.Equal(t, protoreflect.FullName("nozama.v1.OrderReply"), checkout.Output().FullName())

	wire, err := proto.Marshal(&pb.OrderReply{Success: true, OrderId: "o-1"})
	require.NoError(t, err)
	var decoded pb.OrderReply
	require.NoError(t, proto.Unmarshal(wire, &decoded))
	assert.Equal(t, "o-1", decoded.GetOrderId())
}

func TestGRPC_StockAdministration(t *testing.T) {
	s := newTestServer(t)
	client := newGRPCClient(t, s)
	ctx := context.Background()

	reply, err := client.AddStock(ctx, &pb.StockRequest{ItemId: 3, Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(4), reply.GetQuantity())

	reply, err = client.RemoveStock(ctx, &pb.StockRequest{ItemId: 3, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), reply.GetQuantity())

	reply, err = client.GetStock(ctx, &pb.GetStockRequest{ItemId: 1})
	require.NoError(t, err)
	assert.True(t, proto.Equal(&pb.StockReply{ItemId: 1, Quantity: 2}, reply), "got %v", reply)
}

func TestGRPC_StatusCodes(t *testing.T) {
	s := newTestServer(t)
	client := newGRPCClient(t, s)
	ctx := context.Background()

	_, err := client.AddStock(ctx, &pb.StockRequest{ItemId: 1, Quantity: -1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.RemoveStock(ctx, &pb.StockRequest{ItemId: 9, Quantity: 1})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.RemoveStock(ctx, &pb.StockRequest{ItemId: 1, Quantity: 3})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = client.GetStock(ctx, &pb.GetStockRequest{ItemId: 9})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.Checkout(ctx, &pb.CheckoutRequest{ShopperId: "nope"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.TryFulfill(ctx, &pb.FulfillRequest{Lines: []*pb.Line{{ItemId: 1, Quantity: 0}}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGRPC_TryFulfill(t *testing.T) {
	s := newTestServer(t)
	client := newGRPCClient(t, s)
	ctx := context.Background()

	reply, err := client.TryFulfill(ctx, &pb.FulfillRequest{Lines: []*pb.Line{
		{ItemId: 1, Quantity: 5},
		{ItemId: 3, Quantity: 1},
	}})
	require.NoError(t, err)
	assert.False(t, reply.GetSuccess())
	require.Len(t, reply.GetErrors(), 2)
	want := &pb.OrderError{
		ItemId:            1,
		RequestedQuantity: 5,
		AvailableQuantity: 2,
		Reason:            "insufficient_stock",
		Message:           "Item 1 was requested with a quantity of 5, but only 2 are available.",
	}
	assert.True(t, proto.Equal(want, reply.GetErrors()[0]), "got %v", reply.GetErrors()[0])
	assert.Equal(t, "unknown_item", reply.GetErrors()[1].GetReason())

	reply, err = client.TryFulfill(ctx, &pb.FulfillRequest{Lines: []*pb.Line{
		{ItemId: 1, Quantity: 1},
		{ItemId: 2, Quantity: 2},
	}})
	require.NoError(t, err)
	assert.True(t, reply.GetSuccess())
	assert.Empty(t, reply.GetErrors())

	stock, err := client.GetStock(ctx, &pb.GetStockRequest{ItemId: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), stock.GetQuantity())
}

func TestGRPC_TryFulfillEmptyOrder(t *testing.T) {
	s := newTestServer(t)
	client := newGRPCClient(t, s)

	reply, err := client.TryFulfill(context.Background(), &pb.FulfillRequest{})
	require.NoError(t, err)
	assert.True(t, reply.GetSuccess())
}

func TestGRPC_CartCheckout(t *testing.T) {
	s := newTestServer(t)
	client := newGRPCClient(t, s)
	ctx := context.Background()
	shopper := uuid.NewString()

	cart, err := client.AddToCart(ctx, &pb.CartItemRequest{ShopperId: shopper, ItemId: 2, Quantity: 5})
	require.NoError(t, err)
	require.Len(t, cart.GetLines(), 1)
	assert.True(t, proto.Equal(&pb.Line{ItemId: 2, Quantity: 5}, cart.GetLines()[0]))

	reply, err := client.Checkout(ctx, &pb.CheckoutRequest{ShopperId: shopper})
	require.NoError(t, err)
	assert.False(t, reply.GetSuccess())
	require.Len(t, reply.GetErrors(), 1)
	assert.Equal(t, int64(4), reply.GetErrors()[0].GetAvailableQuantity())

	cart, err = client.AddToCart(ctx, &pb.CartItemRequest{ShopperId: shopper, ItemId: 1, Quantity: 1})
	require.NoError(t, err)
	assert.Len(t, cart.GetLines(), 2, "failed checkout leaves the cart intact")

	require.NoError(t, s.carts.Cart(uuid.MustParse(shopper)).UpdateQuantity(ctx, 2, 4))

	reply, err = client.Checkout(ctx, &pb.CheckoutRequest{ShopperId: shopper})
	require.NoError(t, err)
	assert.True(t, reply.GetSuccess())
	assert.NotEmpty(t, reply.GetOrderId())

	reply, err = client.Checkout(ctx, &pb.CheckoutRequest{ShopperId: shopper})
	require.NoError(t, err, "an emptied cart checks out trivially")
	assert.True(t, reply.GetSuccess())
	assert.Empty(t, reply.GetOrderId())
	assert.Empty(t, reply.GetErrors())
}
