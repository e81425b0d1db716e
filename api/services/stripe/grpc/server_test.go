package grpcserver

import (
	"context"
	"math"
	"net"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripe "github.com/stripe/stripe-go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	stripeapp "github.com/tbeaudouin05/stripe-facade/api/services/stripe/app"
	"github.com/tbeaudouin05/stripe-facade/api/services/stripe/gateway/mock"
)

func dialServer(t *testing.T, svc stripeapp.Service) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer(grpc.UnaryInterceptor(LoggingInterceptor))
	Register(gs, New(svc))
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func call(t *testing.T, conn *grpc.ClientConn, method string, req map[string]any) (*structpb.Struct, error) {
	t.Helper()
	in, err := structpb.NewStruct(req)
	require.NoError(t, err)
	out := &structpb.Struct{}
	err = conn.Invoke(context.Background(), FullMethod(method), in, out)
	return out, err
}

func TestServiceDesc_CoversEveryMethod(t *testing.T) {
	assert.Len(t, ServiceDesc.Methods, len(handlers))
	for _, m := range ServiceDesc.Methods {
		_, ok := handlers[m.MethodName]
		assert.True(t, ok, "no handler for %s", m.MethodName)
	}
	covered := map[string]bool{}
	for _, rt := range routes {
		covered[rt.rpc] = true
	}
	for name := range handlers {
		assert.True(t, covered[name], "no HTTP route for %s", name)
	}
}

func TestGRPC_CreatePlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := mock.NewMockStripeGateway(ctrl)
	g.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *stripe.PlanParams) (stripe.Plan, error) {
			assert.Equal(t, int64(5000), stripe.Int64Value(p.Amount))
			return stripe.Plan{ID: stripe.StringValue(p.ID), Amount: 5000, Interval: stripe.PlanIntervalMonth}, nil
		})
	conn := dialServer(t, stripeapp.NewService(g))

	out, err := call(t, conn, "CreatePlan", map[string]any{
		"name": "Test Plan X", "amount": 5000, "interval": "month", "interval_count": 1,
	})
	require.NoError(t, err)
	assert.Len(t, out.GetFields()["id"].GetStringValue(), stripeapp.PlanIDLength)
	assert.Equal(t, "month", out.GetFields()["interval"].GetStringValue())
}

func TestGRPC_InvalidQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := mock.NewMockStripeGateway(ctrl)
	g.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).Times(0)
	conn := dialServer(t, stripeapp.NewService(g))

	_, err := call(t, conn, "CreateSubscription", map[string]any{
		"customer_id": "cus_1", "plan_id": "plan_1", "quantity": 0,
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGRPC_FractionalQuantityRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := mock.NewMockStripeGateway(ctrl)
	conn := dialServer(t, stripeapp.NewService(g))

	_, err := call(t, conn, "UpdateSubscription", map[string]any{"id": "sub_1", "quantity": 1.5})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGRPC_SubscriptionStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := mock.NewMockStripeGateway(ctrl)
	g.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(stripe.Subscription{ID: "sub_1", Status: stripe.SubscriptionStatusPastDue}, nil)
	g.EXPECT().GetSubscription(gomock.Any(), "sub_2").Return(stripe.Subscription{ID: "sub_2"}, nil)
	conn := dialServer(t, stripeapp.NewService(g))

	out, err := call(t, conn, "SubscriptionStatus", map[string]any{"id": "sub_1"})
	require.NoError(t, err)
	assert.Len(t, out.GetFields(), 1)
	assert.Equal(t, "past_due", out.GetFields()["status"].GetStringValue())

	_, err = call(t, conn, "SubscriptionStatus", map[string]any{"id": "sub_2"})
	assert.Equal(t, codes.DataLoss, status.Code(err))
}

func TestGRPC_RestrictedUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := mock.NewMockStripeGateway(ctrl)
	conn := dialServer(t, stripeapp.NewService(g, stripeapp.WithRestrictedUpdates()))

	_, err := call(t, conn, "UpdateCustomer", map[string]any{"id": "cus_1", "token": "tok_visa"})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
	_, err = call(t, conn, "UpdatePlan", map[string]any{"id": "plan_1", "nickname": "Gold"})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestGRPC_RemoteErrorKeepsMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := mock.NewMockStripeGateway(ctrl)
	g.EXPECT().GetCustomer(gomock.Any(), "cus_missing").Return(stripe.Customer{}, &stripe.Error{
		Type: stripe.ErrorTypeInvalidRequest, Msg: "No such customer: cus_missing", HTTPStatusCode: 404,
	})
	conn := dialServer(t, stripeapp.NewService(g))

	_, err := call(t, conn, "FindCustomer", map[string]any{"id": "cus_missing"})
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "No such customer: cus_missing", st.Message())
}

func TestGRPC_UpdateCustomerCardFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := mock.NewMockStripeGateway(ctrl)
	g.EXPECT().UpdateCard(gomock.Any(), "card_1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, p *stripe.CardParams) (stripe.Card, error) {
			assert.Equal(t, "cus_1", stripe.StringValue(p.Customer))
			assert.Equal(t, "4", stripe.StringValue(p.ExpMonth))
			assert.Equal(t, "Berlin", stripe.StringValue(p.AddressCity))
			assert.Nil(t, p.Name)
			return stripe.Card{ID: "card_1"}, nil
		})
	conn := dialServer(t, stripeapp.NewService(g))

	_, err := call(t, conn, "UpdateCustomerCard", map[string]any{
		"customer_id": "cus_1", "card_id": "card_1", "exp_month": 4, "address_city": "Berlin",
	})
	assert.NoError(t, err)
}

func TestToStatus_Mapping(t *testing.T) {
	cases := []struct {
		httpCode int
		want     codes.Code
	}{
		{400, codes.InvalidArgument},
		{401, codes.Unauthenticated},
		{402, codes.FailedPrecondition},
		{403, codes.PermissionDenied},
		{404, codes.NotFound},
		{429, codes.ResourceExhausted},
		{500, codes.Unknown},
	}
	for _, tc := range cases {
		err := toStatus(&stripeapp.RemoteError{Err: &stripe.Error{Msg: "boom", HTTPStatusCode: tc.httpCode}})
		assert.Equal(t, tc.want, status.Code(err), "http %d", tc.httpCode)
	}
}

func TestInvoke_UnknownMethod(t *testing.T) {
	_, err := New(nil).Invoke(context.Background(), "Nope", nil)
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestIntField_Overflow(t *testing.T) {
	req, err := structpb.NewStruct(map[string]any{
		"exp_year":  float64(1 << 63),
		"max_exact": float64(1 << 62),
		"min":       float64(-1 << 63),
	})
	require.NoError(t, err)

	_, err = intField(req, "exp_year")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = cardFields(req)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	n, err := intField(req, "max_exact")
	require.NoError(t, err)
	assert.Equal(t, int64(1<<62), n)
	n, err = intField(req, "min")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), n)
}
