package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// route binds an HTTP method and path pattern to a service method.
type route struct {
	method  string
	pattern string
	rpc     string
}

var routes = []route{
	{http.MethodGet, "/v1/accounts/{id}", "FindConnectedAccount"},

	{http.MethodPost, "/v1/customers", "CreateCustomer"},
	{http.MethodGet, "/v1/customers/{id}", "FindCustomer"},
	{http.MethodPost, "/v1/customers/{id}", "UpdateCustomer"},
	{http.MethodDelete, "/v1/customers/{id}", "DeleteCustomer"},

	{http.MethodGet, "/v1/customers/{customer_id}/cards", "GetCustomerCards"},
	{http.MethodPost, "/v1/customers/{customer_id}/cards", "CreateCustomerCard"},
	{http.MethodPost, "/v1/customers/{customer_id}/cards/{card_id}", "UpdateCustomerCard"},
	{http.MethodDelete, "/v1/customers/{customer_id}/cards/{card_id}", "DeleteCustomerCard"},

	{http.MethodGet, "/v1/customers/{customer_id}/invoices", "GetInvoices"},
	{http.MethodGet, "/v1/customers/{customer_id}/invoices/upcoming", "GetUpcomingInvoices"},

	{http.MethodPost, "/v1/subscriptions", "CreateSubscription"},
	{http.MethodGet, "/v1/subscriptions/{id}", "FindSubscription"},
	{http.MethodPost, "/v1/subscriptions/{id}", "UpdateSubscription"},
	{http.MethodDelete, "/v1/subscriptions/{id}", "RemoveSubscription"},
	{http.MethodGet, "/v1/subscriptions/{id}/status", "SubscriptionStatus"},

	{http.MethodGet, "/v1/plans", "ListPlans"},
	{http.MethodPost, "/v1/plans", "CreatePlan"},
	{http.MethodGet, "/v1/plans/{id}", "GetPlan"},
	{http.MethodPost, "/v1/plans/{id}", "UpdatePlan"},
	{http.MethodDelete, "/v1/plans/{id}", "DeletePlan"},

	{http.MethodGet, "/v1/coupons", "FindAllCoupons"},
	{http.MethodGet, "/v1/coupons/{id}", "FindCoupon"},
}

// HeaderMatcher forwards X-Request-Id into gRPC metadata in addition to the
// grpc-gateway defaults.
func HeaderMatcher(key string) (string, bool) {
	if strings.EqualFold(key, "X-Request-Id") {
		return "x-request-id", true
	}
	return runtime.DefaultHeaderMatcher(key)
}

// RegisterGateway maps every service method onto its HTTP route on mux. The
// request message is the JSON body merged with query and path parameters;
// path parameters win.
func RegisterGateway(ctx context.Context, mux *runtime.ServeMux, srv *Server) error {
	for _, rt := range routes {
		if err := mux.HandlePath(rt.method, rt.pattern, srv.httpHandler(mux, rt)); err != nil {
			return fmt.Errorf("register %s %s: %w", rt.method, rt.pattern, err)
		}
	}
	return nil
}

func (s *Server) httpHandler(mux *runtime.ServeMux, rt route) runtime.HandlerFunc {
	fullMethod := FullMethod(rt.rpc)
	return func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
		inbound, outbound := runtime.MarshalerForRequest(mux, r)
		ctx, err := runtime.AnnotateIncomingContext(r.Context(), mux, r, fullMethod, runtime.WithHTTPPathPattern(rt.pattern))
		if err != nil {
			runtime.HTTPError(r.Context(), mux, outbound, w, r, err)
			return
		}

		req := &structpb.Struct{}
		if rt.method == http.MethodPost && r.Body != nil {
			if err := inbound.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
				runtime.HTTPError(ctx, mux, outbound, w, r, status.Errorf(codes.InvalidArgument, "%v", err))
				return
			}
		}
		if req.Fields == nil {
			req.Fields = map[string]*structpb.Value{}
		}
		for k, vs := range r.URL.Query() {
			if len(vs) > 0 {
				req.Fields[k] = structpb.NewStringValue(vs[0])
			}
		}
		for k, v := range pathParams {
			req.Fields[k] = structpb.NewStringValue(v)
		}

		info := &grpc.UnaryServerInfo{Server: s, FullMethod: fullMethod}
		resp, err := LoggingInterceptor(ctx, req, info, func(ctx context.Context, in any) (any, error) {
			return s.Invoke(ctx, rt.rpc, in.(*structpb.Struct))
		})
		if err != nil {
			runtime.HTTPError(ctx, mux, outbound, w, r, err)
			return
		}
		runtime.ForwardResponseMessage(ctx, mux, outbound, w, r, resp.(*structpb.Struct))
	}
}
