package grpcserver

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	stripeapp "github.com/tbeaudouin05/stripe-facade/api/services/stripe/app"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "stripefacade.v1.PaymentGateway"

// PaymentGatewayServer is the handler type registered with grpc. Every method
// takes and returns a google.protobuf.Struct.
type PaymentGatewayServer interface {
	Invoke(ctx context.Context, method string, req *structpb.Struct) (*structpb.Struct, error)
}

type handlerFunc func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

// Server adapts the facade to gRPC and HTTP.
type Server struct {
	svc stripeapp.Service
}

func New(svc stripeapp.Service) *Server { return &Server{svc: svc} }

// Invoke runs the named facade operation.
func (s *Server) Invoke(ctx context.Context, method string, req *structpb.Struct) (*structpb.Struct, error) {
	h, ok := handlers[method]
	if !ok {
		return nil, status.Errorf(codes.Unimplemented, "unknown method %s", method)
	}
	if s.svc == nil {
		return nil, status.Error(codes.Unavailable, "stripe service not initialized")
	}
	if req == nil {
		req = &structpb.Struct{}
	}
	return h(s, ctx, req)
}

// Register attaches the service to a grpc server.
func Register(r grpc.ServiceRegistrar, s *Server) {
	r.RegisterService(&ServiceDesc, s)
}

// FullMethod returns the gRPC method path for name.
func FullMethod(name string) string { return "/" + ServiceName + "/" + name }

// ServiceDesc describes the service without generated code; each method is a
// unary call on structpb.Struct.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PaymentGatewayServer)(nil),
	Methods:     methodDescs(),
	Streams:     []grpc.StreamDesc{},
	Metadata:    "stripefacade/v1/payment_gateway.proto",
}

func methodDescs() []grpc.MethodDesc {
	descs := make([]grpc.MethodDesc, 0, len(methodNames))
	for _, name := range methodNames {
		descs = append(descs, grpc.MethodDesc{MethodName: name, Handler: unaryHandler(name)})
	}
	return descs
}

func unaryHandler(name string) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		gs := srv.(PaymentGatewayServer)
		if interceptor == nil {
			return gs.Invoke(ctx, name, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(name)}
		handler := func(ctx context.Context, req any) (any, error) {
			return gs.Invoke(ctx, name, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}
