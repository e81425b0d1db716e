package grpcserver

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor logs one line per call with the method, resulting code
// and latency.
func LoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	attrs := []any{
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	}
	if id := requestID(ctx); id != "" {
		attrs = append(attrs, "request_id", id)
	}
	if err != nil {
		slog.Warn("rpc failed", append(attrs, "err", err)...)
	} else {
		slog.Info("rpc completed", attrs...)
	}
	return resp, err
}

func requestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if v := md.Get("x-request-id"); len(v) > 0 {
		return v[0]
	}
	return ""
}
