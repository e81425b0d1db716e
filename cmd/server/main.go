package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	bootstrap "github.com/tbeaudouin05/stripe-facade/api/bootstrap"
	config "github.com/tbeaudouin05/stripe-facade/api/config"
	router "github.com/tbeaudouin05/stripe-facade/api/router"
	grpcserver "github.com/tbeaudouin05/stripe-facade/api/services/stripe/grpc"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := bootstrap.Ensure(); err != nil {
		slog.Error("bootstrap failed", "err", err)
		os.Exit(1)
	}
	cfg := config.AppConfig

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		slog.Error("grpc listen failed", "port", cfg.GRPCPort, "err", err)
		os.Exit(1)
	}
	gs := grpc.NewServer(grpc.UnaryInterceptor(grpcserver.LoggingInterceptor))
	grpcserver.Register(gs, grpcserver.New(bootstrap.GetStripeService()))

	httpSrv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router.NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("grpc server listening", "port", cfg.GRPCPort)
		if err := gs.Serve(lis); err != nil {
			slog.Error("grpc server stopped", "err", err)
		}
	}()
	go func() {
		slog.Info("http server listening", "port", cfg.HTTPPort)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped", "err", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown failed", "err", err)
	}
	gs.GracefulStop()
}
