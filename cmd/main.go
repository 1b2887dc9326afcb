package main

import (
	"context"
	"fmt"
	"messager/auth"
	"messager/infrastructure/gateway"
	pb "messager/infrastructure/grpc/messagerpb"
	"messager/infrastructure/grpc/server"
	"messager/internal"
	"messager/observability"
	"messager/repositories"
	"messager/services"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until a signal or a server failure.
// Returning instead of exiting lets the deferred cleanups run.
func run() error {
	// A missing .env file is fine, the environment may already be set
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	monitor := observability.NewMonitor(log)
	go monitor.Listen(ctx, config.MetricInterval)

	issuer := auth.NewTokenIssuer(config.JWTSecret, config.AuthTokenDuration)
	store := repositories.NewStore(db, log)
	messagerService := services.NewMessagerService(log, store, monitor)
	authService := services.NewAuthService(log, repositories.NewIdentityRepository(db), issuer)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(auth.AuthInterceptor(issuer, pb.PublicMethods...)))
	pb.RegisterMessagerServiceServer(s, server.NewMessagerServer(log, messagerService))
	pb.RegisterAuthServiceServer(s, server.NewAuthServer(log, authService))

	httpServer := &http.Server{
		Addr: fmt.Sprintf("%s:%d", config.Host, config.GatewayPort),
		Handler: gateway.NewGateway(log, messagerService, authService, issuer, monitor).
			Handler(config.Origins()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 2)
	go func() {
		log.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()
	go func() {
		log.Info("Starting HTTP gateway", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("gateway error: %w", err)
		}
	}()

	var debugServer *http.Server
	if config.DebugPort > 0 {
		debugServer = internal.StartDebugServer(log, db, config.DebugPort, func() any { return monitor.GetLatest() })
	}

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("gateway shutdown failed", "error", err)
	}
	if debugServer != nil {
		_ = debugServer.Shutdown(shutdownCtx)
	}
	s.GracefulStop()
	log.Info("Program stopped cleanly", "stats", monitor.GetLatest())

	return nil
}
