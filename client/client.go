package main

import (
	"context"
	"fmt"
	pb "messager/infrastructure/grpc/messagerpb"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
	exitUsage   = 64
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"MESSAGER_ADDR,default=localhost:8080"`
	Token         string `env:"MESSAGER_TOKEN"`
	LogLevel      string `env:"LOG_LEVEL,default=WARN"`
}

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string) (int, error) {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return exitUsage, nil
	}

	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := grpc.NewClient(config.ServerAddress,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		pb.WithJSON(),
	)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	defer func() {
		log.Debug("Closing connection...")
		_ = conn.Close()
	}()

	c := newCLI(os.Stdout, pb.NewMessagerServiceClient(conn), pb.NewAuthServiceClient(conn), config.Token)
	if err := c.dispatch(ctx, args); err != nil {
		if err == errUsage {
			printUsage(os.Stderr)
			return exitUsage, nil
		}
		return exitRuntime, err
	}
	return exitOK, nil
}
