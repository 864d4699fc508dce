package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/danmuck/gutters/internal/logging"
	"github.com/danmuck/gutters/internal/relay"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to gutterd TOML config")
	flag.Parse()

	logging.ConfigureRuntime()

	cfg := relay.DefaultConfig()
	if configPath != "" {
		loaded, err := loadServiceConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gutterd: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := relay.NewService(cfg)
	if err := svc.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "gutterd: %v\n", err)
		os.Exit(1)
	}
}
