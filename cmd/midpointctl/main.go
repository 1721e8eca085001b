package main

import (
	"context"
	"fmt"
	"midpoint-service/internal/app"
	"midpoint-service/internal/cli"
	"midpoint-service/internal/config"
	"os"
	"os/signal"
	"syscall"
)

var version = "dev"

func main() {
	config.LoadEnv()

	deps := cli.Dependencies{
		Open: func(ctx context.Context) (*app.App, error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, err
			}
			return app.New(ctx, cfg)
		},
		Version: version,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(deps).ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
