// Command server runs the flashcard HTTP API.
//
// Flags:
//
//	--config  path to the YAML config file (default: $CONFIG_PATH or ./config.yaml)
//
// The server stops gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/langy-backend/internal/app"
)

func main() {
	configPath := pflag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config file")
	pflag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
