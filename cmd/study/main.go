// Command study runs one spaced-repetition session in the terminal.
//
// Usage:
//
//	study --user=ana
//
// Each card shows its prompt face; press Enter to reveal the answer and
// grade recall from 0 (blackout) to 5 (perfect). Enter q to stop.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/langy-backend/internal/app"
	"github.com/heartmarshall/langy-backend/internal/app/studycli"
	"github.com/heartmarshall/langy-backend/internal/config"
	"github.com/heartmarshall/langy-backend/internal/domain"
	"github.com/heartmarshall/langy-backend/pkg/ctxutil"
)

func main() {
	configPath := pflag.String("config", os.Getenv("CONFIG_PATH"), "path to app config file")
	username := pflag.String("user", "", "username whose deck to study")
	pflag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "Usage: study --user=NAME")
		os.Exit(1)
	}

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	// Keep the terminal readable: only warnings and errors.
	cfg.Log.Level = "warn"
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, *username); err != nil {
		logger.Error("study session failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, username string) error {
	store, err := app.OpenStore(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	user, err := store.Users.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("user %q: %w", username, err)
	}
	ctx = ctxutil.WithIdentity(ctx, ctxutil.Identity{UserID: user.ID, Username: user.Username})

	svc := app.NewServices(logger, cfg, store)
	sum, err := studycli.Run(ctx, svc.Study, os.Stdin, os.Stdout)
	if errors.Is(err, domain.ErrEmptyCollection) {
		fmt.Println("No cards yet. Add cards first.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("\nReviewed %d card(s), %d passed.\n", sum.Reviewed, sum.Passed)
	return nil
}
