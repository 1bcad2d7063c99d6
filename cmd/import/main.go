// Command import loads legacy decks into a user's card collection.
//
// Usage:
//
//	import --user=ana cards.json vocab.xlsx
//
// Flags:
//
//	--config         path to the app config file (database settings)
//	--import-config  path to an import YAML config file
//	--user           username that will own the cards
//	--sheet          spreadsheet sheet to read (default: Sheet1)
//	--skip-header    treat the first spreadsheet row as a header
//	--dry-run        parse and validate without writing
//	--force          import even if the user already has cards
//	--workers        files parsed in parallel
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/langy-backend/internal/app"
	"github.com/heartmarshall/langy-backend/internal/app/importer"
	"github.com/heartmarshall/langy-backend/internal/config"
)

func main() {
	flags := pflag.NewFlagSet("import", pflag.ExitOnError)
	configPath := flags.String("config", os.Getenv("CONFIG_PATH"), "path to app config file")
	importConfigPath := flags.String("import-config", "", "path to import YAML config file")
	user := flags.String("user", "", "username that will own the cards")
	sheet := flags.String("sheet", "", "spreadsheet sheet to read")
	skipHeader := flags.Bool("skip-header", false, "treat the first spreadsheet row as a header")
	dryRun := flags.Bool("dry-run", false, "parse and validate without writing")
	force := flags.Bool("force", false, "import even if the user already has cards")
	workers := flags.Int("workers", 0, "files parsed in parallel")
	_ = flags.Parse(os.Args[1:])

	if flags.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: import --user=NAME FILE [FILE...]")
		os.Exit(1)
	}

	appCfg, err := config.LoadFrom(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load app config: %v\n", err)
		os.Exit(1)
	}
	logger := app.NewLogger(appCfg.Log)

	cfg, err := importer.LoadConfig(*importConfigPath)
	if err != nil {
		logger.Error("load import config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if flags.Changed("user") {
		cfg.Username = *user
	}
	if flags.Changed("sheet") {
		cfg.SheetName = *sheet
	}
	if flags.Changed("skip-header") {
		cfg.SkipHeader = *skipHeader
	}
	if flags.Changed("workers") {
		cfg.Workers = *workers
	}
	cfg.DryRun = cfg.DryRun || *dryRun
	cfg.Force = cfg.Force || *force

	if cfg.Username == "" {
		logger.Error("--user is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	store, err := app.OpenStore(ctx, appCfg.Database, logger)
	if err != nil {
		logger.Error("open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	svc := app.NewServices(logger, appCfg, store)

	res, err := importer.Run(ctx, *cfg, flags.Args(), store.Users, store.Cards, svc.Cards, logger)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import finished",
		slog.Int("files", res.FilesProcessed),
		slog.Int("parsed", res.Parsed),
		slog.Int("invalid", res.Invalid),
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
		slog.Int("existing", res.ExistingCards),
	)
}
