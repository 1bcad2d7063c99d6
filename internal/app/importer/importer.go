// Package importer loads legacy decks into a user's card collection.
package importer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/langy-backend/internal/domain"
	"github.com/heartmarshall/langy-backend/internal/service/card"
)

// UserLookup resolves the owner of the imported deck.
type UserLookup interface {
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

// CardLister reports the cards a user already owns.
type CardLister interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Card, error)
}

// CardImporter stores a batch of cards for one owner.
type CardImporter interface {
	ImportCards(ctx context.Context, ownerID uuid.UUID, cards []domain.Card) (card.ImportResult, error)
}

// Result holds import statistics.
type Result struct {
	FilesProcessed int
	Parsed         int
	Invalid        int
	Inserted       int
	Skipped        int
	// ExistingCards is set when the import was refused because the user
	// already owns cards and Force was not given.
	ExistingCards int
}

// Run reads every file in paths, validates the cards and imports them for
// cfg.Username in one batch. Files are parsed concurrently; any unreadable
// file aborts the run before anything is written.
func Run(
	ctx context.Context,
	cfg Config,
	paths []string,
	users UserLookup,
	existing CardLister,
	cards CardImporter,
	log *slog.Logger,
) (Result, error) {
	var result Result

	user, err := users.GetByUsername(ctx, cfg.Username)
	if err != nil {
		return result, fmt.Errorf("user %q: %w", cfg.Username, err)
	}

	if !cfg.Force {
		owned, err := existing.ListByOwner(ctx, user.ID)
		if err != nil {
			return result, fmt.Errorf("list existing cards: %w", err)
		}
		if len(owned) > 0 {
			result.ExistingCards = len(owned)
			log.WarnContext(ctx, "user already has cards, skipping import",
				slog.String("username", user.Username),
				slog.Int("cards", len(owned)),
			)
			return result, nil
		}
	}

	parsed, err := readAll(ctx, cfg, paths)
	if err != nil {
		return result, err
	}
	result.FilesProcessed = len(paths)

	var batch []domain.Card
	for i, fileCards := range parsed {
		for _, c := range fileCards {
			result.Parsed++
			if err := Validate(c); err != nil {
				result.Invalid++
				log.WarnContext(ctx, "invalid card", slog.String("path", paths[i]), slog.String("error", err.Error()))
				continue
			}
			batch = append(batch, Map(c))
		}
	}

	if cfg.DryRun || len(batch) == 0 {
		log.InfoContext(ctx, "nothing written",
			slog.Bool("dry_run", cfg.DryRun),
			slog.Int("valid", len(batch)),
		)
		return result, nil
	}

	imported, err := cards.ImportCards(ctx, user.ID, batch)
	if err != nil {
		return result, fmt.Errorf("import cards: %w", err)
	}
	result.Inserted = imported.Inserted
	result.Skipped = imported.Skipped

	return result, nil
}

func readAll(ctx context.Context, cfg Config, paths []string) ([][]LegacyCard, error) {
	out := make([][]LegacyCard, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, cfg.Workers))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cards, err := ReadFile(path, cfg)
			if err != nil {
				return err
			}
			out[i] = cards
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
