package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/langy-backend/internal/domain"
	"github.com/heartmarshall/langy-backend/pkg/ctxutil"
)

// ReviewCard records one review of a card and persists the new SM-2 state.
// The write is conditional on the version that was read, so a concurrent
// review of the same card fails with ErrConflict instead of being lost.
func (s *Service) ReviewCard(ctx context.Context, input ReviewCardInput) (domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Card{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Card{}, err
	}

	quality := input.quality()
	now := s.now()

	var updated domain.Card

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, err := s.cards.GetByID(txCtx, userID, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}

		next, err := s.cfg.Params.RecordReview(card, quality, now)
		if err != nil {
			return err
		}

		updated, err = s.cards.Replace(txCtx, next, card.Version)
		if err != nil {
			return fmt.Errorf("replace card: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Card{}, err
	}

	attrs := []any{
		slog.String("user_id", userID.String()),
		slog.String("card_id", updated.ID.String()),
		slog.Int("quality", int(quality)),
		slog.Int("interval", updated.Interval),
		slog.Float64("ease_factor", updated.EaseFactor),
	}
	if input.Mode != nil {
		attrs = append(attrs, slog.String("mode", string(*input.Mode)))
	}
	s.log.InfoContext(ctx, "card reviewed", attrs...)

	return updated, nil
}
