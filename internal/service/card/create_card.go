package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/langy-backend/internal/domain"
	"github.com/heartmarshall/langy-backend/pkg/ctxutil"
)

// CreateCard adds a new, unreviewed card to the caller's deck.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Card{}, domain.ErrUnauthorized
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return domain.Card{}, err
	}

	c := domain.NewCard(userID, input.Front, input.Back)
	c.EaseFactor = s.cfg.DefaultEase

	card, err := s.cards.Insert(ctx, c)
	if err != nil {
		return domain.Card{}, fmt.Errorf("insert card: %w", err)
	}

	s.log.InfoContext(ctx, "card created",
		slog.String("user_id", userID.String()),
		slog.String("card_id", card.ID.String()),
	)

	return card, nil
}
