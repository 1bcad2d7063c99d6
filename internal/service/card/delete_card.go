package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/langy-backend/internal/domain"
	"github.com/heartmarshall/langy-backend/pkg/ctxutil"
)

// DeleteCard removes a card from the caller's deck.
func (s *Service) DeleteCard(ctx context.Context, input DeleteCardInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.cards.Remove(ctx, userID, input.CardID); err != nil {
		return fmt.Errorf("remove card: %w", err)
	}

	s.log.InfoContext(ctx, "card deleted",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
	)

	return nil
}
