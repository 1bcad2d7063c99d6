package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/langy-backend/internal/domain"
	"github.com/heartmarshall/langy-backend/internal/service/study/sm2"
	"github.com/heartmarshall/langy-backend/pkg/ctxutil"
)

// GetSession builds a shuffled study session over the caller's due cards.
// Returns ErrEmptyCollection when the caller has no cards at all.
func (s *Service) GetSession(ctx context.Context) (domain.StudySession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.StudySession{}, domain.ErrUnauthorized
	}

	cards, err := s.cards.ListByOwner(ctx, userID)
	if err != nil {
		return domain.StudySession{}, fmt.Errorf("list cards: %w", err)
	}
	if len(cards) == 0 {
		return domain.StudySession{}, domain.ErrEmptyCollection
	}

	due := sm2.SelectDueCards(cards, s.now())
	session := sm2.BuildSession(due, s.newRand())

	s.log.DebugContext(ctx, "study session built",
		slog.String("user_id", userID.String()),
		slog.Int("cards", len(session.Cards)),
		slog.Int("deck", len(cards)),
		slog.String("mode", string(session.Mode)),
	)

	return session, nil
}
