package card

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/langy-backend/internal/domain"
)

// ImportResult summarizes a bulk import.
type ImportResult struct {
	Inserted int
	Skipped  int
}

// ImportCards inserts cards into ownerID's deck in a single transaction.
// Review state carried by the cards is kept, with the ease factor clamped
// to the configured floor. Cards with an empty or oversized face are skipped.
func (s *Service) ImportCards(ctx context.Context, ownerID uuid.UUID, cards []domain.Card) (ImportResult, error) {
	if ownerID == uuid.Nil {
		return ImportResult{}, domain.NewValidationError("owner_id", "required")
	}

	var result ImportResult

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for i := range cards {
			c, ok := s.prepareImported(ownerID, cards[i])
			if !ok {
				result.Skipped++
				continue
			}
			if _, err := s.cards.Insert(txCtx, c); err != nil {
				return fmt.Errorf("insert card %d: %w", i, err)
			}
			result.Inserted++
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	s.log.InfoContext(ctx, "cards imported",
		slog.String("user_id", ownerID.String()),
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}

func (s *Service) prepareImported(ownerID uuid.UUID, c domain.Card) (domain.Card, bool) {
	c.Front = strings.TrimSpace(c.Front)
	c.Back = strings.TrimSpace(c.Back)
	if c.Front == "" || c.Back == "" {
		return domain.Card{}, false
	}
	if utf8.RuneCountInString(c.Front) > MaxFaceLength || utf8.RuneCountInString(c.Back) > MaxFaceLength {
		return domain.Card{}, false
	}

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.OwnerID = ownerID
	c.Version = 1

	if c.EaseFactor == 0 {
		c.EaseFactor = s.cfg.DefaultEase
	}
	c.EaseFactor = math.Max(s.cfg.MinEase, c.EaseFactor)
	c.ReviewCount = max(0, c.ReviewCount)
	c.CorrectCount = min(max(0, c.CorrectCount), c.ReviewCount)
	c.Interval = max(0, c.Interval)
	c.Repetitions = max(0, c.Repetitions)

	return c, true
}
