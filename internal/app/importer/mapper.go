package importer

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/langy-backend/internal/domain"
)

// Map converts a legacy card into a domain card. Legacy IDs are not UUIDs,
// so every imported card gets a fresh ID. Ownership and bounds are applied
// by the card service on insert.
func Map(c LegacyCard) domain.Card {
	return domain.Card{
		ID:            uuid.New(),
		Front:         c.Front,
		Back:          c.Back,
		ReviewCount:   c.ReviewCount,
		CorrectCount:  c.CorrectCount,
		EaseFactor:    c.EaseFactor,
		Interval:      c.Interval,
		Repetitions:   c.Repetitions,
		LastReviewed:  c.LastReviewed.ptr(),
		NextReviewDue: c.NextReviewDue.ptr(),
	}
}
