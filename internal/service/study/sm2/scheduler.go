// Package sm2 implements the SM-2 spaced-repetition scheduler: the per-review
// state update, due-card selection, study session sequencing and deck
// classification. Everything here is pure; persistence is the caller's job.
package sm2

import (
	"fmt"
	"math"
	"time"

	"github.com/heartmarshall/langy-backend/internal/domain"
)

// Parameters holds the tunable constants of the algorithm. The pass grade
// is fixed at domain.PassQuality so counters, classification and scheduling
// agree on what a correct answer is.
type Parameters struct {
	MinEase        float64
	FirstInterval  int
	SecondInterval int
}

// DefaultParameters returns the classic SM-2 constants.
func DefaultParameters() Parameters {
	return Parameters{
		MinEase:        domain.MinEaseFactor,
		FirstInterval:  1,
		SecondInterval: 6,
	}
}

// RecordReview applies one review of the given quality to card and returns
// the updated copy. The input card is never modified. Quality outside 0..5
// is rejected before anything is computed.
func RecordReview(card domain.Card, quality domain.Quality, now time.Time) (domain.Card, error) {
	return DefaultParameters().RecordReview(card, quality, now)
}

// RecordReview is RecordReview with custom parameters.
func (p Parameters) RecordReview(card domain.Card, quality domain.Quality, now time.Time) (domain.Card, error) {
	if !quality.IsValid() {
		return domain.Card{}, domain.NewValidationError("quality", fmt.Sprintf("must be between 0 and 5, got %d", quality))
	}

	card.ReviewCount++
	if quality.IsCorrect() {
		card.CorrectCount++
	}

	card.EaseFactor = math.Max(p.MinEase, card.EaseFactor+easeDelta(quality))

	if !quality.IsCorrect() {
		card.Repetitions = 0
		card.Interval = p.FirstInterval
	} else {
		card.Repetitions++
		switch card.Repetitions {
		case 1:
			card.Interval = p.FirstInterval
		case 2:
			card.Interval = p.SecondInterval
		default:
			card.Interval = int(math.Round(float64(card.Interval) * card.EaseFactor))
		}
	}

	reviewed := now
	due := now.AddDate(0, 0, card.Interval)
	card.LastReviewed = &reviewed
	card.NextReviewDue = &due

	return card, nil
}

// easeDelta is the SM-2 ease adjustment: +0.1 at quality 5, -0.8 at quality 0.
func easeDelta(q domain.Quality) float64 {
	miss := float64(domain.QualityPerfectRecall - q)
	return 0.1 - miss*(0.08+miss*0.02)
}
