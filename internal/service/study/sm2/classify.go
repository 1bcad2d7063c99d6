package sm2

import (
	"math"
	"time"

	"github.com/heartmarshall/langy-backend/internal/domain"
)

// Classify counts the cards in each study bucket at now.
func Classify(cards []domain.Card, now time.Time) domain.CardCounts {
	var counts domain.CardCounts
	for i := range cards {
		c := &cards[i]
		switch {
		case c.IsNew():
			counts.New++
		case c.Repetitions <= 1:
			counts.Learning++
		default:
			counts.Learned++
			if c.NextReviewDue != nil && !c.NextReviewDue.After(now) {
				counts.Due++
			}
		}
	}
	return counts
}

// FilterLearned returns the cards that have passed at least two consecutive reviews.
func FilterLearned(cards []domain.Card) []domain.Card {
	learned := make([]domain.Card, 0)
	for i := range cards {
		if cards[i].IsLearned() {
			learned = append(learned, cards[i])
		}
	}
	return learned
}

// StatisticsWindow is the look-ahead used for the "due in the next 7 days"
// figure reported with deck statistics.
const StatisticsWindow = 7 * 24 * time.Hour

// Statistics aggregates the review history of a deck. DueInWindow counts the
// cards that become due after now but no later than now plus window.
func Statistics(cards []domain.Card, now time.Time, window time.Duration) domain.StudyStatistics {
	stats := domain.StudyStatistics{TotalCards: len(cards)}
	horizon := now.Add(window)

	for i := range cards {
		c := &cards[i]
		if c.ReviewCount > 0 {
			stats.CardsReviewed++
		}
		stats.TotalReviews += c.ReviewCount
		stats.CorrectReviews += c.CorrectCount

		if c.NextReviewDue != nil && c.NextReviewDue.After(now) && !c.NextReviewDue.After(horizon) {
			stats.DueInWindow++
		}
	}

	if stats.TotalReviews > 0 {
		rate := float64(stats.CorrectReviews) / float64(stats.TotalReviews) * 100
		stats.AccuracyRate = math.Round(rate*10) / 10
	}

	return stats
}
