package sm2

import (
	"math/rand/v2"
	"time"

	"github.com/heartmarshall/langy-backend/internal/domain"
)

// SelectDueCards returns the cards whose due date is unset or has passed.
// When none are due it falls back to the whole deck so a study session is
// never empty for a non-empty deck. The input slice is not modified.
func SelectDueCards(cards []domain.Card, now time.Time) []domain.Card {
	due := make([]domain.Card, 0, len(cards))
	for i := range cards {
		if cards[i].IsDue(now) {
			due = append(due, cards[i])
		}
	}
	if len(due) > 0 {
		return due
	}

	all := make([]domain.Card, len(cards))
	copy(all, cards)
	return all
}

// BuildSession shuffles cards uniformly and picks a random starting direction.
// rng must not be nil.
func BuildSession(cards []domain.Card, rng *rand.Rand) domain.StudySession {
	shuffled := make([]domain.Card, len(cards))
	copy(shuffled, cards)

	// Fisher-Yates.
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	mode := domain.DirectionFrontToBack
	if rng.IntN(2) == 1 {
		mode = domain.DirectionBackToFront
	}

	return domain.StudySession{
		Cards:            shuffled,
		CurrentCardIndex: 0,
		Mode:             mode,
	}
}

// Advance moves the session to the next card and flips the prompt direction.
// done is true once the last card has been answered; advancing a finished
// session returns it unchanged.
func Advance(s domain.StudySession) (next domain.StudySession, done bool) {
	if s.CurrentCardIndex+1 >= len(s.Cards) {
		return s, true
	}
	s.CurrentCardIndex++
	s.Mode = s.Mode.Flip()
	return s, false
}
