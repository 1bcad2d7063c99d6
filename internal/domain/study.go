package domain

// Direction is which face of a card is shown as the prompt.
type Direction string

const (
	DirectionFrontToBack Direction = "front-to-back"
	DirectionBackToFront Direction = "back-to-front"
)

// IsValid checks if the value is a known Direction.
func (d Direction) IsValid() bool {
	return d == DirectionFrontToBack || d == DirectionBackToFront
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == DirectionFrontToBack {
		return DirectionBackToFront
	}
	return DirectionFrontToBack
}

// StudySession is an ordered run through a set of cards.
// The cursor walks forward only; the prompt direction alternates with every step.
type StudySession struct {
	Cards            []Card
	CurrentCardIndex int
	Mode             Direction
}

// Current returns the card under the cursor.
func (s StudySession) Current() (Card, bool) {
	if s.CurrentCardIndex < 0 || s.CurrentCardIndex >= len(s.Cards) {
		return Card{}, false
	}
	return s.Cards[s.CurrentCardIndex], true
}

// CardCounts is a per-category summary of an owner's deck.
//
// The counts are not a partition. Learned counts every reviewed card with
// Repetitions > 1 and Due is the subset of those whose due date has passed,
// so New + Learning + Learned is the deck size and Due <= Learned.
type CardCounts struct {
	New      int
	Learning int
	Due      int
	Learned  int
}

// StudyStatistics summarizes the review history of an owner's deck.
type StudyStatistics struct {
	TotalCards     int
	CardsReviewed  int
	TotalReviews   int
	CorrectReviews int
	AccuracyRate   float64 // percent, one decimal
	DueInWindow    int
}
