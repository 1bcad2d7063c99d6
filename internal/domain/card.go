package domain

import (
	"time"

	"github.com/google/uuid"
)

// Starting SM-2 scheduling state for a card that has never been reviewed.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// Card is a single flashcard together with its SM-2 scheduling state.
type Card struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Front   string
	Back    string

	ReviewCount  int
	CorrectCount int
	EaseFactor   float64
	Interval     int // days
	Repetitions  int

	LastReviewed  *time.Time
	NextReviewDue *time.Time

	// Version is bumped on every successful write and guards concurrent reviews.
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCard returns an unreviewed card owned by owner.
func NewCard(owner uuid.UUID, front, back string) Card {
	return Card{
		ID:         uuid.New(),
		OwnerID:    owner,
		Front:      front,
		Back:       back,
		EaseFactor: DefaultEaseFactor,
		Version:    1,
	}
}

// IsNew reports whether the card has never been reviewed.
func (c *Card) IsNew() bool {
	return c.ReviewCount == 0
}

// IsDue reports whether the card is eligible for study at now.
// Cards without a due date are always due.
func (c *Card) IsDue(now time.Time) bool {
	return c.NextReviewDue == nil || !c.NextReviewDue.After(now)
}

// IsLearned reports whether the card has passed at least two consecutive reviews.
func (c *Card) IsLearned() bool {
	return c.ReviewCount > 0 && c.Repetitions > 1
}

// Quality is the 0..5 self-assessed recall grade of a review.
type Quality int

const (
	QualityCompleteBlackout Quality = iota
	QualityIncorrectButRemembered
	QualityIncorrectButEasyToRecall
	QualityCorrectWithDifficulty
	QualityCorrectWithHesitation
	QualityPerfectRecall
)

// PassQuality is the lowest grade that counts as a correct answer.
const PassQuality = QualityCorrectWithDifficulty

// IsValid reports whether q is within 0..5.
func (q Quality) IsValid() bool {
	return q >= QualityCompleteBlackout && q <= QualityPerfectRecall
}

// IsCorrect reports whether q counts as a successful recall.
func (q Quality) IsCorrect() bool {
	return q >= PassQuality
}

// QualityFromCorrect maps a plain correct/incorrect answer onto the quality scale.
func QualityFromCorrect(correct bool) Quality {
	if correct {
		return QualityCorrectWithHesitation
	}
	return QualityCompleteBlackout
}
