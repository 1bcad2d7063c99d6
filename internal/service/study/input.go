package study

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/langy-backend/internal/domain"
)

// ReviewCardInput holds the parameters for reviewing a card.
// Quality takes precedence; Correct is the fallback for clients that only
// report right or wrong.
type ReviewCardInput struct {
	CardID  uuid.UUID
	Quality *int
	Correct *bool
	Mode    *domain.Direction
}

// Validate checks all fields and collects all errors.
func (i *ReviewCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Quality == nil && i.Correct == nil {
		errs = append(errs, domain.FieldError{Field: "quality", Message: "quality or correct is required"})
	}
	if i.Quality != nil && !domain.Quality(*i.Quality).IsValid() {
		errs = append(errs, domain.FieldError{Field: "quality", Message: "must be between 0 and 5"})
	}
	if i.Mode != nil && !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be front-to-back or back-to-front"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// quality resolves the effective review grade. Call after Validate.
func (i *ReviewCardInput) quality() domain.Quality {
	if i.Quality != nil {
		return domain.Quality(*i.Quality)
	}
	return domain.QualityFromCorrect(*i.Correct)
}
