package card

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/langy-backend/internal/domain"
	"github.com/heartmarshall/langy-backend/pkg/validate"
)

// CreateCardInput holds the parameters for creating a card.
type CreateCardInput struct {
	Front string `json:"front" validate:"required,max=500"`
	Back  string `json:"back"  validate:"required,max=500"`
}

// Normalize trims surrounding whitespace from both faces.
func (i *CreateCardInput) Normalize() {
	i.Front = strings.TrimSpace(i.Front)
	i.Back = strings.TrimSpace(i.Back)
}

// Validate checks all fields and collects all errors.
func (i CreateCardInput) Validate() error {
	return validate.Struct(i)
}

// DeleteCardInput holds the parameters for deleting a card.
type DeleteCardInput struct {
	CardID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteCardInput) Validate() error {
	if i.CardID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}
