package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns a deck of cards.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
