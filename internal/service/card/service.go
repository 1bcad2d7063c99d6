package card

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/langy-backend/internal/domain"
)

// MaxFaceLength limits each card face, counted in characters.
const MaxFaceLength = 500

type cardRepo interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Card, error)
	Insert(ctx context.Context, card domain.Card) (domain.Card, error)
	Remove(ctx context.Context, ownerID, cardID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds the ease settings applied to new and imported cards.
type Config struct {
	DefaultEase float64
	MinEase     float64
}

// DefaultConfig returns the SM-2 starting ease and floor.
func DefaultConfig() Config {
	return Config{
		DefaultEase: domain.DefaultEaseFactor,
		MinEase:     domain.MinEaseFactor,
	}
}

// Service provides card management operations.
type Service struct {
	cards cardRepo
	tx    txManager
	cfg   Config
	log   *slog.Logger
}

// NewService creates a new Card service.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		cards: cards,
		tx:    tx,
		cfg:   cfg,
		log:   log.With("service", "card"),
	}
}
