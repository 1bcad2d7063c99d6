package study

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/langy-backend/internal/domain"
	"github.com/heartmarshall/langy-backend/internal/service/study/sm2"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Card, error)
	GetByID(ctx context.Context, ownerID, cardID uuid.UUID) (domain.Card, error)
	Replace(ctx context.Context, card domain.Card, expectedVersion int) (domain.Card, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the scheduling settings of the study service.
type Config struct {
	Params sm2.Parameters
}

// DefaultConfig returns the SM-2 defaults.
func DefaultConfig() Config {
	return Config{Params: sm2.DefaultParameters()}
}

// Service implements study sessions, reviews and deck statistics.
type Service struct {
	cards   cardRepo
	tx      txManager
	log     *slog.Logger
	cfg     Config
	now     func() time.Time
	newRand func() *rand.Rand
}

// NewService creates a new Study service.
func NewService(log *slog.Logger, cards cardRepo, tx txManager, cfg Config) *Service {
	return &Service{
		cards:   cards,
		tx:      tx,
		log:     log.With("service", "study"),
		cfg:     cfg,
		now:     time.Now,
		newRand: seededRand,
	}
}

func seededRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
