package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/langy-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
}

// jwtManager defines the token operations needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, username string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// Service implements account and session operations.
type Service struct {
	log        *slog.Logger
	users      userRepo
	jwt        jwtManager
	bcryptCost int
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt jwtManager,
	bcryptCost int,
) *Service {
	return &Service{
		log:        logger.With("service", "auth"),
		users:      users,
		jwt:        jwt,
		bcryptCost: bcryptCost,
	}
}

// AuthResult is returned by Signup and Login.
type AuthResult struct {
	AccessToken string
	User        domain.User
}
