package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/langy-backend/internal/domain"
)

// Signup creates a new account and signs it in.
// Returns ErrAlreadyExists if the username is taken.
func (s *Service) Signup(ctx context.Context, input CredentialsInput) (AuthResult, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("auth.Signup hash password: %w", err)
	}

	now := time.Now().UTC()
	// Username uniqueness is enforced by a DB constraint.
	user, err := s.users.Create(ctx, domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return AuthResult{}, fmt.Errorf("auth.Signup: %w", domain.ErrAlreadyExists)
		}
		return AuthResult{}, fmt.Errorf("auth.Signup create user: %w", err)
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return AuthResult{}, fmt.Errorf("auth.Signup issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up", slog.String("user_id", user.ID.String()))

	return AuthResult{AccessToken: token, User: user}, nil
}
