package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/langy-backend/internal/domain"
)

// Login authenticates a user with username + password.
// Unknown usernames and wrong passwords both return ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input CredentialsInput) (AuthResult, error) {
	input.Normalize()
	if strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return AuthResult{}, domain.NewValidationError("credentials", "username and password are required")
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return AuthResult{}, domain.ErrUnauthorized
		}
		return AuthResult{}, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return AuthResult{}, domain.ErrUnauthorized
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return AuthResult{}, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))

	return AuthResult{AccessToken: token, User: user}, nil
}
