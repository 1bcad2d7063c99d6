package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/langy-backend/internal/domain"
	"github.com/heartmarshall/langy-backend/pkg/ctxutil"
)

// ValidateToken validates an access token and returns the caller it names.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(ctx context.Context, token string) (ctxutil.Identity, error) {
	userID, username, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return ctxutil.Identity{}, domain.ErrUnauthorized
	}
	return ctxutil.Identity{UserID: userID, Username: username}, nil
}

// CurrentUser returns the account behind the authenticated request.
// A token whose user no longer exists is treated as unauthorized.
func (s *Service) CurrentUser(ctx context.Context) (domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.ErrUnauthorized
		}
		return domain.User{}, fmt.Errorf("auth.CurrentUser: %w", err)
	}
	return user, nil
}

// Logout acknowledges a sign-out. Access tokens are stateless, so the
// client discards its token and nothing is revoked server-side.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}
