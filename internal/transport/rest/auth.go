package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/langy-backend/internal/domain"
	"github.com/heartmarshall/langy-backend/internal/service/auth"
)

type authService interface {
	Signup(ctx context.Context, input auth.CredentialsInput) (auth.AuthResult, error)
	Login(ctx context.Context, input auth.CredentialsInput) (auth.AuthResult, error)
	CurrentUser(ctx context.Context) (domain.User, error)
	Logout(ctx context.Context) error
}

// AuthHandler serves the /auth endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	User        userResponse `json:"user"`
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	h.credentials(w, r, http.StatusCreated, h.svc.Signup)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.credentials(w, r, http.StatusOK, h.svc.Login)
}

// Check handles GET /auth/check and returns the authenticated user.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.CurrentUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// Logout handles POST /auth/logout. Tokens are stateless, so this only
// acknowledges the request; clients drop the token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AuthHandler) credentials(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	call func(context.Context, auth.CredentialsInput) (auth.AuthResult, error),
) {
	var input auth.CredentialsInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := call(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, status, authResponse{
		AccessToken: result.AccessToken,
		User:        toUserResponse(result.User),
	})
}
