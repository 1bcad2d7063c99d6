package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/langy-backend/internal/config"
	"github.com/heartmarshall/langy-backend/internal/transport/middleware"
	"github.com/heartmarshall/langy-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (ctxutil.Identity, error)
}

// RouterDeps bundles everything NewRouter wires together.
type RouterDeps struct {
	Logger    *slog.Logger
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	Limiter   *middleware.RateLimiter
	Tokens    tokenValidator

	Health *HealthHandler
	Auth   *AuthHandler
	Cards  *CardHandler
	Study  *StudyHandler
}

// NewRouter builds the HTTP handler for the whole API.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	var limited middleware.Middleware
	if d.Limiter != nil {
		limited = d.Limiter.Limit(d.RateLimit.AuthPerMinute)
	}
	public := middleware.Chain(limited)
	private := middleware.Chain(middleware.RequireAuth)

	mux.Handle("POST /auth/signup", public(http.HandlerFunc(d.Auth.Signup)))
	mux.Handle("POST /auth/login", public(http.HandlerFunc(d.Auth.Login)))
	mux.Handle("GET /auth/check", private(http.HandlerFunc(d.Auth.Check)))
	mux.Handle("POST /auth/logout", private(http.HandlerFunc(d.Auth.Logout)))

	mux.Handle("GET /cards", private(http.HandlerFunc(d.Cards.List)))
	mux.Handle("POST /cards", private(http.HandlerFunc(d.Cards.Create)))
	mux.Handle("DELETE /cards/{id}", private(http.HandlerFunc(d.Cards.Delete)))
	mux.Handle("GET /cards/stats", private(http.HandlerFunc(d.Cards.Stats)))
	mux.Handle("GET /cards/learned", private(http.HandlerFunc(d.Cards.Learned)))

	mux.Handle("GET /study", private(http.HandlerFunc(d.Study.Session)))
	mux.Handle("POST /study/review", private(http.HandlerFunc(d.Study.Review)))
	mux.Handle("GET /study/statistics", private(http.HandlerFunc(d.Study.Statistics)))

	// Logger sits inside Auth so access lines carry the caller identity.
	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
		middleware.Auth(d.Tokens),
		middleware.Logger(d.Logger),
	)(mux)
}
