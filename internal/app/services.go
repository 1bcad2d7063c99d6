package app

import (
	"log/slog"

	"github.com/heartmarshall/langy-backend/internal/auth"
	"github.com/heartmarshall/langy-backend/internal/config"
	authsvc "github.com/heartmarshall/langy-backend/internal/service/auth"
	"github.com/heartmarshall/langy-backend/internal/service/card"
	"github.com/heartmarshall/langy-backend/internal/service/study"
	"github.com/heartmarshall/langy-backend/internal/service/study/sm2"
)

// Services holds the application services built on top of a Store.
type Services struct {
	Auth  *authsvc.Service
	Cards *card.Service
	Study *study.Service
}

// NewServices wires the services to the store.
func NewServices(log *slog.Logger, cfg *config.Config, store *Store) Services {
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return Services{
		Auth:  authsvc.NewService(log, store.Users, jwt, cfg.Auth.PasswordHashCost),
		Cards: card.NewService(log, store.Cards, store.Tx, CardConfig(cfg.SRS)),
		Study: study.NewService(log, store.Cards, store.Tx, StudyConfig(cfg.SRS)),
	}
}

// StudyConfig converts the SRS settings into scheduler parameters.
func StudyConfig(c config.SRSConfig) study.Config {
	return study.Config{
		Params: sm2.Parameters{
			MinEase:        c.MinEaseFactor,
			FirstInterval:  c.FirstInterval,
			SecondInterval: c.SecondInterval,
		},
	}
}

// CardConfig converts the SRS settings into the ease used for new cards.
func CardConfig(c config.SRSConfig) card.Config {
	return card.Config{
		DefaultEase: c.DefaultEaseFactor,
		MinEase:     c.MinEaseFactor,
	}
}
