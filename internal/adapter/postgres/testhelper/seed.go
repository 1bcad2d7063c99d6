package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/langy-backend/internal/domain"
)

// SeedUser inserts a user with a unique username.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "user" + uuid.New().String()[:8],
		PasswordHash: "$2a$04$not-a-real-hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedCard inserts an unreviewed card for the owner.
func SeedCard(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, front, back string) domain.Card {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	card := domain.NewCard(ownerID, front, back)
	card.CreatedAt, card.UpdatedAt = now, now

	_, err := pool.Exec(context.Background(),
		`INSERT INTO cards (id, owner_id, front, back, ease_factor, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		card.ID, card.OwnerID, card.Front, card.Back, card.EaseFactor, card.Version, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard: %v", err)
	}
	return card
}
