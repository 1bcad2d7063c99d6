// Package user implements the user store on SQLite.
package user

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/heartmarshall/langy-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/langy-backend/internal/domain"
)

var columns = []string{"id", "username", "password_hash", "created_at", "updated_at"}

type row struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Repo provides user persistence backed by SQLite.
type Repo struct {
	db *sqlx.DB
}

// New creates a new user repository.
func New(db *sqlx.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getOne(ctx, sq.Eq{"username": username}, uuid.Nil)
}

// Create inserts a new user. A taken username results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	u.CreatedAt, u.UpdatedAt = u.CreatedAt.UTC(), u.UpdatedAt.UTC()

	query, args, err := sqlite.Builder().
		Insert("users").
		Columns(columns...).
		Values(u.ID, u.Username, u.PasswordHash, u.CreatedAt, u.UpdatedAt).
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build insert user query: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return domain.User{}, sqlite.MapError(err, "user", u.ID)
	}
	return u, nil
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, id uuid.UUID) (domain.User, error) {
	query, args, err := sqlite.Builder().
		Select(columns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build get user query: %w", err)
	}

	var rw row
	if err := sqlx.GetContext(ctx, sqlite.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return domain.User{}, sqlite.MapError(err, "user", id)
	}
	return domain.User{
		ID:           rw.ID,
		Username:     rw.Username,
		PasswordHash: rw.PasswordHash,
		CreatedAt:    rw.CreatedAt,
		UpdatedAt:    rw.UpdatedAt,
	}, nil
}
