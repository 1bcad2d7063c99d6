// Package user implements the user store on PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/langy-backend/internal/adapter/postgres"
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

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
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
	query, args, err := postgres.Builder().
		Insert("users").
		Columns(columns...).
		Values(u.ID, u.Username, u.PasswordHash, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build insert user query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return domain.User{}, postgres.MapError(err, "user", u.ID)
	}
	return toDomain(rw), nil
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, id uuid.UUID) (domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build get user query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return domain.User{}, postgres.MapError(err, "user", id)
	}
	return toDomain(rw), nil
}

func toDomain(r row) domain.User {
	return domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
