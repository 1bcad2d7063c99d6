// Package card implements the card store on SQLite.
package card

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

const table = "cards"

var columns = []string{
	"id", "owner_id", "front", "back",
	"review_count", "correct_count", "ease_factor", "interval_days", "repetitions",
	"last_reviewed", "next_review_due", "version", "created_at", "updated_at",
}

type row struct {
	ID            uuid.UUID  `db:"id"`
	OwnerID       uuid.UUID  `db:"owner_id"`
	Front         string     `db:"front"`
	Back          string     `db:"back"`
	ReviewCount   int        `db:"review_count"`
	CorrectCount  int        `db:"correct_count"`
	EaseFactor    float64    `db:"ease_factor"`
	IntervalDays  int        `db:"interval_days"`
	Repetitions   int        `db:"repetitions"`
	LastReviewed  *time.Time `db:"last_reviewed"`
	NextReviewDue *time.Time `db:"next_review_due"`
	Version       int        `db:"version"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// Repo provides card persistence backed by SQLite.
type Repo struct {
	db  *sqlx.DB
	now func() time.Time
}

// New creates a new card repository.
func New(db *sqlx.DB) *Repo {
	return &Repo{db: db, now: time.Now}
}

// ListByOwner returns all cards of the owner, oldest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Card, error) {
	query, args, err := sqlite.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cards query: %w", err)
	}

	var rows []row
	if err := sqlx.SelectContext(ctx, sqlite.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "cards of owner", ownerID)
	}

	cards := make([]domain.Card, len(rows))
	for i, rw := range rows {
		cards[i] = toDomain(rw)
	}
	return cards, nil
}

// GetByID returns a card owned by ownerID.
func (r *Repo) GetByID(ctx context.Context, ownerID, cardID uuid.UUID) (domain.Card, error) {
	return r.get(ctx, sqlite.QuerierFromCtx(ctx, r.db), ownerID, cardID)
}

// Insert stores a new card and returns it as persisted.
func (r *Repo) Insert(ctx context.Context, c domain.Card) (domain.Card, error) {
	now := r.now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if c.Version == 0 {
		c.Version = 1
	}

	query, args, err := sqlite.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			c.ID, c.OwnerID, c.Front, c.Back,
			c.ReviewCount, c.CorrectCount, c.EaseFactor, c.Interval, c.Repetitions,
			utcPtr(c.LastReviewed), utcPtr(c.NextReviewDue), c.Version, c.CreatedAt.UTC(), c.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return domain.Card{}, fmt.Errorf("build insert card query: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return domain.Card{}, sqlite.MapError(err, "card", c.ID)
	}
	return c, nil
}

// Replace overwrites an existing card if its stored version equals
// expectedVersion, bumping the version. Returns domain.ErrNotFound if the
// card is gone and domain.ErrConflict on a stale version.
func (r *Repo) Replace(ctx context.Context, c domain.Card, expectedVersion int) (domain.Card, error) {
	q := sqlite.QuerierFromCtx(ctx, r.db)

	query, args, err := sqlite.Builder().
		Update(table).
		SetMap(map[string]any{
			"front":           c.Front,
			"back":            c.Back,
			"review_count":    c.ReviewCount,
			"correct_count":   c.CorrectCount,
			"ease_factor":     c.EaseFactor,
			"interval_days":   c.Interval,
			"repetitions":     c.Repetitions,
			"last_reviewed":   utcPtr(c.LastReviewed),
			"next_review_due": utcPtr(c.NextReviewDue),
			"updated_at":      r.now().UTC(),
		}).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": c.ID, "owner_id": c.OwnerID, "version": expectedVersion}).
		ToSql()
	if err != nil {
		return domain.Card{}, fmt.Errorf("build replace card query: %w", err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Card{}, sqlite.MapError(err, "card", c.ID)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Card{}, fmt.Errorf("card %s rows affected: %w", c.ID, err)
	}

	if affected == 0 {
		if _, err := r.get(ctx, q, c.OwnerID, c.ID); err != nil {
			return domain.Card{}, err
		}
		return domain.Card{}, fmt.Errorf("card %s version %d: %w", c.ID, expectedVersion, domain.ErrConflict)
	}

	return r.get(ctx, q, c.OwnerID, c.ID)
}

// Remove deletes a card. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Remove(ctx context.Context, ownerID, cardID uuid.UUID) error {
	query, args, err := sqlite.Builder().
		Delete(table).
		Where(sq.Eq{"id": cardID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete card query: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "card", cardID)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("card %s rows affected: %w", cardID, err)
	} else if n == 0 {
		return fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) get(ctx context.Context, q sqlite.Querier, ownerID, cardID uuid.UUID) (domain.Card, error) {
	query, args, err := sqlite.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": cardID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return domain.Card{}, fmt.Errorf("build get card query: %w", err)
	}

	var rw row
	if err := sqlx.GetContext(ctx, q, &rw, query, args...); err != nil {
		return domain.Card{}, sqlite.MapError(err, "card", cardID)
	}
	return toDomain(rw), nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func toDomain(r row) domain.Card {
	return domain.Card{
		ID:            r.ID,
		OwnerID:       r.OwnerID,
		Front:         r.Front,
		Back:          r.Back,
		ReviewCount:   r.ReviewCount,
		CorrectCount:  r.CorrectCount,
		EaseFactor:    r.EaseFactor,
		Interval:      r.IntervalDays,
		Repetitions:   r.Repetitions,
		LastReviewed:  r.LastReviewed,
		NextReviewDue: r.NextReviewDue,
		Version:       r.Version,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
