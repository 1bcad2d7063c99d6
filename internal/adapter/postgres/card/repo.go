// Package card implements the card store on PostgreSQL.
package card

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

const table = "cards"

var columns = []string{
	"id", "owner_id", "front", "back",
	"review_count", "correct_count", "ease_factor", "interval_days", "repetitions",
	"last_reviewed", "next_review_due", "version", "created_at", "updated_at",
}

// row mirrors a cards table row.
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

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	now func() time.Time
}

// New creates a new card repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, now: time.Now}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// ListByOwner returns all cards of the owner, oldest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Card, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cards query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "cards of owner", ownerID)
	}

	cards := make([]domain.Card, len(rows))
	for i, rw := range rows {
		cards[i] = toDomain(rw)
	}
	return cards, nil
}

// GetByID returns a card owned by ownerID. Cards of other owners are reported
// as not found.
func (r *Repo) GetByID(ctx context.Context, ownerID, cardID uuid.UUID) (domain.Card, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": cardID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return domain.Card{}, fmt.Errorf("build get card query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return domain.Card{}, postgres.MapError(err, "card", cardID)
	}
	return toDomain(rw), nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Insert stores a new card and returns it as persisted.
// A duplicate ID results in domain.ErrAlreadyExists.
func (r *Repo) Insert(ctx context.Context, c domain.Card) (domain.Card, error) {
	now := r.now().UTC().Truncate(time.Microsecond)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if c.Version == 0 {
		c.Version = 1
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			c.ID, c.OwnerID, c.Front, c.Back,
			c.ReviewCount, c.CorrectCount, c.EaseFactor, c.Interval, c.Repetitions,
			c.LastReviewed, c.NextReviewDue, c.Version, c.CreatedAt, c.UpdatedAt,
		).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return domain.Card{}, fmt.Errorf("build insert card query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return domain.Card{}, postgres.MapError(err, "card", c.ID)
	}
	return toDomain(rw), nil
}

// Replace overwrites the scheduling state and faces of an existing card if
// its stored version still equals expectedVersion, bumping the version.
// Returns domain.ErrNotFound if the card is gone and domain.ErrConflict if it
// was written concurrently.
func (r *Repo) Replace(ctx context.Context, c domain.Card, expectedVersion int) (domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"front":           c.Front,
			"back":            c.Back,
			"review_count":    c.ReviewCount,
			"correct_count":   c.CorrectCount,
			"ease_factor":     c.EaseFactor,
			"interval_days":   c.Interval,
			"repetitions":     c.Repetitions,
			"last_reviewed":   c.LastReviewed,
			"next_review_due": c.NextReviewDue,
			"updated_at":      r.now().UTC().Truncate(time.Microsecond),
		}).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": c.ID, "owner_id": c.OwnerID, "version": expectedVersion}).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return domain.Card{}, fmt.Errorf("build replace card query: %w", err)
	}

	var rw row
	err = pgxscan.Get(ctx, q, &rw, query, args...)
	if err == nil {
		return toDomain(rw), nil
	}
	if !pgxscan.NotFound(err) {
		return domain.Card{}, postgres.MapError(err, "card", c.ID)
	}

	exists, err := r.exists(ctx, q, c.OwnerID, c.ID)
	if err != nil {
		return domain.Card{}, err
	}
	if exists {
		return domain.Card{}, fmt.Errorf("card %s version %d: %w", c.ID, expectedVersion, domain.ErrConflict)
	}
	return domain.Card{}, fmt.Errorf("card %s: %w", c.ID, domain.ErrNotFound)
}

// Remove deletes a card. Returns domain.ErrNotFound if the card does not
// exist or belongs to another owner.
func (r *Repo) Remove(ctx context.Context, ownerID, cardID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": cardID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete card query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "card", cardID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) exists(ctx context.Context, q postgres.Querier, ownerID, cardID uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder().
		Select("1").
		From(table).
		Where(sq.Eq{"id": cardID, "owner_id": ownerID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build card exists query: %w", err)
	}

	var found bool
	if err := q.QueryRow(ctx, query, args...).Scan(&found); err != nil {
		return false, postgres.MapError(err, "card", cardID)
	}
	return found, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func returning() string {
	return strings.Join(columns, ", ")
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
