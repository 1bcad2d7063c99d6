package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/heartmarshall/langy-backend/internal/adapter/postgres"
	pgcard "github.com/heartmarshall/langy-backend/internal/adapter/postgres/card"
	pguser "github.com/heartmarshall/langy-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/langy-backend/internal/adapter/sqlite"
	litecard "github.com/heartmarshall/langy-backend/internal/adapter/sqlite/card"
	liteuser "github.com/heartmarshall/langy-backend/internal/adapter/sqlite/user"
	"github.com/heartmarshall/langy-backend/internal/config"
	"github.com/heartmarshall/langy-backend/internal/domain"
	"github.com/heartmarshall/langy-backend/migrations"
)

// CardStore is the full card persistence surface shared by both drivers.
type CardStore interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Card, error)
	GetByID(ctx context.Context, ownerID, cardID uuid.UUID) (domain.Card, error)
	Insert(ctx context.Context, card domain.Card) (domain.Card, error)
	Replace(ctx context.Context, card domain.Card, expectedVersion int) (domain.Card, error)
	Remove(ctx context.Context, ownerID, cardID uuid.UUID) error
}

// UserStore is the user persistence surface shared by both drivers.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
}

// TxRunner runs fn inside a database transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store bundles the repositories of the configured storage driver.
type Store struct {
	Driver string
	Cards  CardStore
	Users  UserStore
	Tx     TxRunner
	Ping   func(ctx context.Context) error
	Close  func()
}

// OpenStore connects to the configured database and, when enabled,
// applies pending migrations.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return openSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Store, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		db := stdlib.OpenDBFromPool(pool)
		applied, err := migrations.Up(ctx, db, config.DriverPostgres)
		_ = db.Close()
		if err != nil {
			pool.Close()
			return nil, err
		}
		log.InfoContext(ctx, "migrations applied", slog.Int("count", applied))
	}

	return &Store{
		Driver: config.DriverPostgres,
		Cards:  pgcard.New(pool),
		Users:  pguser.New(pool),
		Tx:     postgres.NewTxManager(pool),
		Ping:   pool.Ping,
		Close:  pool.Close,
	}, nil
}

func openSQLite(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Store, error) {
	db, err := sqlite.Open(ctx, cfg.DSN)
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "sqlite database opened", slog.String("path", cfg.DSN))

	return &Store{
		Driver: config.DriverSQLite,
		Cards:  litecard.New(db),
		Users:  liteuser.New(db),
		Tx:     sqlite.NewTxManager(db),
		Ping:   db.PingContext,
		Close:  func() { _ = db.Close() },
	}, nil
}
