package store

import (
	"context"
	"strings"

	"github.com/mkhayatov/go-user-manager/internal/config"
	"github.com/mkhayatov/go-user-manager/internal/logger"
)

// Storages aggregates the repositories used by the server handlers.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages connects to the configured database, runs migrations and
// constructs the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
	}, nil
}

// NewConnect selects the database driver from the DSN: PostgreSQL DSNs
// (URL or keyword form) go to pgx, everything else is treated as a path
// to a SQLite file.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
