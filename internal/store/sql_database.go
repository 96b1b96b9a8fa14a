package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/mkhayatov/go-user-manager/internal/logger"
	"github.com/mkhayatov/go-user-manager/migrations"
)

// DB wraps a database/sql connection together with the driver-specific
// pieces the repositories need: the placeholder format for building
// queries, the goose dialect for migrations and the error classifier.
type DB struct {
	*sql.DB
	placeholder        sq.PlaceholderFormat
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder configured with the
// placeholder format of the underlying driver.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}
