package store

import (
	"database/sql"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/migrations"
)

// DB wraps the shared *sql.DB connection together with the migration dialect
// it was opened for. The embedded connection exposes the full database/sql
// API to the repositories.
type DB struct {
	*sql.DB

	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// logTransient emits a warning when err is classified as retryable, so
// operators can tell transient failures apart from permanent ones. Backends
// without a classifier skip the check.
func (db *DB) logTransient(err error) {
	if db.errorClassificator == nil {
		return
	}

	if db.errorClassificator.Classify(err) == Retryable {
		db.logger.Warn().Err(err).Msg("transient database error")
	}
}
