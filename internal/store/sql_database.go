package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/migrations"
)

// Dialect names the SQL engine behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// ErrUnsupportedDSN is returned when the DSN matches no supported engine.
var ErrUnsupportedDSN = errors.New("unsupported database DSN")

// DB wraps a *sql.DB together with the dialect specific pieces every
// repository needs: a query builder using the right placeholder format and
// an error classifier for the driver in use.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database described by cfg.DSN, choosing the driver from
// the DSN shape:
//   - "postgres://…", "postgresql://…" or a "host=… " key/value string: pgx;
//   - "sqlite://path", "file:…" or ":memory:": SQLite.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn, err := ParseDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	switch dialect {
	case DialectPostgres:
		return NewConnectPostgres(ctx, dsn, log)
	default:
		return NewConnectSQLite(ctx, dsn, log)
	}
}

// ParseDSN detects the dialect of dsn and returns the DSN in the form the
// matching driver expects.
func ParseDSN(dsn string) (Dialect, string, error) {
	trimmed := strings.TrimSpace(dsn)

	switch {
	case strings.HasPrefix(trimmed, "postgres://"), strings.HasPrefix(trimmed, "postgresql://"):
		return DialectPostgres, trimmed, nil
	case strings.Contains(trimmed, "host=") && strings.Contains(trimmed, "dbname="):
		return DialectPostgres, trimmed, nil
	case strings.HasPrefix(trimmed, "sqlite://"):
		path := strings.TrimPrefix(trimmed, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("%w: empty sqlite path", ErrUnsupportedDSN)
		}
		return DialectSQLite, sqliteDSN("file:" + path), nil
	case strings.HasPrefix(trimmed, "file:"):
		return DialectSQLite, sqliteDSN(trimmed), nil
	case trimmed == ":memory:":
		return DialectSQLite, sqliteDSN("file::memory:"), nil
	}

	return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(trimmed))
}

// sqliteDSN enables foreign keys and a busy timeout on every connection.
func sqliteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on&_busy_timeout=5000"
}

func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "@"); i >= 0 {
		if j := strings.Index(dsn, "://"); j >= 0 && j < i {
			return dsn[:j+3] + "***" + dsn[i:]
		}
	}
	return dsn
}

// Dialect reports the engine behind db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Builder returns a squirrel statement builder using the placeholder
// format of db's dialect.
func (db *DB) Builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// Migrate applies all pending schema migrations of db's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// isUniqueViolation reports whether err is a unique constraint violation
// of the underlying driver.
func (db *DB) isUniqueViolation(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.IsUniqueViolation(err)
}
