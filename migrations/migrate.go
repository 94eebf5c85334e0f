// Package migrations embeds the SQL schema of every supported dialect and
// applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	ErrNilDB              = errors.New("db is nil")
	ErrUnsupportedDialect = errors.New("unsupported migration dialect")
)

// gooseDialects maps a dialect name to the goose dialect and the embedded
// directory holding its migrations.
var gooseDialects = map[string]struct {
	goose string
	dir   string
}{
	"postgres": {goose: "pgx", dir: "postgres"},
	"sqlite":   {goose: "sqlite3", dir: "sqlite"},
}

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

// Migrate applies all pending migrations of dialect ("postgres" or
// "sqlite") to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	d, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnsupportedDialect, dialect)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(d.goose); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Files lists the embedded migration files of dialect.
func Files(dialect string) ([]string, error) {
	d, ok := gooseDialects[dialect]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}

	return fs.Glob(embedMigrations, d.dir+"/*.sql")
}
