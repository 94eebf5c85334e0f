package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassificator] for errors coming
// out of pgx.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports a task or user statement worth running again: a dropped
// connection, a server that is starting up or out of connection slots, or
// a transaction rolled back on deadlock or serialization failure.
// Non-pgx errors are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return ClassifyPgError(pgErr)
}

// IsUniqueViolation reports a unique_violation (23505), which for this
// schema means a duplicate user email.
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}

// ClassifyPgError classifies by SQLSTATE. Classes 08 (connection) and 40
// (transaction rollback) are retried as a whole; 57P03 and 53300 are the
// only retried codes of their classes.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow,
		code == pgerrcode.TooManyConnections:
		return Retryable
	default:
		// constraint, data and syntax errors fail the same way every time
		return NonRetryable
	}
}
