package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed statement may be run again.
// Only record listing retries; a mutation is never repeated because its
// outcome is unknown once the connection drops.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] with the SQLSTATE
// codes reported by pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify marks connection exceptions (class 08), transaction rollbacks
// (class 40) and cannot_connect_now (57P03) as [Retryable]. Everything else,
// including errors that did not come from Postgres, is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := postgresError(err)
	switch {
	case code == "":
		return NonRetryable
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}

// postgresError returns the SQLSTATE of err, or "" when err carries no
// Postgres error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// recordMutationError maps the failure of an update or delete statement.
// Constraint and id errors become domain errors; the rest keeps the wrapped
// driver error.
func recordMutationError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		// the only unique index besides the primary key is (user_id, fingerprint)
		return ErrFingerprintTaken
	case pgerrcode.InvalidTextRepresentation:
		// an id that is not a uuid cannot name an existing record
		return ErrRecordNotFound
	default:
		return err
	}
}
