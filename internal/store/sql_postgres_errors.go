package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the record store whether a failed statement may
// succeed when the client sends the same batch again.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors, constraint violations
	// and malformed statements.
	NonRetryable ErrorClassification = iota

	// Retryable failures surface to sync clients as ZONE_BUSY with a retry
	// hint instead of failing the batch permanently.
	Retryable
)

// retryableCodes lists single SQLSTATEs outside the fully retryable classes.
var retryableCodes = map[string]struct{}{
	pgerrcode.TooManyConnections: {}, // 53300
	pgerrcode.LockNotAvailable:   {}, // 55P03
}

// PostgresErrorClassifier implements [ErrorClassificator] for errors coming
// from the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and classifies its SQLSTATE.
// Anything else, nil included, is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError treats whole SQLSTATE classes as transient:
//   - 08 connection exceptions
//   - 40 transaction rollbacks (serialization failures, deadlocks)
//   - 57 operator intervention (shutdowns, cannot connect now)
//
// plus the single codes in retryableCodes. Every other code is
// [NonRetryable]. See
// https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsOperatorIntervention(code):
		return Retryable
	}

	if _, ok := retryableCodes[code]; ok {
		return Retryable
	}

	return NonRetryable
}
