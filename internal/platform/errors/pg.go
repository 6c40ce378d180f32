package errors

import (
	"context"
	stderrs "errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE values the service reacts to
const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateQueryCanceled        = "57014" // statement_timeout
	sqlStateAdminShutdown        = "57P01"
	sqlStateCannotConnectNow     = "57P03"
	sqlStateInvalidText          = "22P02"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	ok := stderrs.As(err, &pe)
	return pe, ok
}

// dbCode classifies a postgres failure
// server restarts and timeouts are Unavailable so callers see a 503
func dbCode(err error) ErrorCode {
	pe, ok := pgError(err)
	if !ok {
		return ErrorCodeDB
	}
	switch pe.Code {
	case sqlStateInvalidText:
		return ErrorCodeInvalidArgument
	case sqlStateQueryCanceled, sqlStateAdminShutdown, sqlStateCannotConnectNow:
		return ErrorCodeUnavailable
	default:
		return ErrorCodeDB
	}
}

// FromPostgres wraps a driver error with its mapped code, nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{code: dbCode(err), msg: msg, orig: err}
}

// FromPostgresf is FromPostgres with a formatted message
func FromPostgresf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	return FromPostgres(err, fmt.Sprintf(format, a...))
}

// Retryable reports whether running the same read again may succeed
// context cancellation is never retryable
func Retryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	pe, ok := pgError(err)
	if !ok {
		return false
	}
	switch pe.Code {
	case sqlStateSerializationFailure, sqlStateDeadlockDetected, sqlStateAdminShutdown, sqlStateCannotConnectNow:
		return true
	}
	return false
}
