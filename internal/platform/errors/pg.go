package errors

import (
	stderrs "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// FromPG classifies a pgx error into a coded project error.
// Nil stays nil; unknown SQL states map to ErrorCodeDB
func FromPG(err error, msg string) error {
	if err == nil {
		return nil
	}
	if stderrs.Is(err, pgx.ErrNoRows) {
		return Wrap(err, ErrorCodeNotFound, msg)
	}
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return Wrap(err, ErrorCodeDuplicateKey, msg)
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return Wrap(err, ErrorCodeUnavailable, msg)
		}
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// IsNoRows reports whether err is the pgx no-rows sentinel
func IsNoRows(err error) bool { return stderrs.Is(err, pgx.ErrNoRows) }
