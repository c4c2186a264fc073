package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/recordhub/records-api/internal/core/domain"
)

// UniqueViolationCode is the SQLSTATE for a unique or primary key violation.
const UniqueViolationCode = "23505"

func AsPgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// translate maps driver errors onto domain sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if pe, ok := AsPgError(err); ok && pe.Code == UniqueViolationCode {
		return domain.ErrDuplicateKey
	}
	return err
}

// affected turns an empty write into domain.ErrNotFound.
func affected(tag pgconn.CommandTag, err error) error {
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
