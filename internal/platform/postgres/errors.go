package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/coupon-api/internal/store"
)

// SQLSTATE codes with a store meaning.
const (
	codeUniqueViolation  = "23505"
	codeCheckViolation   = "23514"
	codeNotNullViolation = "23502"
)

var sqlStateSentinels = map[string]error{
	codeUniqueViolation:  store.ErrDuplicate,
	codeCheckViolation:   store.ErrInvalidEntity,
	codeNotNullViolation: store.ErrInvalidEntity,
}

// MapError converts sql.ErrNoRows and constraint violations into store
// sentinels. The driver error stays in the message for logging; any other
// error is returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	pgErr, ok := asPgError(err)
	if !ok {
		return err
	}
	sentinel, known := sqlStateSentinels[pgErr.Code]
	if !known {
		return err
	}

	detail := pgErr.ConstraintName
	if pgErr.Code == codeNotNullViolation {
		detail = pgErr.ColumnName
	}
	return fmt.Errorf("%w (%s): %v", sentinel, detail, err)
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	pgErr, ok := asPgError(err)
	return ok && pgErr.Code == codeUniqueViolation
}

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// checkRowsAffected returns notFound when an UPDATE or DELETE matched no row.
func checkRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return errors.New("no result from statement")
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
