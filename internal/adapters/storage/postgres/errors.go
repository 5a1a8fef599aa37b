package postgres

import (
	"database/sql"
	"errors"

	"animal-shelter/internal/platform/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que traducimos.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeInvalidTextRepr     = "22P02" // p.ej. uuid mal formado
)

// mapError traduce errores del driver a kinds de apperror.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation, codeForeignKeyViolation:
		return apperror.Wrap(apperror.ErrConstraintViolation, pgErr.ConstraintName, err)
	case codeCheckViolation:
		return apperror.Wrap(apperror.ErrInvalidEntity, pgErr.ConstraintName, err)
	case codeInvalidTextRepr:
		return apperror.Wrap(apperror.ErrNotFound, "", err)
	default:
		return err
	}
}

func rowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.ErrNotFound
	}
	return nil
}
