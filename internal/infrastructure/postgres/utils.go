package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isConstraintViolation verifica si el error es una violación de NOT NULL (23502) o CHECK (23514).
func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23502" || pgErr.Code == "23514"
	}
	return false
}

// nullable devuelve nil (NULL) para cadenas vacías.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
