package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pankaj-shinde04/store-rating/internal/domain"
)

// Códigos SQLSTATE que se traducen a errores de dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeCheckViolation      = "23514"
	codeStringTooLong       = "22001"
)

// translateError convierte errores del motor en errores de dominio con mensaje público.
// Lo que no se reconoce se envuelve con la operación y termina como 500.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return domain.NewError(domain.ErrDuplicate, "Duplicate Entry").
				WithDetail("A record with this information already exists")
		case codeForeignKeyViolation:
			return domain.NewError(domain.ErrInvalidInput, "Reference Error").
				WithDetail("Referenced record does not exist")
		case codeNotNullViolation:
			return domain.NewError(domain.ErrInvalidInput, "Required Field Missing").
				WithDetail(fmt.Sprintf("Field %s is required", pgErr.ColumnName))
		case codeStringTooLong:
			return domain.NewError(domain.ErrInvalidInput, "Data Too Long").
				WithDetail("One or more fields exceed the maximum length")
		case codeCheckViolation:
			return domain.NewError(domain.ErrInvalidInput, "Constraint Violation").
				WithDetail(pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
