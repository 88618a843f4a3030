package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/teslo-shop/catalog-api/internal/domain/repository"
)

// uniqueViolation is the postgres error code for unique-constraint failures.
const uniqueViolation = "23505"

// mapError translates pgx errors into the repository error taxonomy.
// Uniqueness violations keep the store's detail message; anything else
// unrecognized is wrapped so the service layer can log and mask it.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &repository.DuplicateError{Detail: pgErr.Detail}
	}
	return fmt.Errorf("%w: %v", repository.ErrStorage, err)
}
