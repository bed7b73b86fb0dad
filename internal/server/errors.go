package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/candidate-screener/internal/db"
	"github.com/jonathan/candidate-screener/internal/ingestion"
	"github.com/jonathan/candidate-screener/internal/schemas"
	"github.com/jonathan/candidate-screener/internal/types"
)

// ErrRecordNotFound indicates a record was not found in the requested table
type ErrRecordNotFound struct {
	Table string
	ID    uuid.UUID
}

func (e *ErrRecordNotFound) Error() string {
	return fmt.Sprintf("record not found in %s: %s", e.Table, e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound    *ErrRecordNotFound
		requestErr  *ErrValidation
		recordErr   *types.ValidationError
		schemaErr   *schemas.ValidationError
		tableErr    *db.InvalidTableError
		extractErr  *ingestion.ExtractError
		maxBytesErr *http.MaxBytesError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &requestErr), errors.As(err, &recordErr),
		errors.As(err, &schemaErr), errors.As(err, &tableErr):
		return http.StatusBadRequest
	case errors.As(err, &extractErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
