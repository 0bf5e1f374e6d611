// Package server provides the HTTP REST API for the internship preference
// service.
package server

import (
	"fmt"
	"net/http"

	"github.com/internest/internest-backend/internal/types"
)

// ErrValidation indicates request validation failure with enumerated field
// errors. Validation always rejects before any store access.
type ErrValidation struct {
	Fields []types.FieldError
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// ErrNotFound indicates the addressed record or posting is absent. Message,
// when set, replaces the default "<Resource> not found" phrasing.
type ErrNotFound struct {
	Resource string
	Message  string
}

func (e *ErrNotFound) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Resource + " not found"
}

// ErrStorage indicates an underlying store call failed. Detail is suppressed
// outside development mode.
type ErrStorage struct {
	Op  string
	Err error
}

func (e *ErrStorage) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ErrStorage) Unwrap() error { return e.Err }

// ErrAggregation indicates one of the statistics sub-queries failed; the
// whole aggregation fails with it, there are no partial stats.
type ErrAggregation struct {
	Err error
}

func (e *ErrAggregation) Error() string {
	return fmt.Sprintf("aggregation failed: %v", e.Err)
}

func (e *ErrAggregation) Unwrap() error { return e.Err }

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrNotFound:
		return http.StatusNotFound
	case *ErrStorage, *ErrAggregation:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
