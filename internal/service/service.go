// Package service holds the use cases around page index calculation.
// Kept intentionally lean: validation, orchestration and domain error shaping only.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/page-index-service/internal/model"
	"github.com/maxviazov/page-index-service/internal/pagination"
	"github.com/maxviazov/page-index-service/internal/repository"
)

// ErrInvalidArgument is the marker error for aggregated validation failures (maps to HTTP 400).
// It is the same sentinel the calculator uses, so errors.Is works across both layers.
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidArgument = pagination.ErrInvalidArgument

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidArgumentError aggregates multiple FieldError instances and unwraps to ErrInvalidArgument.
type invalidArgumentError struct {
	fields []FieldError
}

func (e *invalidArgumentError) Error() string        { return ErrInvalidArgument.Error() }
func (e *invalidArgumentError) Unwrap() error        { return ErrInvalidArgument }
func (e *invalidArgumentError) Fields() []FieldError { return e.fields }

// NewInvalidArgument builds an aggregated validation error if any field errors are present.
// Transports use it for parse failures that never reach the service.
func NewInvalidArgument(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidArgumentError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidArgument) {
		return v.Fields()
	}
	return nil
}

// PageService defines page-oriented use cases.
type PageService interface {
	CalculateIndices(ctx context.Context, req model.PageRequest) (model.PageIndices, error)
	Window(ctx context.Context, req model.PageRequest) (repository.Page, error)
}
