package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/maxviazov/page-index-service/internal/model"
	"github.com/maxviazov/page-index-service/internal/pagination"
	"github.com/maxviazov/page-index-service/internal/repository"
)

// Options tunes the page service.
type Options struct {
	// Strict rejects non-positive page numbers and sizes. When false the raw
	// arithmetic result is returned for any input.
	Strict bool
}

// pageService holds page use-case logic: validation + orchestration, no transport details.
type pageService struct {
	strict   bool
	validate *validator.Validate
	log      zerolog.Logger
}

func NewPageService(opts Options, logger zerolog.Logger) PageService {
	l := logger.With().Str("module", "service").Str("component", "page").Logger()
	return &pageService{strict: opts.Strict, validate: newValidator(), log: l}
}

func (s *pageService) CalculateIndices(ctx context.Context, req model.PageRequest) (model.PageIndices, error) {
	ix, err := s.indices(ctx, req)
	if err != nil {
		return model.PageIndices{}, err
	}
	return model.FromIndices(ix), nil
}

func (s *pageService) Window(ctx context.Context, req model.PageRequest) (repository.Page, error) {
	ix, err := s.indices(ctx, req)
	if err != nil {
		return repository.Page{}, err
	}
	return repository.PageFromIndices(ix), nil
}

func (s *pageService) indices(ctx context.Context, req model.PageRequest) (pagination.Indices, error) {
	if s.strict {
		ferrs, err := validateStruct(s.validate, req)
		if err != nil {
			s.log.Error().Ctx(ctx).Err(err).Msg("page request validation crashed")
			return pagination.Indices{}, err
		}
		if len(ferrs) == 0 && req.CurrentPage > pagination.MaxPage(req.ItemsPerPage) {
			ferrs = append(ferrs, FieldError{
				Field:   "current_page",
				Message: fmt.Sprintf("must be <= %d for items_per_page %d", pagination.MaxPage(req.ItemsPerPage), req.ItemsPerPage),
			})
		}
		if err := NewInvalidArgument(ferrs); err != nil {
			s.log.Debug().Ctx(ctx).
				Int("current_page", req.CurrentPage).
				Int("items_per_page", req.ItemsPerPage).
				Interface("field_errors", ferrs).
				Msg("page request validation failed")
			return pagination.Indices{}, err
		}
	}

	ix := pagination.Calculate(req.CurrentPage, req.ItemsPerPage)
	s.log.Debug().Ctx(ctx).
		Int("current_page", req.CurrentPage).
		Int("items_per_page", req.ItemsPerPage).
		Int("start_index", ix.Start).
		Int("end_index", ix.End).
		Msg("page indices calculated")
	return ix, nil
}
