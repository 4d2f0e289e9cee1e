// Package model contains the request and result shapes shared by handlers, services and the CLI.
// Data only; the arithmetic lives in package pagination.
package model

import "github.com/maxviazov/page-index-service/internal/pagination"

// PageRequest asks for one page of a list. Both fields are 1-based / positive.
type PageRequest struct {
	CurrentPage  int `json:"current_page" validate:"min=1"`
	ItemsPerPage int `json:"items_per_page" validate:"min=1"`
}

// PageIndices are the inclusive 1-based item bounds of the requested page.
type PageIndices struct {
	StartIndex int `json:"start_index"`
	EndIndex   int `json:"end_index"`
}

// FromIndices converts the calculator result into its transport shape.
func FromIndices(ix pagination.Indices) PageIndices {
	return PageIndices{StartIndex: ix.Start, EndIndex: ix.End}
}

// Indices converts back to the calculator type.
func (p PageIndices) Indices() pagination.Indices {
	return pagination.Indices{Start: p.StartIndex, End: p.EndIndex}
}
