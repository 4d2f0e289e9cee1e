package repository

import "github.com/maxviazov/page-index-service/internal/pagination"

// Page represents a simple limit/offset window for listing operations.
// Offset is zero-based; it is what a slice expression or a LIMIT/OFFSET query wants.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// PageResult carries a slice of items and the total count of the underlying collection.
// I return the total so clients can compute the last page without an extra round trip.
type PageResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// PageFromIndices turns 1-based inclusive bounds into a zero-based window.
func PageFromIndices(ix pagination.Indices) Page {
	return Page{Limit: ix.Len(), Offset: ix.Start - 1}
}

// SliceWindow returns the part of items covered by ix. Bounds past either end of the
// slice are cut to the slice; an empty page yields an empty, non-nil slice.
func SliceWindow[T any](items []T, ix pagination.Indices) []T {
	lo := ix.Start - 1
	hi := ix.End
	if lo < 0 {
		lo = 0
	}
	if hi > len(items) {
		hi = len(items)
	}
	if lo >= hi {
		return []T{}
	}
	return items[lo:hi]
}

// Paginate slices items for ix and reports the full collection size.
func Paginate[T any](items []T, ix pagination.Indices) PageResult[T] {
	return PageResult[T]{Items: SliceWindow(items, ix), Total: len(items)}
}
