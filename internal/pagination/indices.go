// Package pagination maps a 1-based page number and a page size to the inclusive
// item bounds of that page. It has no state and is safe for concurrent use.
package pagination

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument marks a non-positive page number or page size, or a page
// whose bounds do not fit in an int.
var ErrInvalidArgument = errors.New("invalid argument")

// Indices holds 1-based inclusive bounds of a page.
type Indices struct {
	Start int `json:"start_index"`
	End   int `json:"end_index"`
}

// Calculate returns the bounds of currentPage when every page holds itemsPerPage items.
// Inputs are not checked: non-positive values give zero or negative bounds, not an error.
func Calculate(currentPage, itemsPerPage int) Indices {
	return Indices{
		Start: (currentPage-1)*itemsPerPage + 1,
		End:   currentPage * itemsPerPage,
	}
}

// CalculateStrict is Calculate with both inputs required to be >= 1 and the
// last index of the page required to fit in an int.
func CalculateStrict(currentPage, itemsPerPage int) (Indices, error) {
	if currentPage < 1 {
		return Indices{}, fmt.Errorf("current page %d must be >= 1: %w", currentPage, ErrInvalidArgument)
	}
	if itemsPerPage < 1 {
		return Indices{}, fmt.Errorf("items per page %d must be >= 1: %w", itemsPerPage, ErrInvalidArgument)
	}
	if last := MaxPage(itemsPerPage); currentPage > last {
		return Indices{}, fmt.Errorf("current page %d must be <= %d for %d items per page: %w", currentPage, last, itemsPerPage, ErrInvalidArgument)
	}
	return Calculate(currentPage, itemsPerPage), nil
}

// MaxPage is the highest page number whose bounds do not overflow int.
// itemsPerPage must be >= 1.
func MaxPage(itemsPerPage int) int { return math.MaxInt / itemsPerPage }

// Len is the number of items between Start and End inclusive.
func (ix Indices) Len() int { return ix.End - ix.Start + 1 }
