// Package pagination computes offset/limit windows and total-page metadata
// over a monotonically ordered collection.
package pagination

import "errors"

// ErrInvalidArgument indicates a non-positive page number or page size.
// Callers must reject the request before any query executes.
var ErrInvalidArgument = errors.New("pagination: page and limit must be positive")

// Window is the (skip, take) slice of an ordered collection computed for
// one page request, along with the total number of pages for the collection.
type Window struct {
	Skip       int
	Take       int
	TotalPages int
}

// Compute derives the query window for a 1-based page number.
//
// TotalPages is ceil(total/limit). A page beyond the last yields an empty
// item window rather than an error; whether that is user-visible is the
// caller's decision.
func Compute(page, limit, total int) (Window, error) {
	if page <= 0 || limit <= 0 {
		return Window{}, ErrInvalidArgument
	}
	if total < 0 {
		total = 0
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	return Window{
		Skip:       (page - 1) * limit,
		Take:       limit,
		TotalPages: totalPages,
	}, nil
}
