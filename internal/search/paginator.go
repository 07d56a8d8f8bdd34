package search

import "github.com/courtside-sg/courtside-api/internal/models"

// DefaultPageSize is the number of results shown per page.
const DefaultPageSize = 5

// Paginator slices an ordered result list into fixed-size pages.
type Paginator struct {
	pageSize int
}

// NewPaginator constructs a Paginator; non-positive sizes fall back to the default.
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{pageSize: pageSize}
}

// PageSize reports the configured page size.
func (p *Paginator) PageSize() int {
	return p.pageSize
}

// Page returns the 1-based page of results. Pages beyond range yield an empty
// slice rather than an error; the UI computes valid pages from TotalPages.
func (p *Paginator) Page(results []models.SearchResult, page int) []models.SearchResult {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * p.pageSize
	if start >= len(results) {
		return nil
	}
	end := start + p.pageSize
	if end > len(results) {
		end = len(results)
	}
	return results[start:end]
}

// TotalPages returns ceil(total / pageSize).
func (p *Paginator) TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + p.pageSize - 1) / p.pageSize
}
