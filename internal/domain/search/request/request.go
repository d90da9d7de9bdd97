// Package request holds the validated search request value object.
package request

import (
	"strings"

	"github.com/lensbook/searchd/internal/domain"
	"github.com/lensbook/searchd/internal/domain/search/filter"
	"github.com/lensbook/searchd/internal/domain/search/query"
)

// Pagination limits.
const (
	MaxQueryLength = 512
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// SortBy is the primary sort key.
type SortBy string

// Supported sort keys.
const (
	SortRelevance SortBy = "relevance"
	SortPrice     SortBy = "price"
	SortRating    SortBy = "rating"
	SortNewest    SortBy = "newest"
)

// IsValid checks if the sort key is supported.
func (s SortBy) IsValid() bool {
	return s == SortRelevance || s == SortPrice || s == SortRating || s == SortNewest
}

// SortOrder is the sort direction.
type SortOrder string

// Supported sort directions.
const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// IsValid checks if the sort order is supported.
func (o SortOrder) IsValid() bool { return o == OrderAsc || o == OrderDesc }

// PageSize overrides the page-size clamp. Zero values fall back to
// DefaultPerPage and MaxPerPage.
type PageSize struct {
	Default int
	Max     int
}

func (p PageSize) withDefaults() PageSize {
	if p.Default <= 0 {
		p.Default = DefaultPerPage
	}
	if p.Max <= 0 {
		p.Max = MaxPerPage
	}
	return p
}

// Request is a validated search query.
type Request struct {
	query     string
	filters   filter.Filters
	page      int
	perPage   int
	sortBy    SortBy
	sortOrder SortOrder
	fields    []query.Field
}

// New validates and normalizes search parameters.
// Defaults: page=1, perPage=20, sortBy=relevance. perPage is clamped to
// [1, 100]; page below 1 becomes 1. An unknown sort key or order fails with
// an error unwrapping to domain.ErrInvalidFilter. The query text is trimmed;
// a blank query means "no text filter".
func New(
	queryText string,
	filters filter.Filters,
	page, perPage int,
	sortBy, sortOrder string,
	fields []query.Field,
) (Request, error) {
	return NewSized(queryText, filters, page, perPage, sortBy, sortOrder, fields, PageSize{})
}

// NewSized is New with a configurable page-size clamp.
func NewSized(
	queryText string,
	filters filter.Filters,
	page, perPage int,
	sortBy, sortOrder string,
	fields []query.Field,
	size PageSize,
) (Request, error) {
	size = size.withDefaults()

	queryText = strings.TrimSpace(queryText)
	if len(queryText) > MaxQueryLength {
		return Request{}, domain.NewInvalidFilter("query", "too long")
	}

	if page < 1 {
		page = DefaultPage
	}
	if perPage <= 0 {
		perPage = size.Default
	}
	if perPage > size.Max {
		perPage = size.Max
	}

	by := SortRelevance
	if sortBy != "" {
		by = SortBy(sortBy)
		if !by.IsValid() {
			return Request{}, domain.NewInvalidFilter("sortBy", "unknown sort key "+sortBy)
		}
	}

	var order SortOrder
	if sortOrder != "" {
		order = SortOrder(sortOrder)
		if !order.IsValid() {
			return Request{}, domain.NewInvalidFilter("sortOrder", "unknown sort order "+sortOrder)
		}
	}
	order = resolveOrder(by, order)

	return Request{
		query:     queryText,
		filters:   filters,
		page:      page,
		perPage:   perPage,
		sortBy:    by,
		sortOrder: order,
		fields:    fields,
	}, nil
}

// resolveOrder applies the per-field default direction. Relevance has no
// direction choice: it is always descending by score.
func resolveOrder(by SortBy, order SortOrder) SortOrder {
	if by == SortRelevance {
		return OrderDesc
	}
	if order != "" {
		return order
	}
	switch by {
	case SortPrice:
		return OrderAsc
	case SortRating, SortNewest:
		return OrderDesc
	default:
		return OrderDesc
	}
}

// Query returns the trimmed free-text query ("" means no text filter).
func (r *Request) Query() string { return r.query }

// Filters returns the structured filters.
func (r *Request) Filters() filter.Filters { return r.filters }

// Page returns the 1-based page number.
func (r *Request) Page() int { return r.page }

// PerPage returns the clamped page size.
func (r *Request) PerPage() int { return r.perPage }

// SortBy returns the primary sort key.
func (r *Request) SortBy() SortBy { return r.sortBy }

// SortOrder returns the resolved sort direction.
func (r *Request) SortOrder() SortOrder { return r.sortOrder }

// Fields returns the requested field tree for the shape guard.
func (r *Request) Fields() []query.Field { return r.fields }
