// Package result holds the search response value objects.
package result

import (
	"github.com/lensbook/searchd/internal/domain/catalog"
	"github.com/lensbook/searchd/internal/domain/search/facet"
)

// Hit is a single matched listing with its relevance score.
type Hit struct {
	listing catalog.Listing
	score   float64
}

// NewHit creates a hit.
func NewHit(listing catalog.Listing, score float64) Hit {
	return Hit{listing: listing, score: score}
}

// Listing returns the matched listing.
func (h *Hit) Listing() *catalog.Listing { return &h.listing }

// Score returns the relevance score (0 when no text query was given).
func (h *Hit) Score() float64 { return h.score }

// Page is one page of search results with pagination metadata, facets and
// timing.
type Page struct {
	hits         []Hit
	totalCount   int
	currentPage  int
	totalPages   int
	hasNext      bool
	hasPrevious  bool
	facets       facet.Facets
	searchTimeMs float64
}

// NewPage creates a result page.
func NewPage(
	hits []Hit,
	totalCount, currentPage, totalPages int,
	hasNext, hasPrevious bool,
	facets facet.Facets,
	searchTimeMs float64,
) Page {
	return Page{
		hits:         hits,
		totalCount:   totalCount,
		currentPage:  currentPage,
		totalPages:   totalPages,
		hasNext:      hasNext,
		hasPrevious:  hasPrevious,
		facets:       facets,
		searchTimeMs: searchTimeMs,
	}
}

// Hits returns the page slice.
func (p *Page) Hits() []Hit { return p.hits }

// TotalCount returns the number of matches across all pages.
func (p *Page) TotalCount() int { return p.totalCount }

// CurrentPage returns the 1-based page number.
func (p *Page) CurrentPage() int { return p.currentPage }

// TotalPages returns the page count for the current page size.
func (p *Page) TotalPages() int { return p.totalPages }

// HasNextPage reports whether a later page exists.
func (p *Page) HasNextPage() bool { return p.hasNext }

// HasPreviousPage reports whether an earlier page exists.
func (p *Page) HasPreviousPage() bool { return p.hasPrevious }

// Facets returns the aggregated facet counts for the full filtered set.
func (p *Page) Facets() facet.Facets { return p.facets }

// SearchTimeMs returns the wall-clock duration of the whole operation in
// milliseconds.
func (p *Page) SearchTimeMs() float64 { return p.searchTimeMs }
