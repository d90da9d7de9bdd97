package search

import (
	"sort"

	"github.com/lensbook/searchd/internal/domain/search/request"
	"github.com/lensbook/searchd/internal/domain/search/result"
)

// pageMeta is the pagination metadata computed for a sorted hit list.
type pageMeta struct {
	totalCount  int
	currentPage int
	totalPages  int
	hasNext     bool
	hasPrevious bool
}

// sortHits orders hits deterministically: primary key per sortBy/sortOrder,
// ties broken by service id ascending so repeated queries paginate stably.
func sortHits(hits []result.Hit, by request.SortBy, order request.SortOrder) {
	key := sortKey(by)
	desc := order == request.OrderDesc

	sort.Slice(hits, func(i, j int) bool {
		a, b := key(&hits[i]), key(&hits[j])
		if a != b {
			if desc {
				return a > b
			}
			return a < b
		}
		return hits[i].Listing().Service().ID() < hits[j].Listing().Service().ID()
	})
}

func sortKey(by request.SortBy) func(h *result.Hit) float64 {
	switch by {
	case request.SortPrice:
		return func(h *result.Hit) float64 { return h.Listing().Service().BasePrice() }
	case request.SortRating:
		return func(h *result.Hit) float64 { return h.Listing().Vendor().AverageRating() }
	case request.SortNewest:
		return func(h *result.Hit) float64 { return float64(h.Listing().Service().CreatedAt()) }
	default:
		return func(h *result.Hit) float64 { return h.Score() }
	}
}

// paginate slices the sorted hits into the requested page. An out-of-range
// page yields an empty slice with correct metadata, not an error.
func paginate(hits []result.Hit, page, perPage int) ([]result.Hit, pageMeta) {
	total := len(hits)
	totalPages := (total + perPage - 1) / perPage

	meta := pageMeta{
		totalCount:  total,
		currentPage: page,
		totalPages:  totalPages,
		hasNext:     page < totalPages,
		hasPrevious: page > 1,
	}

	start := (page - 1) * perPage
	if start >= total {
		return []result.Hit{}, meta
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return hits[start:end], meta
}
