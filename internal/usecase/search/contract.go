package search

import (
	"context"

	"github.com/lensbook/searchd/internal/domain/catalog"
	"github.com/lensbook/searchd/internal/domain/search/filter"
)

// Catalog is the read-only listing source. FindServices returns the
// point-in-time snapshot of listings matching the predicate; the service
// passes the visibility predicate and applies dimension predicates
// in-process so facets can relax one dimension at a time.
type Catalog interface {
	FindServices(ctx context.Context, match filter.Predicate) ([]catalog.Listing, error)
	CountServices(ctx context.Context, match filter.Predicate) (int, error)
}
