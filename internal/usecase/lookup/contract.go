package lookup

import (
	"context"

	"github.com/lensbook/searchd/internal/domain/catalog"
)

// Catalog reads single records by id. Missing records surface as
// domain.ErrNotFound.
type Catalog interface {
	GetService(ctx context.Context, id string) (catalog.Listing, error)
	GetVendor(ctx context.Context, id string) (catalog.Vendor, error)
}
