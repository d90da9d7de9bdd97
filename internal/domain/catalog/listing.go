package catalog

// Listing is the denormalized read-model unit the search core operates on:
// one service joined with its vendor and category snapshots.
type Listing struct {
	service  Service
	vendor   Vendor
	category Category
}

// NewListing creates a listing from its parts.
func NewListing(service Service, vendor Vendor, category Category) Listing {
	return Listing{service: service, vendor: vendor, category: category}
}

// Service returns the service snapshot.
func (l *Listing) Service() *Service { return &l.service }

// Vendor returns the vendor snapshot.
func (l *Listing) Vendor() *Vendor { return &l.vendor }

// Category returns the category snapshot.
func (l *Listing) Category() *Category { return &l.category }
