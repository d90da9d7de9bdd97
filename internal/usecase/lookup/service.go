// Package lookup serves direct by-id reads, distinct from search: a missing
// id is domain.ErrNotFound, while an empty search result is a valid page.
package lookup

import (
	"context"
	"fmt"

	"github.com/lensbook/searchd/internal/domain"
	"github.com/lensbook/searchd/internal/domain/catalog"
)

// Service handles direct service and vendor lookups.
type Service struct {
	catalog Catalog
}

// New creates a lookup service.
func New(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// ServiceByID fetches one listing. Non-active services are visible only to
// the owning vendor; other callers get domain.ErrNotFound rather than a
// hint that the record exists.
func (s *Service) ServiceByID(ctx context.Context, id, callerVendorID string) (catalog.Listing, error) {
	l, err := s.catalog.GetService(ctx, id)
	if err != nil {
		return catalog.Listing{}, fmt.Errorf("get service %s: %w", id, err)
	}

	if l.Service().Status() != catalog.StatusActive && l.Service().VendorID() != callerVendorID {
		return catalog.Listing{}, fmt.Errorf("service %s: %w", id, domain.ErrNotFound)
	}
	return l, nil
}

// VendorByID fetches one vendor profile.
func (s *Service) VendorByID(ctx context.Context, id string) (catalog.Vendor, error) {
	v, err := s.catalog.GetVendor(ctx, id)
	if err != nil {
		return catalog.Vendor{}, fmt.Errorf("get vendor %s: %w", id, err)
	}
	return v, nil
}
