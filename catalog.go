package searchd

import (
	"context"
	"fmt"
	"time"

	"github.com/lensbook/searchd/internal/domain/catalog"
)

// Catalog returns the catalog write service for seeding and maintenance.
func (c *Client) Catalog() *CatalogService {
	return &CatalogService{writer: c.writer, obs: c.obs}
}

// CatalogService exposes catalog write operations.
type CatalogService struct {
	writer catalogWriter
	obs    *observer
}

// UpsertCategory stores a category.
func (s *CatalogService) UpsertCategory(ctx context.Context, in CategoryInput) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("upsert_category", start, err) }()

	cat, err := catalog.NewCategory(in.ID, in.Name, in.Slug)
	if err != nil {
		return fmt.Errorf("upsert category: %w", err)
	}
	if err = s.writer.PutCategory(ctx, &cat); err != nil {
		return fmt.Errorf("upsert category: %w", err)
	}
	return nil
}

// UpsertVendor stores a vendor profile.
func (s *CatalogService) UpsertVendor(ctx context.Context, in VendorInput) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("upsert_vendor", start, err) }()

	v, err := catalog.NewVendor(
		in.ID, in.BusinessName, in.Location,
		in.Latitude, in.Longitude,
		in.AverageRating, in.IsVerified,
	)
	if err != nil {
		return fmt.Errorf("upsert vendor: %w", err)
	}
	if err = s.writer.PutVendor(ctx, &v); err != nil {
		return fmt.Errorf("upsert vendor: %w", err)
	}
	return nil
}

// UpsertService stores a service listing.
func (s *CatalogService) UpsertService(ctx context.Context, in ServiceInput) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("upsert_service", start, err) }()

	svc, err := serviceFromInput(in)
	if err != nil {
		return fmt.Errorf("upsert service: %w", err)
	}
	if err = s.writer.PutService(ctx, &svc); err != nil {
		return fmt.Errorf("upsert service: %w", err)
	}
	return nil
}

// UpsertServices stores multiple services in one pipelined round-trip.
func (s *CatalogService) UpsertServices(ctx context.Context, ins []ServiceInput) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("upsert_services", start, err) }()

	svcs := make([]catalog.Service, len(ins))
	for i, in := range ins {
		svc, err := serviceFromInput(in)
		if err != nil {
			return fmt.Errorf("upsert services: item %d: %w", i, err)
		}
		svcs[i] = svc
	}
	if err = s.writer.PutServices(ctx, svcs); err != nil {
		return fmt.Errorf("upsert services: %w", err)
	}
	return nil
}

// DeleteService removes a service listing.
func (s *CatalogService) DeleteService(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("delete_service", start, err) }()

	if err = s.writer.DeleteService(ctx, id); err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

func serviceFromInput(in ServiceInput) (catalog.Service, error) {
	createdAt := in.CreatedAt
	if createdAt == 0 {
		createdAt = time.Now().UnixMilli()
	}
	return catalog.NewService(
		in.ID, in.Name, in.Description,
		in.BasePrice,
		catalog.PricingType(in.PricingType),
		catalog.Status(in.Status),
		in.CategoryID, in.VendorID,
		createdAt,
	)
}
