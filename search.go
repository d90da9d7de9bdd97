package searchd

import (
	"context"
	"fmt"
	"time"

	domcat "github.com/lensbook/searchd/internal/domain/catalog"
	"github.com/lensbook/searchd/internal/domain/search/facet"
	"github.com/lensbook/searchd/internal/domain/search/filter"
	"github.com/lensbook/searchd/internal/domain/search/query"
	"github.com/lensbook/searchd/internal/domain/search/request"
)

// Search runs a faceted search over the catalog.
func (c *Client) Search(ctx context.Context, q SearchQuery) (page SearchPage, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search", start, err) }()

	req, err := request.New(
		q.Query,
		filtersToDomain(q.Filters),
		q.Page, q.PerPage,
		q.SortBy, q.SortOrder,
		fieldsToDomain(q.Fields),
	)
	if err != nil {
		return SearchPage{}, fmt.Errorf("search: %w", err)
	}

	res, err := c.searchSvc.Execute(ctx, &req)
	if err != nil {
		return SearchPage{}, fmt.Errorf("search: %w", err)
	}

	hits := make([]SearchHit, len(res.Hits()))
	for i := range res.Hits() {
		h := &res.Hits()[i]
		hits[i] = SearchHit{
			ServiceInfo: listingToInfo(h.Listing()),
			Score:       h.Score(),
		}
	}

	return SearchPage{
		Hits:            hits,
		TotalCount:      res.TotalCount(),
		CurrentPage:     res.CurrentPage(),
		TotalPages:      res.TotalPages(),
		HasNextPage:     res.HasNextPage(),
		HasPreviousPage: res.HasPreviousPage(),
		Facets:          facetsToPublic(res.Facets()),
		SearchTimeMs:    res.SearchTimeMs(),
	}, nil
}

// Service retrieves a single service listing by id. callerVendorID may be
// empty; a non-empty value lets a vendor see their own non-active records.
func (c *Client) Service(ctx context.Context, id, callerVendorID string) (info ServiceInfo, err error) {
	start := time.Now()
	defer func() { c.obs.observe("get_service", start, err) }()

	listing, err := c.lookupSvc.ServiceByID(ctx, id, callerVendorID)
	if err != nil {
		return ServiceInfo{}, fmt.Errorf("get service: %w", err)
	}
	return listingToInfo(&listing), nil
}

// Vendor retrieves a vendor profile by id.
func (c *Client) Vendor(ctx context.Context, id string) (info VendorInfo, err error) {
	start := time.Now()
	defer func() { c.obs.observe("get_vendor", start, err) }()

	v, err := c.lookupSvc.VendorByID(ctx, id)
	if err != nil {
		return VendorInfo{}, fmt.Errorf("get vendor: %w", err)
	}
	return vendorToInfo(&v), nil
}

func fieldsToDomain(fields []Field) []query.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]query.Field, len(fields))
	for i, f := range fields {
		out[i] = query.Field{Name: f.Name, Children: fieldsToDomain(f.Children)}
	}
	return out
}

func filtersToDomain(f *Filters) filter.Filters {
	if f == nil {
		return filter.Filters{}
	}
	out := filter.Filters{
		Categories:     f.Categories,
		PriceMin:       f.PriceMin,
		PriceMax:       f.PriceMax,
		VendorRating:   f.VendorRating,
		VerifiedOnly:   f.VerifiedOnly,
		City:           f.City,
		State:          f.State,
		Latitude:       f.Latitude,
		Longitude:      f.Longitude,
		RadiusKm:       f.RadiusKm,
		CallerVendorID: f.CallerVendorID,
	}
	for _, pt := range f.PricingTypes {
		out.PricingTypes = append(out.PricingTypes, domcat.PricingType(pt))
	}
	if f.Status != "" {
		st := domcat.Status(f.Status)
		out.Status = &st
	}
	return out
}

func vendorToInfo(v *domcat.Vendor) VendorInfo {
	info := VendorInfo{
		ID:            v.ID(),
		BusinessName:  v.BusinessName(),
		Location:      v.Location(),
		AverageRating: v.AverageRating(),
		IsVerified:    v.IsVerified(),
	}
	if v.HasCoordinates() {
		lat, lon := v.Latitude(), v.Longitude()
		info.Latitude = &lat
		info.Longitude = &lon
	}
	return info
}

func listingToInfo(l *domcat.Listing) ServiceInfo {
	svc := l.Service()
	cat := l.Category()
	return ServiceInfo{
		ID:               svc.ID(),
		Name:             svc.Name(),
		Description:      svc.Description(),
		BasePrice:        svc.BasePrice(),
		PricingType:      string(svc.PricingType()),
		PricingTypeLabel: svc.PricingType().Label(),
		Status:           string(svc.Status()),
		CreatedAt:        svc.CreatedAt(),
		Vendor:           vendorToInfo(l.Vendor()),
		Category:         CategoryInfo{ID: cat.ID(), Name: cat.Name(), Slug: cat.Slug()},
	}
}

func facetsToPublic(f facet.Facets) FacetSet {
	out := FacetSet{
		Categories:    make([]CategoryFacet, len(f.Categories)),
		PriceRanges:   make([]RangeFacet, len(f.PriceRanges)),
		Locations:     make([]TermFacet, len(f.Locations)),
		PricingTypes:  make([]TermFacet, len(f.PricingTypes)),
		VendorRatings: make([]RangeFacet, len(f.VendorRatings)),
	}
	for i, b := range f.Categories {
		out.Categories[i] = CategoryFacet{ID: b.ID, Name: b.Name, Slug: b.Slug, Count: b.Count}
	}
	for i, b := range f.PriceRanges {
		out.PriceRanges[i] = RangeFacet{Label: b.Label, Min: b.Min, Max: b.Max, Count: b.Count}
	}
	for i, b := range f.Locations {
		out.Locations[i] = TermFacet{Value: b.Value, Label: b.Label, Count: b.Count}
	}
	for i, b := range f.PricingTypes {
		out.PricingTypes[i] = TermFacet{Value: b.Value, Label: b.Label, Count: b.Count}
	}
	for i, b := range f.VendorRatings {
		out.VendorRatings[i] = RangeFacet{Label: b.Label, Min: b.Min, Max: b.Max, Count: b.Count}
	}
	return out
}
