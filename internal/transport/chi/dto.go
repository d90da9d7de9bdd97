package chi

import (
	domcat "github.com/lensbook/searchd/internal/domain/catalog"
	"github.com/lensbook/searchd/internal/domain/search/facet"
	"github.com/lensbook/searchd/internal/domain/search/filter"
	"github.com/lensbook/searchd/internal/domain/search/query"
	"github.com/lensbook/searchd/internal/domain/search/result"
)

// errorCode is the machine-readable error identifier in error responses.
type errorCode string

const (
	codeBadRequest      errorCode = "bad_request"
	codeInvalidFilter   errorCode = "invalid_filter"
	codeQueryTooDeep    errorCode = "query_too_deep"
	codeQueryTooComplex errorCode = "query_too_complex"
	codeNotFound        errorCode = "not_found"
	codeInternalError   errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// fieldDTO is one node of the requested field tree.
type fieldDTO struct {
	Name   string     `json:"name"`
	Fields []fieldDTO `json:"fields,omitempty"`
}

type filtersDTO struct {
	Categories   []string `json:"categories,omitempty"`
	PriceMin     *float64 `json:"priceMin,omitempty"`
	PriceMax     *float64 `json:"priceMax,omitempty"`
	VendorRating *float64 `json:"vendorRating,omitempty"`
	VerifiedOnly bool     `json:"verifiedOnly,omitempty"`
	PricingTypes []string `json:"pricingTypes,omitempty"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	RadiusKm     *float64 `json:"radiusKm,omitempty"`
	Status       string   `json:"status,omitempty"`
}

type searchRequestDTO struct {
	Query     string      `json:"query,omitempty"`
	Filters   *filtersDTO `json:"filters,omitempty"`
	Page      int         `json:"page,omitempty"`
	PerPage   int         `json:"perPage,omitempty"`
	SortBy    string      `json:"sortBy,omitempty"`
	SortOrder string      `json:"sortOrder,omitempty"`
	Fields    []fieldDTO  `json:"fields,omitempty"`
}

type vendorDTO struct {
	ID            string   `json:"id"`
	BusinessName  string   `json:"businessName"`
	Location      string   `json:"location,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	AverageRating float64  `json:"averageRating"`
	IsVerified    bool     `json:"isVerified"`
}

type categoryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type serviceDTO struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Description      string      `json:"description,omitempty"`
	BasePrice        float64     `json:"basePrice"`
	PricingType      string      `json:"pricingType"`
	PricingTypeLabel string      `json:"pricingTypeLabel"`
	Status           string      `json:"status"`
	CreatedAt        int64       `json:"createdAt"`
	Vendor           vendorDTO   `json:"vendorProfile"`
	Category         categoryDTO `json:"category"`
}

type hitDTO struct {
	serviceDTO
	Score float64 `json:"score"`
}

type paginationDTO struct {
	TotalCount      int  `json:"totalCount"`
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	PerPage         int  `json:"perPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

type categoryBucketDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

type rangeBucketDTO struct {
	Label string   `json:"label"`
	Min   float64  `json:"min"`
	Max   *float64 `json:"max,omitempty"`
	Count int      `json:"count"`
}

type termBucketDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type facetsDTO struct {
	Categories    []categoryBucketDTO `json:"categories"`
	PriceRanges   []rangeBucketDTO    `json:"priceRanges"`
	Locations     []termBucketDTO     `json:"locations"`
	PricingTypes  []termBucketDTO     `json:"pricingTypes"`
	VendorRatings []rangeBucketDTO    `json:"vendorRatings"`
}

type searchResponseDTO struct {
	Results      []hitDTO      `json:"results"`
	Pagination   paginationDTO `json:"pagination"`
	Facets       facetsDTO     `json:"facets"`
	SearchTimeMs float64       `json:"searchTimeMs"`
}

func fieldsFromDTO(dtos []fieldDTO) []query.Field {
	if len(dtos) == 0 {
		return nil
	}
	fields := make([]query.Field, len(dtos))
	for i, d := range dtos {
		fields[i] = query.Field{Name: d.Name, Children: fieldsFromDTO(d.Fields)}
	}
	return fields
}

func filtersFromDTO(d *filtersDTO, callerVendorID string) filter.Filters {
	if d == nil {
		return filter.Filters{CallerVendorID: callerVendorID}
	}

	f := filter.Filters{
		Categories:     d.Categories,
		PriceMin:       d.PriceMin,
		PriceMax:       d.PriceMax,
		VendorRating:   d.VendorRating,
		VerifiedOnly:   d.VerifiedOnly,
		City:           d.City,
		State:          d.State,
		Latitude:       d.Latitude,
		Longitude:      d.Longitude,
		RadiusKm:       d.RadiusKm,
		CallerVendorID: callerVendorID,
	}
	for _, pt := range d.PricingTypes {
		f.PricingTypes = append(f.PricingTypes, domcat.PricingType(pt))
	}
	if d.Status != "" {
		st := domcat.Status(d.Status)
		f.Status = &st
	}
	return f
}

func vendorToDTO(v *domcat.Vendor) vendorDTO {
	d := vendorDTO{
		ID:            v.ID(),
		BusinessName:  v.BusinessName(),
		Location:      v.Location(),
		AverageRating: v.AverageRating(),
		IsVerified:    v.IsVerified(),
	}
	if v.HasCoordinates() {
		lat, lon := v.Latitude(), v.Longitude()
		d.Latitude = &lat
		d.Longitude = &lon
	}
	return d
}

func categoryToDTO(c *domcat.Category) categoryDTO {
	return categoryDTO{ID: c.ID(), Name: c.Name(), Slug: c.Slug()}
}

func listingToDTO(l *domcat.Listing) serviceDTO {
	svc := l.Service()
	return serviceDTO{
		ID:               svc.ID(),
		Name:             svc.Name(),
		Description:      svc.Description(),
		BasePrice:        svc.BasePrice(),
		PricingType:      string(svc.PricingType()),
		PricingTypeLabel: svc.PricingType().Label(),
		Status:           string(svc.Status()),
		CreatedAt:        svc.CreatedAt(),
		Vendor:           vendorToDTO(l.Vendor()),
		Category:         categoryToDTO(l.Category()),
	}
}

func facetsToDTO(f facet.Facets) facetsDTO {
	out := facetsDTO{
		Categories:    make([]categoryBucketDTO, len(f.Categories)),
		PriceRanges:   make([]rangeBucketDTO, len(f.PriceRanges)),
		Locations:     make([]termBucketDTO, len(f.Locations)),
		PricingTypes:  make([]termBucketDTO, len(f.PricingTypes)),
		VendorRatings: make([]rangeBucketDTO, len(f.VendorRatings)),
	}
	for i, b := range f.Categories {
		out.Categories[i] = categoryBucketDTO{ID: b.ID, Name: b.Name, Slug: b.Slug, Count: b.Count}
	}
	for i, b := range f.PriceRanges {
		out.PriceRanges[i] = rangeBucketDTO{Label: b.Label, Min: b.Min, Max: b.Max, Count: b.Count}
	}
	for i, b := range f.Locations {
		out.Locations[i] = termBucketDTO{Value: b.Value, Label: b.Label, Count: b.Count}
	}
	for i, b := range f.PricingTypes {
		out.PricingTypes[i] = termBucketDTO{Value: b.Value, Label: b.Label, Count: b.Count}
	}
	for i, b := range f.VendorRatings {
		out.VendorRatings[i] = rangeBucketDTO{Label: b.Label, Min: b.Min, Max: b.Max, Count: b.Count}
	}
	return out
}

func pageToDTO(p *result.Page, perPage int) searchResponseDTO {
	hits := make([]hitDTO, len(p.Hits()))
	for i := range p.Hits() {
		h := &p.Hits()[i]
		hits[i] = hitDTO{serviceDTO: listingToDTO(h.Listing()), Score: h.Score()}
	}
	return searchResponseDTO{
		Results: hits,
		Pagination: paginationDTO{
			TotalCount:      p.TotalCount(),
			CurrentPage:     p.CurrentPage(),
			TotalPages:      p.TotalPages(),
			PerPage:         perPage,
			HasNextPage:     p.HasNextPage(),
			HasPreviousPage: p.HasPreviousPage(),
		},
		Facets:       facetsToDTO(p.Facets()),
		SearchTimeMs: p.SearchTimeMs(),
	}
}
