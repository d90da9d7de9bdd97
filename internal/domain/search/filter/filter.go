// Package filter compiles a structured filter request into a normalized
// predicate set. Each facetable dimension compiles to its own predicate so
// the aggregator can re-evaluate the set with one dimension relaxed.
package filter

import (
	"math"
	"strings"

	"github.com/lensbook/searchd/internal/domain"
	"github.com/lensbook/searchd/internal/domain/catalog"
	"github.com/lensbook/searchd/internal/domain/geo"
)

// Dimension identifies one facetable filter dimension.
type Dimension string

// Facetable dimensions. Verification and visibility are filters but not
// facets; they apply to every facet computation.
const (
	DimCategory    Dimension = "category"
	DimPrice       Dimension = "price"
	DimLocation    Dimension = "location"
	DimPricingType Dimension = "pricing_type"
	DimRating      Dimension = "rating"
)

// Dimensions lists all facetable dimensions in presentation order.
func Dimensions() []Dimension {
	return []Dimension{DimCategory, DimPrice, DimLocation, DimPricingType, DimRating}
}

// Filters is the raw structured filter input, before compilation.
// Nil pointers and empty slices mean "dimension not filtered".
type Filters struct {
	Categories   []string
	PriceMin     *float64
	PriceMax     *float64
	VendorRating *float64
	VerifiedOnly bool
	PricingTypes []catalog.PricingType

	// Location: either City/State substring text or Latitude+Longitude+RadiusKm.
	// Geo takes precedence when both are given.
	City      string
	State     string
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64

	// Owner bypass: an explicit status filter combined with the calling
	// vendor's id lifts the active-only visibility rule for that vendor's
	// own records.
	Status         *catalog.Status
	CallerVendorID string
}

// Predicate decides whether a listing matches one compiled condition.
type Predicate func(l *catalog.Listing) bool

// PredicateSet is the compiled, normalized form of Filters.
type PredicateSet struct {
	dims       map[Dimension]Predicate
	verified   Predicate
	visibility Predicate
}

// Compile validates the filters and builds the predicate set.
// Malformed values (negative radius, inverted price range, out-of-range
// rating) fail with an error unwrapping to domain.ErrInvalidFilter.
func Compile(f Filters) (PredicateSet, error) {
	dims := make(map[Dimension]Predicate)

	if p, err := compileCategory(f); err != nil {
		return PredicateSet{}, err
	} else if p != nil {
		dims[DimCategory] = p
	}
	if p, err := compilePrice(f); err != nil {
		return PredicateSet{}, err
	} else if p != nil {
		dims[DimPrice] = p
	}
	if p, err := compileLocation(f); err != nil {
		return PredicateSet{}, err
	} else if p != nil {
		dims[DimLocation] = p
	}
	if p, err := compilePricingType(f); err != nil {
		return PredicateSet{}, err
	} else if p != nil {
		dims[DimPricingType] = p
	}
	if p, err := compileRating(f); err != nil {
		return PredicateSet{}, err
	} else if p != nil {
		dims[DimRating] = p
	}

	visibility, err := compileVisibility(f)
	if err != nil {
		return PredicateSet{}, err
	}

	ps := PredicateSet{dims: dims, visibility: visibility}
	if f.VerifiedOnly {
		ps.verified = func(l *catalog.Listing) bool { return l.Vendor().IsVerified() }
	}
	return ps, nil
}

// Matches applies every compiled predicate.
func (p PredicateSet) Matches(l *catalog.Listing) bool {
	return p.MatchesExcept(l, "")
}

// MatchesExcept applies every predicate except the given dimension's own.
// Verification and visibility always apply regardless of the skipped
// dimension.
func (p PredicateSet) MatchesExcept(l *catalog.Listing, skip Dimension) bool {
	if p.visibility != nil && !p.visibility(l) {
		return false
	}
	if p.verified != nil && !p.verified(l) {
		return false
	}
	for dim, pred := range p.dims {
		if dim == skip {
			continue
		}
		if !pred(l) {
			return false
		}
	}
	return true
}

// Visibility returns the status-visibility predicate alone. The catalog
// repository uses it to narrow the candidate snapshot before the in-process
// dimension predicates run.
func (p PredicateSet) Visibility() Predicate { return p.visibility }

// Has reports whether a dimension has an active filter.
func (p PredicateSet) Has(dim Dimension) bool {
	_, ok := p.dims[dim]
	return ok
}

func compileCategory(f Filters) (Predicate, error) {
	if len(f.Categories) == 0 {
		return nil, nil
	}
	set := make(map[string]struct{}, len(f.Categories))
	for _, id := range f.Categories {
		if id == "" {
			return nil, domain.NewInvalidFilter("categories", "category id must not be empty")
		}
		set[id] = struct{}{}
	}
	return func(l *catalog.Listing) bool {
		_, ok := set[l.Service().CategoryID()]
		return ok
	}, nil
}

func compilePrice(f Filters) (Predicate, error) {
	if f.PriceMin == nil && f.PriceMax == nil {
		return nil, nil
	}
	min := 0.0
	max := math.Inf(1)
	if f.PriceMin != nil {
		if *f.PriceMin < 0 {
			return nil, domain.NewInvalidFilter("priceMin", "must not be negative")
		}
		min = *f.PriceMin
	}
	if f.PriceMax != nil {
		if *f.PriceMax < 0 {
			return nil, domain.NewInvalidFilter("priceMax", "must not be negative")
		}
		max = *f.PriceMax
	}
	if min > max {
		return nil, domain.NewInvalidFilter("priceMin", "must not exceed priceMax")
	}
	return func(l *catalog.Listing) bool {
		p := l.Service().BasePrice()
		return p >= min && p <= max
	}, nil
}

func compileLocation(f Filters) (Predicate, error) {
	hasGeo := f.Latitude != nil || f.Longitude != nil || f.RadiusKm != nil
	if hasGeo {
		if f.Latitude == nil || f.Longitude == nil {
			return nil, domain.NewInvalidFilter("location", "latitude and longitude must be set together")
		}
		if f.RadiusKm == nil {
			return nil, domain.NewInvalidFilter("radius", "required with coordinates")
		}
		if *f.RadiusKm <= 0 {
			return nil, domain.NewInvalidFilter("radius", "must be positive")
		}
		if !geo.ValidateCoordinates(*f.Latitude, *f.Longitude) {
			return nil, domain.NewInvalidFilter("location", "coordinates out of range")
		}
		lat, lon, radius := *f.Latitude, *f.Longitude, *f.RadiusKm
		return func(l *catalog.Listing) bool {
			v := l.Vendor()
			if !v.HasCoordinates() {
				return false
			}
			return geo.HaversineKm(lat, lon, v.Latitude(), v.Longitude()) <= radius
		}, nil
	}

	parts := locationParts(f.City, f.State)
	if len(parts) == 0 {
		return nil, nil
	}
	return func(l *catalog.Listing) bool {
		loc := strings.ToLower(l.Vendor().Location())
		for _, part := range parts {
			if !strings.Contains(loc, part) {
				return false
			}
		}
		return true
	}, nil
}

func locationParts(city, state string) []string {
	var parts []string
	for _, p := range []string{city, state} {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func compilePricingType(f Filters) (Predicate, error) {
	if len(f.PricingTypes) == 0 {
		return nil, nil
	}
	set := make(map[catalog.PricingType]struct{}, len(f.PricingTypes))
	for _, pt := range f.PricingTypes {
		if !pt.IsValid() {
			return nil, domain.NewInvalidFilter("pricingTypes", "unknown pricing type "+string(pt))
		}
		set[pt] = struct{}{}
	}
	return func(l *catalog.Listing) bool {
		_, ok := set[l.Service().PricingType()]
		return ok
	}, nil
}

func compileRating(f Filters) (Predicate, error) {
	if f.VendorRating == nil {
		return nil, nil
	}
	floor := *f.VendorRating
	if floor < 0 || floor > 5 {
		return nil, domain.NewInvalidFilter("vendorRating", "must be between 0 and 5")
	}
	return func(l *catalog.Listing) bool {
		return l.Vendor().AverageRating() >= floor
	}, nil
}

func compileVisibility(f Filters) (Predicate, error) {
	if f.Status == nil {
		return func(l *catalog.Listing) bool {
			return l.Service().Status() == catalog.StatusActive
		}, nil
	}

	if !f.Status.IsValid() {
		return nil, domain.NewInvalidFilter("status", "unknown status "+string(*f.Status))
	}
	status := *f.Status
	caller := f.CallerVendorID
	return func(l *catalog.Listing) bool {
		svc := l.Service()
		if svc.Status() != status {
			return false
		}
		if status == catalog.StatusActive {
			return true
		}
		// Non-active statuses are visible only to the owning vendor.
		return caller != "" && svc.VendorID() == caller
	}, nil
}
