package searchd

// SortBy constants for SearchQuery.SortBy.
const (
	SortRelevance = "relevance"
	SortPrice     = "price"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// Field is one node of the requested field tree. Nested children drive the
// depth and complexity admission checks.
type Field struct {
	Name     string
	Children []Field
}

// Filters narrows a search. All provided dimensions combine with AND;
// values within one dimension (categories, pricing types) combine with OR.
type Filters struct {
	Categories   []string
	PriceMin     *float64
	PriceMax     *float64
	VendorRating *float64
	VerifiedOnly bool
	PricingTypes []string

	// Either City/State substring text or Latitude+Longitude+RadiusKm.
	// Geo takes precedence when both are given.
	City      string
	State     string
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64

	// Status with CallerVendorID lifts the active-only visibility rule for
	// the caller's own records.
	Status         string
	CallerVendorID string
}

// SearchQuery is the public search input.
type SearchQuery struct {
	Query     string
	Filters   *Filters
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string
	Fields    []Field
}

// VendorInfo is a vendor profile snapshot.
type VendorInfo struct {
	ID            string
	BusinessName  string
	Location      string
	Latitude      *float64
	Longitude     *float64
	AverageRating float64
	IsVerified    bool
}

// CategoryInfo is a category snapshot.
type CategoryInfo struct {
	ID   string
	Name string
	Slug string
}

// ServiceInfo is a service listing with its vendor and category joined.
type ServiceInfo struct {
	ID               string
	Name             string
	Description      string
	BasePrice        float64
	PricingType      string
	PricingTypeLabel string
	Status           string
	CreatedAt        int64
	Vendor           VendorInfo
	Category         CategoryInfo
}

// SearchHit is one scored result.
type SearchHit struct {
	ServiceInfo
	Score float64
}

// FacetBand is one half-open range bucket [Min, Max). A nil Max means
// open-ended.
type FacetBand struct {
	Min   float64
	Max   *float64
	Label string
}

// CategoryFacet is one category bucket with its count.
type CategoryFacet struct {
	ID    string
	Name  string
	Slug  string
	Count int
}

// RangeFacet is one price or rating band with its count.
type RangeFacet struct {
	Label string
	Min   float64
	Max   *float64
	Count int
}

// TermFacet is one location or pricing-type bucket with its count.
type TermFacet struct {
	Value string
	Label string
	Count int
}

// FacetSet holds all facet dimensions of a result page.
type FacetSet struct {
	Categories    []CategoryFacet
	PriceRanges   []RangeFacet
	Locations     []TermFacet
	PricingTypes  []TermFacet
	VendorRatings []RangeFacet
}

// SearchPage is one page of search results with pagination metadata and
// facet counts.
type SearchPage struct {
	Hits            []SearchHit
	TotalCount      int
	CurrentPage     int
	TotalPages      int
	HasNextPage     bool
	HasPreviousPage bool
	Facets          FacetSet
	SearchTimeMs    float64
}

// ServiceInput is the write-side shape for seeding the catalog.
type ServiceInput struct {
	ID          string
	Name        string
	Description string
	BasePrice   float64
	PricingType string
	Status      string
	CategoryID  string
	VendorID    string
	CreatedAt   int64
}

// VendorInput is the write-side shape for seeding vendors.
type VendorInput struct {
	ID            string
	BusinessName  string
	Location      string
	Latitude      *float64
	Longitude     *float64
	AverageRating float64
	IsVerified    bool
}

// CategoryInput is the write-side shape for seeding categories.
type CategoryInput struct {
	ID   string
	Name string
	Slug string
}
