package searchd

// Sort keys for SearchRequest.SortBy.
const (
	SortRelevance = "relevance"
	SortPrice     = "price"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// Field is one node of the requested field tree. Nested children drive the
// server's depth and complexity admission checks.
type Field struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields,omitempty"`
}

// Filters narrows a search. All provided dimensions combine with AND;
// values within one dimension (categories, pricing types) combine with OR.
type Filters struct {
	Categories   []string `json:"categories,omitempty"`
	PriceMin     *float64 `json:"priceMin,omitempty"`
	PriceMax     *float64 `json:"priceMax,omitempty"`
	VendorRating *float64 `json:"vendorRating,omitempty"`
	VerifiedOnly bool     `json:"verifiedOnly,omitempty"`
	PricingTypes []string `json:"pricingTypes,omitempty"`

	// Either City/State substring text or Latitude+Longitude+RadiusKm.
	// Geo takes precedence when both are given.
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	RadiusKm  *float64 `json:"radiusKm,omitempty"`

	// Status widens visibility only for the calling vendor's own records
	// (see WithVendorID).
	Status string `json:"status,omitempty"`
}

// SearchRequest is the POST /api/v1/search body.
type SearchRequest struct {
	Query     string   `json:"query,omitempty"`
	Filters   *Filters `json:"filters,omitempty"`
	Page      int      `json:"page,omitempty"`
	PerPage   int      `json:"perPage,omitempty"`
	SortBy    string   `json:"sortBy,omitempty"`
	SortOrder string   `json:"sortOrder,omitempty"`
	Fields    []Field  `json:"fields,omitempty"`
}

// Vendor is a vendor profile.
type Vendor struct {
	ID            string   `json:"id"`
	BusinessName  string   `json:"businessName"`
	Location      string   `json:"location,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	AverageRating float64  `json:"averageRating"`
	IsVerified    bool     `json:"isVerified"`
}

// Category is a service category.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Service is a service listing with its vendor and category joined.
type Service struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	BasePrice        float64  `json:"basePrice"`
	PricingType      string   `json:"pricingType"`
	PricingTypeLabel string   `json:"pricingTypeLabel"`
	Status           string   `json:"status"`
	CreatedAt        int64    `json:"createdAt"`
	Vendor           Vendor   `json:"vendorProfile"`
	Category         Category `json:"category"`
}

// Hit is one scored search result.
type Hit struct {
	Service
	Score float64 `json:"score"`
}

// Pagination is the page metadata of a search response.
type Pagination struct {
	TotalCount      int  `json:"totalCount"`
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	PerPage         int  `json:"perPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// CategoryBucket is one category facet bucket.
type CategoryBucket struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// RangeBucket is one price or rating band bucket. A nil Max is open-ended.
type RangeBucket struct {
	Label string   `json:"label"`
	Min   float64  `json:"min"`
	Max   *float64 `json:"max,omitempty"`
	Count int      `json:"count"`
}

// TermBucket is one location or pricing-type bucket.
type TermBucket struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Facets carries the aggregated facet counts for the full filtered set.
// Each dimension's counts are computed with every active filter applied
// except that dimension's own.
type Facets struct {
	Categories    []CategoryBucket `json:"categories"`
	PriceRanges   []RangeBucket    `json:"priceRanges"`
	Locations     []TermBucket     `json:"locations"`
	PricingTypes  []TermBucket     `json:"pricingTypes"`
	VendorRatings []RangeBucket    `json:"vendorRatings"`
}

// SearchResponse is the POST /api/v1/search response.
type SearchResponse struct {
	Results      []Hit      `json:"results"`
	Pagination   Pagination `json:"pagination"`
	Facets       Facets     `json:"facets"`
	SearchTimeMs float64    `json:"searchTimeMs"`
}

// HealthStatus is the GET /health response.
type HealthStatus struct {
	Status string            `json:"status"` // "ok", "degraded"
	Checks map[string]string `json:"checks"`
}
