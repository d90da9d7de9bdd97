// Package facet defines the aggregation bucket types and the band
// configuration for range facets. Price and rating bands are ordered
// (min, max, label) tuples so deployments can tune them without touching
// aggregation logic.
package facet

import "fmt"

// Band is one half-open range bucket [Min, Max). A nil Max means open-ended.
type Band struct {
	Min   float64
	Max   *float64
	Label string
}

// Contains reports whether a value falls into the band.
func (b Band) Contains(v float64) bool {
	if v < b.Min {
		return false
	}
	return b.Max == nil || v < *b.Max
}

// Bands is an ordered list of disjoint bands.
type Bands []Band

// Locate returns the index of the band containing v, or false when no band
// matches.
func (bs Bands) Locate(v float64) (int, bool) {
	for i, b := range bs {
		if b.Contains(v) {
			return i, true
		}
	}
	return 0, false
}

// Validate checks that every band has a label and a non-inverted range.
func (bs Bands) Validate() error {
	for i, b := range bs {
		if b.Label == "" {
			return fmt.Errorf("band %d: label is required", i)
		}
		if b.Max != nil && *b.Max <= b.Min {
			return fmt.Errorf("band %q: max must exceed min", b.Label)
		}
	}
	return nil
}

// DefaultPriceBands returns the stock price bands.
func DefaultPriceBands() Bands {
	return Bands{
		{Min: 0, Max: f(250), Label: "$0 - $250"},
		{Min: 250, Max: f(500), Label: "$250 - $500"},
		{Min: 500, Max: f(1000), Label: "$500 - $1000"},
		{Min: 1000, Max: f(2500), Label: "$1000 - $2500"},
		{Min: 2500, Label: "$2500+"},
	}
}

// DefaultRatingBands returns the stock vendor rating bands, highest first.
func DefaultRatingBands() Bands {
	return Bands{
		{Min: 4.5, Label: "4.5+"},
		{Min: 4.0, Max: f(4.5), Label: "4.0 - 4.5"},
		{Min: 3.5, Max: f(4.0), Label: "3.5 - 4.0"},
		{Min: 3.0, Max: f(3.5), Label: "3.0 - 3.5"},
		{Min: 0, Max: f(3.0), Label: "Below 3.0"},
	}
}

func f(v float64) *float64 { return &v }

// CategoryBucket is one category facet entry.
type CategoryBucket struct {
	ID    string
	Name  string
	Slug  string
	Count int
}

// RangeBucket is one price or rating band entry. Max is nil for open-ended
// bands.
type RangeBucket struct {
	Label string
	Min   float64
	Max   *float64
	Count int
}

// TermBucket is one location or pricing-type entry.
type TermBucket struct {
	Value string
	Label string
	Count int
}

// Facets holds every facet dimension computed for a search. Buckets with a
// zero count are omitted.
type Facets struct {
	Categories    []CategoryBucket
	PriceRanges   []RangeBucket
	Locations     []TermBucket
	PricingTypes  []TermBucket
	VendorRatings []RangeBucket
}
