package search

import (
	"context"
	"testing"

	"github.com/lensbook/searchd/internal/domain/catalog"
	"github.com/lensbook/searchd/internal/domain/search/facet"
	"github.com/lensbook/searchd/internal/domain/search/filter"
)

func categoryCount(buckets []facet.CategoryBucket, id string) int {
	for _, b := range buckets {
		if b.ID == id {
			return b.Count
		}
	}
	return 0
}

func rangeCount(buckets []facet.RangeBucket, label string) int {
	for _, b := range buckets {
		if b.Label == label {
			return b.Count
		}
	}
	return 0
}

func termCount(buckets []facet.TermBucket, value string) int {
	for _, b := range buckets {
		if b.Value == value {
			return b.Count
		}
	}
	return 0
}

func TestFacets_CategoryCountsIgnoreOwnFilter(t *testing.T) {
	svc, _ := fixtureService()

	req := makeRequest(t, "", filter.Filters{Categories: []string{"cat-photo"}})
	page, err := svc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Results honor the category filter.
	if page.TotalCount() != 2 {
		t.Fatalf("expected 2 photo services, got %d", page.TotalCount())
	}

	// Category facet relaxes its own filter: other categories keep counts.
	cats := page.Facets().Categories
	if got := categoryCount(cats, "cat-photo"); got != 2 {
		t.Errorf("expected cat-photo count 2, got %d", got)
	}
	if got := categoryCount(cats, "cat-video"); got != 1 {
		t.Errorf("expected cat-video count 1, got %d", got)
	}
	if got := categoryCount(cats, "cat-dj"); got != 1 {
		t.Errorf("expected cat-dj count 1, got %d", got)
	}

	// Price facet keeps the category filter: only photo prices counted.
	prices := page.Facets().PriceRanges
	if got := rangeCount(prices, "$0 - $250"); got != 1 {
		t.Errorf("expected one photo service under $250, got %d", got)
	}
	if got := rangeCount(prices, "$2500+"); got != 1 {
		t.Errorf("expected one photo service at $2500+, got %d", got)
	}
	if got := rangeCount(prices, "$500 - $1000"); got != 0 {
		t.Errorf("non-photo prices must not leak into the price facet, got %d", got)
	}
}

func TestFacets_PriceCountsIgnoreOwnFilter(t *testing.T) {
	svc, _ := fixtureService()

	req := makeRequest(t, "", filter.Filters{PriceMax: fptr(500)})
	page, err := svc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.TotalCount() != 1 {
		t.Fatalf("expected 1 result under 500, got %d", page.TotalCount())
	}

	// Price facet counts span all active services, not just the filtered set.
	prices := page.Facets().PriceRanges
	if got := rangeCount(prices, "$0 - $250"); got != 1 {
		t.Errorf("expected $0-$250 count 1, got %d", got)
	}
	if got := rangeCount(prices, "$500 - $1000"); got != 2 {
		t.Errorf("expected $500-$1000 count 2, got %d", got)
	}
	if got := rangeCount(prices, "$2500+"); got != 1 {
		t.Errorf("expected $2500+ count 1, got %d", got)
	}
}

func TestFacets_TextQueryAppliesToEveryDimension(t *testing.T) {
	svc, _ := fixtureService()

	req := makeRequest(t, "photography", filter.Filters{})
	page, err := svc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only the three text matches feed the facets.
	cats := page.Facets().Categories
	if got := categoryCount(cats, "cat-photo"); got != 2 {
		t.Errorf("expected cat-photo count 2, got %d", got)
	}
	if got := categoryCount(cats, "cat-video"); got != 1 {
		t.Errorf("expected cat-video count 1, got %d", got)
	}
	if got := categoryCount(cats, "cat-dj"); got != 0 {
		t.Errorf("cat-dj must not appear for a photography query, got %d", got)
	}
}

func TestFacets_ZeroCountBucketsOmitted(t *testing.T) {
	svc, _ := fixtureService()

	req := makeRequest(t, "", filter.Filters{})
	page, err := svc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, b := range page.Facets().PriceRanges {
		if b.Count == 0 {
			t.Errorf("zero-count band %q must be omitted", b.Label)
		}
	}
	// No service sits in the $250-$500 band.
	if got := rangeCount(page.Facets().PriceRanges, "$250 - $500"); got != 0 {
		t.Errorf("expected empty $250-$500 band, got %d", got)
	}
}

func TestFacets_VerifiedAppliesToAllDimensions(t *testing.T) {
	svc, _ := fixtureService()

	req := makeRequest(t, "", filter.Filters{VerifiedOnly: true})
	page, err := svc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// svc-port's unverified vendor is excluded from results and every facet.
	if page.TotalCount() != 3 {
		t.Fatalf("expected 3 verified results, got %d", page.TotalCount())
	}
	if got := termCount(page.Facets().Locations, "Los Angeles, CA"); got != 0 {
		t.Errorf("unverified vendor location must not appear in facets, got %d", got)
	}
	if got := categoryCount(page.Facets().Categories, "cat-photo"); got != 1 {
		t.Errorf("expected cat-photo count 1 under verified-only, got %d", got)
	}
}

func TestFacets_PricingTypesKeepEnumOrder(t *testing.T) {
	svc, _ := fixtureService()

	req := makeRequest(t, "", filter.Filters{})
	page, err := svc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pts := page.Facets().PricingTypes
	if len(pts) != 2 {
		t.Fatalf("expected hourly and package buckets, got %v", pts)
	}
	if pts[0].Value != string(catalog.PricingHourly) || pts[0].Count != 1 {
		t.Errorf("expected hourly first with count 1, got %+v", pts[0])
	}
	if pts[1].Value != string(catalog.PricingPackage) || pts[1].Count != 3 {
		t.Errorf("expected package second with count 3, got %+v", pts[1])
	}
	if pts[1].Label != "Package" {
		t.Errorf("expected display label Package, got %q", pts[1].Label)
	}
}

func TestFacets_RatingBands(t *testing.T) {
	svc, _ := fixtureService()

	req := makeRequest(t, "", filter.Filters{})
	page, err := svc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ratings := page.Facets().VendorRatings
	if got := rangeCount(ratings, "4.5+"); got != 2 {
		t.Errorf("expected two vendors at 4.5+, got %d", got)
	}
	if got := rangeCount(ratings, "4.0 - 4.5"); got != 1 {
		t.Errorf("expected one vendor in 4.0-4.5, got %d", got)
	}
	if got := rangeCount(ratings, "3.0 - 3.5"); got != 1 {
		t.Errorf("expected one vendor in 3.0-3.5, got %d", got)
	}
}

func TestFacets_PopulatedWhenNoResults(t *testing.T) {
	svc, _ := fixtureService()

	// No active service costs 10 or less, so the result set is empty. The
	// price facet relaxes its own filter and must still report the full
	// distribution.
	req := makeRequest(t, "", filter.Filters{PriceMax: fptr(10)})
	page, err := svc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.TotalCount() != 0 {
		t.Fatalf("expected 0 results, got %d", page.TotalCount())
	}
	if len(page.Hits()) != 0 {
		t.Fatalf("expected empty hit slice, got %d hits", len(page.Hits()))
	}

	prices := page.Facets().PriceRanges
	if len(prices) == 0 {
		t.Fatal("price facet must stay populated on an empty result set")
	}
	if got := rangeCount(prices, "$0 - $250"); got != 1 {
		t.Errorf("expected one service in $0-$250, got %d", got)
	}
	if got := rangeCount(prices, "$500 - $1000"); got != 2 {
		t.Errorf("expected two services in $500-$1000, got %d", got)
	}
	if got := rangeCount(prices, "$2500+"); got != 1 {
		t.Errorf("expected one service in $2500+, got %d", got)
	}
}
