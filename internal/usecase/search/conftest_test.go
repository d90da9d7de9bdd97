package search

import (
	"context"
	"testing"

	"github.com/lensbook/searchd/internal/domain/catalog"
	"github.com/lensbook/searchd/internal/domain/search/filter"
	"github.com/lensbook/searchd/internal/domain/search/query"
	"github.com/lensbook/searchd/internal/domain/search/request"
	"github.com/lensbook/searchd/internal/domain/search/result"
)

// --- Mocks ---

type mockCatalog struct {
	listings []catalog.Listing
	err      error
	findCall int
}

func (m *mockCatalog) FindServices(_ context.Context, match filter.Predicate) ([]catalog.Listing, error) {
	m.findCall++
	if m.err != nil {
		return nil, m.err
	}
	out := make([]catalog.Listing, 0, len(m.listings))
	for i := range m.listings {
		l := m.listings[i]
		if match == nil || match(&l) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *mockCatalog) CountServices(ctx context.Context, match filter.Predicate) (int, error) {
	listings, err := m.FindServices(ctx, match)
	if err != nil {
		return 0, err
	}
	return len(listings), nil
}

// --- Fixtures ---

func fptr(v float64) *float64 { return &v }

func sptr(s catalog.Status) *catalog.Status { return &s }

func makeListing(
	id, name, description string,
	price float64,
	pricingType catalog.PricingType,
	status catalog.Status,
	createdAt int64,
	vendor catalog.Vendor,
	category catalog.Category,
) catalog.Listing {
	svc := catalog.ReconstructService(
		id, name, description, price, pricingType, status,
		category.ID(), vendor.ID(), createdAt,
	)
	return catalog.NewListing(svc, vendor, category)
}

// fixtureListings builds a small marketplace catalog:
//
//	svc-wed    Wedding Photography Package  2500 package  NY vendor, 4.8, verified
//	svc-port   Portrait Session              150 hourly   LA vendor, 4.2, unverified
//	svc-drone  Drone Coverage                600 package  Chicago "Photography Plus Media", 3.2, verified
//	svc-dj     DJ Night Package              800 package  Austin vendor (no coords), 4.9, verified
//	svc-draft  Engagement Shoot              300 hourly   NY vendor, draft
func fixtureListings() []catalog.Listing {
	catPhoto := catalog.ReconstructCategory("cat-photo", "Photography", "photography")
	catVideo := catalog.ReconstructCategory("cat-video", "Videography", "videography")
	catDJ := catalog.ReconstructCategory("cat-dj", "DJ Services", "dj-services")

	venLens := catalog.ReconstructVendor(
		"ven-lens", "Golden Hour Studios", "New York, NY",
		40.7128, -74.0060, true, 4.8, true,
	)
	venFrame := catalog.ReconstructVendor(
		"ven-frame", "Frame and Light", "Los Angeles, CA",
		34.0522, -118.2437, true, 4.2, false,
	)
	venPlus := catalog.ReconstructVendor(
		"ven-plus", "Photography Plus Media", "Chicago, IL",
		41.8781, -87.6298, true, 3.2, true,
	)
	venBeat := catalog.ReconstructVendor(
		"ven-beat", "Beat Collective", "Austin, TX",
		0, 0, false, 4.9, true,
	)

	return []catalog.Listing{
		makeListing("svc-wed", "Wedding Photography Package", "Full day coverage with two photographers",
			2500, catalog.PricingPackage, catalog.StatusActive, 1000, venLens, catPhoto),
		makeListing("svc-port", "Portrait Session", "Studio portrait photography for families",
			150, catalog.PricingHourly, catalog.StatusActive, 2000, venFrame, catPhoto),
		makeListing("svc-drone", "Drone Coverage", "Aerial footage for outdoor events",
			600, catalog.PricingPackage, catalog.StatusActive, 3000, venPlus, catVideo),
		makeListing("svc-dj", "DJ Night Package", "Four hour DJ set with lighting",
			800, catalog.PricingPackage, catalog.StatusActive, 4000, venBeat, catDJ),
		makeListing("svc-draft", "Engagement Shoot", "Golden hour engagement session",
			300, catalog.PricingHourly, catalog.StatusDraft, 5000, venLens, catPhoto),
	}
}

func fixtureService() (*Service, *mockCatalog) {
	repo := &mockCatalog{listings: fixtureListings()}
	return New(repo), repo
}

func makeRequest(t *testing.T, queryText string, f filter.Filters) *request.Request {
	t.Helper()
	return makeRequestPaged(t, queryText, f, 0, 0, "", "")
}

func makeRequestPaged(
	t *testing.T, queryText string, f filter.Filters,
	page, perPage int, sortBy, sortOrder string,
) *request.Request {
	t.Helper()
	r, err := request.New(queryText, f, page, perPage, sortBy, sortOrder, nil)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return &r
}

func makeFieldRequest(t *testing.T, perPage int, fields []query.Field) *request.Request {
	t.Helper()
	r, err := request.New("", filter.Filters{}, 1, perPage, "", "", fields)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return &r
}

func hitIDs(hits []result.Hit) []string {
	ids := make([]string, len(hits))
	for i := range hits {
		ids[i] = hits[i].Listing().Service().ID()
	}
	return ids
}
