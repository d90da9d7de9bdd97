package filter

import (
	"errors"
	"testing"

	"github.com/lensbook/searchd/internal/domain"
	"github.com/lensbook/searchd/internal/domain/catalog"
)

func fptr(v float64) *float64 { return &v }

func sptr(s catalog.Status) *catalog.Status { return &s }

func listing(
	id string, price float64, pt catalog.PricingType, status catalog.Status,
	categoryID string, vendor catalog.Vendor,
) catalog.Listing {
	svc := catalog.ReconstructService(id, "n", "d", price, pt, status, categoryID, vendor.ID(), 0)
	cat := catalog.ReconstructCategory(categoryID, categoryID, categoryID)
	return catalog.NewListing(svc, vendor, cat)
}

func nycVendor(rating float64, verified bool) catalog.Vendor {
	return catalog.ReconstructVendor("ven-1", "Studio One", "New York, NY", 40.7128, -74.0060, true, rating, verified)
}

func TestCompile_EmptyFilters(t *testing.T) {
	preds, err := Compile(Filters{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, dim := range Dimensions() {
		if preds.Has(dim) {
			t.Errorf("dimension %s must not be active", dim)
		}
	}

	l := listing("s1", 100, catalog.PricingHourly, catalog.StatusActive, "c1", nycVendor(4, false))
	if !preds.Matches(&l) {
		t.Error("active listing must pass empty filters")
	}

	draft := listing("s2", 100, catalog.PricingHourly, catalog.StatusDraft, "c1", nycVendor(4, false))
	if preds.Matches(&draft) {
		t.Error("draft listing must not pass default visibility")
	}
}

func TestCompile_InvalidValues(t *testing.T) {
	cases := []struct {
		name string
		f    Filters
	}{
		{"negative price min", Filters{PriceMin: fptr(-1)}},
		{"inverted price range", Filters{PriceMin: fptr(500), PriceMax: fptr(100)}},
		{"rating above five", Filters{VendorRating: fptr(5.5)}},
		{"empty category id", Filters{Categories: []string{""}}},
		{"unknown pricing type", Filters{PricingTypes: []catalog.PricingType{"subscription"}}},
		{"latitude without longitude", Filters{Latitude: fptr(40)}},
		{"coords without radius", Filters{Latitude: fptr(40), Longitude: fptr(-74)}},
		{"negative radius", Filters{Latitude: fptr(40), Longitude: fptr(-74), RadiusKm: fptr(-5)}},
		{"latitude out of range", Filters{Latitude: fptr(95), Longitude: fptr(-74), RadiusKm: fptr(10)}},
		{"unknown status", Filters{Status: sptr("archived")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.f)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, domain.ErrInvalidFilter) {
				t.Errorf("expected ErrInvalidFilter, got %v", err)
			}
		})
	}
}

func TestCompile_PriceRangeInclusive(t *testing.T) {
	preds, err := Compile(Filters{PriceMin: fptr(100), PriceMax: fptr(500)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v := nycVendor(4, false)
	low := listing("s1", 100, catalog.PricingHourly, catalog.StatusActive, "c1", v)
	high := listing("s2", 500, catalog.PricingHourly, catalog.StatusActive, "c1", v)
	out := listing("s3", 501, catalog.PricingHourly, catalog.StatusActive, "c1", v)

	if !preds.Matches(&low) || !preds.Matches(&high) {
		t.Error("price bounds are inclusive")
	}
	if preds.Matches(&out) {
		t.Error("price above max must not match")
	}
}

func TestCompile_GeoTakesPrecedenceOverText(t *testing.T) {
	preds, err := Compile(Filters{
		City:      "Los Angeles",
		Latitude:  fptr(40.7128),
		Longitude: fptr(-74.0060),
		RadiusKm:  fptr(50),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// NYC vendor is inside the radius even though the city text says LA.
	l := listing("s1", 100, catalog.PricingHourly, catalog.StatusActive, "c1", nycVendor(4, false))
	if !preds.Matches(&l) {
		t.Error("geo filter must win over city text")
	}
}

func TestCompile_LocationTextPartsAreANDed(t *testing.T) {
	preds, err := Compile(Filters{City: "new york", State: "ny"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l := listing("s1", 100, catalog.PricingHourly, catalog.StatusActive, "c1", nycVendor(4, false))
	if !preds.Matches(&l) {
		t.Error("matching city and state must pass")
	}

	other := catalog.ReconstructVendor("ven-2", "B", "Newark, NJ", 0, 0, false, 4, false)
	l2 := listing("s2", 100, catalog.PricingHourly, catalog.StatusActive, "c1", other)
	if preds.Matches(&l2) {
		t.Error("mismatched state must fail")
	}
}

func TestCompile_VendorWithoutCoordsFailsGeo(t *testing.T) {
	preds, err := Compile(Filters{
		Latitude:  fptr(40.7128),
		Longitude: fptr(-74.0060),
		RadiusKm:  fptr(10000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noCoords := catalog.ReconstructVendor("ven-2", "B", "Austin, TX", 0, 0, false, 4, false)
	l := listing("s1", 100, catalog.PricingHourly, catalog.StatusActive, "c1", noCoords)
	if preds.Matches(&l) {
		t.Error("vendor without coordinates must not match any radius")
	}
}

func TestMatchesExcept_SkipsOnlyGivenDimension(t *testing.T) {
	preds, err := Compile(Filters{
		Categories: []string{"c1"},
		PriceMax:   fptr(200),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v := nycVendor(4, false)
	otherCat := listing("s1", 100, catalog.PricingHourly, catalog.StatusActive, "c2", v)

	if preds.Matches(&otherCat) {
		t.Error("wrong category must fail the full match")
	}
	if !preds.MatchesExcept(&otherCat, DimCategory) {
		t.Error("skipping the category dimension must let it pass")
	}
	if preds.MatchesExcept(&otherCat, DimPrice) {
		t.Error("skipping price must still enforce category")
	}
}

func TestMatchesExcept_VisibilityAlwaysApplies(t *testing.T) {
	preds, err := Compile(Filters{Categories: []string{"c1"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	draft := listing("s1", 100, catalog.PricingHourly, catalog.StatusDraft, "c2", nycVendor(4, false))
	for _, dim := range Dimensions() {
		if preds.MatchesExcept(&draft, dim) {
			t.Errorf("draft must stay hidden when skipping %s", dim)
		}
	}
}

func TestMatchesExcept_VerifiedAlwaysApplies(t *testing.T) {
	preds, err := Compile(Filters{VerifiedOnly: true, Categories: []string{"c1"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	unverified := listing("s1", 100, catalog.PricingHourly, catalog.StatusActive, "c1", nycVendor(4, false))
	for _, dim := range Dimensions() {
		if preds.MatchesExcept(&unverified, dim) {
			t.Errorf("unverified vendor must stay hidden when skipping %s", dim)
		}
	}
}

func TestCompile_StatusFilterOwnerOnly(t *testing.T) {
	preds, err := Compile(Filters{
		Status:         sptr(catalog.StatusDraft),
		CallerVendorID: "ven-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	own := listing("s1", 100, catalog.PricingHourly, catalog.StatusDraft, "c1", nycVendor(4, false))
	if !preds.Matches(&own) {
		t.Error("owner must see own draft")
	}

	other := catalog.ReconstructVendor("ven-2", "B", "LA", 0, 0, false, 4, false)
	foreign := listing("s2", 100, catalog.PricingHourly, catalog.StatusDraft, "c1", other)
	if preds.Matches(&foreign) {
		t.Error("foreign draft must stay hidden")
	}
}

func TestCompile_StatusActiveVisibleToEveryone(t *testing.T) {
	preds, err := Compile(Filters{Status: sptr(catalog.StatusActive)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l := listing("s1", 100, catalog.PricingHourly, catalog.StatusActive, "c1", nycVendor(4, false))
	if !preds.Matches(&l) {
		t.Error("active status filter needs no caller")
	}
}
