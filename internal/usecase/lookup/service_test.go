package lookup

import (
	"context"
	"errors"
	"testing"

	"github.com/lensbook/searchd/internal/domain"
	"github.com/lensbook/searchd/internal/domain/catalog"
)

type mockCatalog struct {
	listing catalog.Listing
	vendor  catalog.Vendor
	err     error
}

func (m *mockCatalog) GetService(_ context.Context, _ string) (catalog.Listing, error) {
	return m.listing, m.err
}

func (m *mockCatalog) GetVendor(_ context.Context, _ string) (catalog.Vendor, error) {
	return m.vendor, m.err
}

func fixtureListing(status catalog.Status) catalog.Listing {
	svc := catalog.ReconstructService("s1", "Portrait Session", "", 150,
		catalog.PricingHourly, status, "c1", "ven-1", 0)
	vendor := catalog.ReconstructVendor("ven-1", "Studio One", "NY", 0, 0, false, 4.5, true)
	cat := catalog.ReconstructCategory("c1", "Photography", "photography")
	return catalog.NewListing(svc, vendor, cat)
}

func TestServiceByID_Active(t *testing.T) {
	svc := New(&mockCatalog{listing: fixtureListing(catalog.StatusActive)})

	l, err := svc.ServiceByID(context.Background(), "s1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Service().ID() != "s1" {
		t.Errorf("unexpected listing: %s", l.Service().ID())
	}
}

func TestServiceByID_DraftHiddenFromStrangers(t *testing.T) {
	svc := New(&mockCatalog{listing: fixtureListing(catalog.StatusDraft)})

	_, err := svc.ServiceByID(context.Background(), "s1", "")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	_, err = svc.ServiceByID(context.Background(), "s1", "ven-2")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign vendor, got %v", err)
	}
}

func TestServiceByID_DraftVisibleToOwner(t *testing.T) {
	svc := New(&mockCatalog{listing: fixtureListing(catalog.StatusDraft)})

	l, err := svc.ServiceByID(context.Background(), "s1", "ven-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Service().Status() != catalog.StatusDraft {
		t.Error("owner must receive the draft record")
	}
}

func TestServiceByID_NotFound(t *testing.T) {
	svc := New(&mockCatalog{err: domain.ErrNotFound})

	_, err := svc.ServiceByID(context.Background(), "missing", "")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestVendorByID(t *testing.T) {
	vendor := catalog.ReconstructVendor("ven-1", "Studio One", "NY", 0, 0, false, 4.5, true)
	svc := New(&mockCatalog{vendor: vendor})

	v, err := svc.VendorByID(context.Background(), "ven-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.BusinessName() != "Studio One" {
		t.Errorf("unexpected vendor: %s", v.BusinessName())
	}
}

func TestVendorByID_NotFound(t *testing.T) {
	svc := New(&mockCatalog{err: domain.ErrNotFound})

	_, err := svc.VendorByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
