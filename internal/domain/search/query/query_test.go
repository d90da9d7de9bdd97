package query

import (
	"errors"
	"strings"
	"testing"

	"github.com/lensbook/searchd/internal/domain"
)

func nested(levels int) []Field {
	fields := []Field{{Name: "services"}}
	for i := 1; i < levels; i++ {
		fields = []Field{{Name: "services", Children: fields}}
	}
	return fields
}

func TestDepth(t *testing.T) {
	if got := Depth(nil); got != 0 {
		t.Errorf("empty tree depth = %d, want 0", got)
	}
	if got := Depth([]Field{{Name: "a"}, {Name: "b"}}); got != 1 {
		t.Errorf("flat list depth = %d, want 1", got)
	}
	if got := Depth(nested(4)); got != 4 {
		t.Errorf("nested depth = %d, want 4", got)
	}
}

func TestCount(t *testing.T) {
	fields := []Field{
		{Name: "services", Children: []Field{
			{Name: "vendorProfile", Children: []Field{{Name: "businessName"}}},
			{Name: "basePrice"},
		}},
		{Name: "facets"},
	}
	if got := Count(fields); got != 5 {
		t.Errorf("count = %d, want 5", got)
	}
}

func TestCost(t *testing.T) {
	fields := []Field{
		{Name: "services", Children: []Field{{Name: "vendorProfile"}}},
	}
	// 2 fields x 10 per page x depth 2
	if got := Cost(fields, 10); got != 40 {
		t.Errorf("cost = %d, want 40", got)
	}
	// Depth 0 is treated as 1 so flat requests still carry page cost.
	if got := Cost(nil, 10); got != 0 {
		t.Errorf("empty cost = %d, want 0", got)
	}
}

func TestValidate_DepthExceeded(t *testing.T) {
	err := Validate(nested(6), 20, Limits{MaxDepth: 5, MaxCost: 100000})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domain.ErrQueryTooDeep) {
		t.Errorf("expected ErrQueryTooDeep, got %v", err)
	}
	if !strings.Contains(err.Error(), "exceeds max depth") {
		t.Errorf("unexpected message: %q", err.Error())
	}

	var de *domain.DepthError
	if !errors.As(err, &de) {
		t.Fatal("expected DepthError")
	}
	if de.Depth != 6 || de.MaxDepth != 5 {
		t.Errorf("unexpected fields: %+v", de)
	}
}

func TestValidate_CostExceeded(t *testing.T) {
	fields := []Field{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	err := Validate(fields, 100, Limits{MaxDepth: 5, MaxCost: 200})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domain.ErrQueryTooComplex) {
		t.Errorf("expected ErrQueryTooComplex, got %v", err)
	}

	var ce *domain.ComplexityError
	if !errors.As(err, &ce) {
		t.Fatal("expected ComplexityError")
	}
	if ce.Cost != 300 || ce.MaxCost != 200 {
		t.Errorf("unexpected fields: %+v", ce)
	}
}

func TestValidate_EmptyTreePasses(t *testing.T) {
	if err := Validate(nil, 100, Limits{}); err != nil {
		t.Errorf("empty tree must pass, got %v", err)
	}
}

func TestValidate_ZeroLimitsUseDefaults(t *testing.T) {
	if err := Validate(nested(5), 20, Limits{}); err != nil {
		t.Errorf("depth 5 within default ceiling, got %v", err)
	}
	if err := Validate(nested(6), 20, Limits{}); err == nil {
		t.Error("depth 6 must exceed default ceiling")
	}
}
