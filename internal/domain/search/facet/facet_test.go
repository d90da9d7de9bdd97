package facet

import "testing"

func TestBand_Contains(t *testing.T) {
	b := Band{Min: 250, Max: f(500), Label: "$250 - $500"}
	if !b.Contains(250) {
		t.Error("lower bound is inclusive")
	}
	if b.Contains(500) {
		t.Error("upper bound is exclusive")
	}
	if b.Contains(249.99) {
		t.Error("below min must not match")
	}

	open := Band{Min: 2500, Label: "$2500+"}
	if !open.Contains(1e9) {
		t.Error("open-ended band must contain any value above min")
	}
}

func TestBands_Locate(t *testing.T) {
	bands := DefaultPriceBands()

	i, ok := bands.Locate(0)
	if !ok || i != 0 {
		t.Errorf("0 should land in the first band, got %d ok=%v", i, ok)
	}
	i, ok = bands.Locate(2500)
	if !ok || bands[i].Label != "$2500+" {
		t.Errorf("2500 should land in the open band, got %d ok=%v", i, ok)
	}
	if _, ok := bands.Locate(-1); ok {
		t.Error("negative price fits no band")
	}
}

func TestBands_LocatePicksFirstMatch(t *testing.T) {
	// Rating bands are ordered highest first; 4.7 fits only "4.5+".
	bands := DefaultRatingBands()
	i, ok := bands.Locate(4.7)
	if !ok || bands[i].Label != "4.5+" {
		t.Errorf("4.7 should land in 4.5+, got %v ok=%v", bands[i].Label, ok)
	}
	i, ok = bands.Locate(4.2)
	if !ok || bands[i].Label != "4.0 - 4.5" {
		t.Errorf("4.2 should land in 4.0-4.5, got %v ok=%v", bands[i].Label, ok)
	}
	i, ok = bands.Locate(1.0)
	if !ok || bands[i].Label != "Below 3.0" {
		t.Errorf("1.0 should land in Below 3.0, got %v ok=%v", bands[i].Label, ok)
	}
}

func TestBands_Validate(t *testing.T) {
	if err := DefaultPriceBands().Validate(); err != nil {
		t.Errorf("default price bands must validate: %v", err)
	}
	if err := DefaultRatingBands().Validate(); err != nil {
		t.Errorf("default rating bands must validate: %v", err)
	}

	bad := Bands{{Min: 100, Max: f(50), Label: "inverted"}}
	if err := bad.Validate(); err == nil {
		t.Error("inverted band must fail validation")
	}
	unlabeled := Bands{{Min: 0, Max: f(10)}}
	if err := unlabeled.Validate(); err == nil {
		t.Error("unlabeled band must fail validation")
	}
}
