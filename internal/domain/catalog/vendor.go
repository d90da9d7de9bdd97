package catalog

import (
	"fmt"

	"github.com/lensbook/searchd/internal/domain/geo"
)

// Vendor is an immutable snapshot of a vendor profile.
// Coordinates are optional; HasCoordinates reports whether they are set.
type Vendor struct {
	id            string
	businessName  string
	location      string
	latitude      float64
	longitude     float64
	hasCoords     bool
	averageRating float64
	isVerified    bool
}

// NewVendor validates and creates a vendor snapshot.
func NewVendor(
	id, businessName, location string,
	latitude, longitude *float64,
	averageRating float64,
	isVerified bool,
) (Vendor, error) {
	if id == "" {
		return Vendor{}, fmt.Errorf("vendor id is required")
	}
	if businessName == "" {
		return Vendor{}, fmt.Errorf("vendor business name is required")
	}
	if averageRating < 0 || averageRating > 5 {
		return Vendor{}, fmt.Errorf("average rating must be between 0 and 5, got %v", averageRating)
	}
	if (latitude == nil) != (longitude == nil) {
		return Vendor{}, fmt.Errorf("latitude and longitude must be set together")
	}

	v := Vendor{
		id:            id,
		businessName:  businessName,
		location:      location,
		averageRating: averageRating,
		isVerified:    isVerified,
	}
	if latitude != nil && longitude != nil {
		if !geo.ValidateCoordinates(*latitude, *longitude) {
			return Vendor{}, fmt.Errorf("invalid coordinates: %v, %v", *latitude, *longitude)
		}
		v.latitude = *latitude
		v.longitude = *longitude
		v.hasCoords = true
	}
	return v, nil
}

// ReconstructVendor rebuilds a vendor from storage without validation.
func ReconstructVendor(
	id, businessName, location string,
	latitude, longitude float64, hasCoords bool,
	averageRating float64,
	isVerified bool,
) Vendor {
	return Vendor{
		id:            id,
		businessName:  businessName,
		location:      location,
		latitude:      latitude,
		longitude:     longitude,
		hasCoords:     hasCoords,
		averageRating: averageRating,
		isVerified:    isVerified,
	}
}

// ID returns the vendor identifier.
func (v *Vendor) ID() string { return v.id }

// BusinessName returns the vendor business name.
func (v *Vendor) BusinessName() string { return v.businessName }

// Location returns the free-text location (city/state).
func (v *Vendor) Location() string { return v.location }

// Latitude returns the vendor latitude (meaningful only when HasCoordinates).
func (v *Vendor) Latitude() float64 { return v.latitude }

// Longitude returns the vendor longitude (meaningful only when HasCoordinates).
func (v *Vendor) Longitude() float64 { return v.longitude }

// HasCoordinates reports whether geo coordinates are set.
func (v *Vendor) HasCoordinates() bool { return v.hasCoords }

// AverageRating returns the 0-5 average rating.
func (v *Vendor) AverageRating() float64 { return v.averageRating }

// IsVerified reports whether the vendor passed verification.
func (v *Vendor) IsVerified() bool { return v.isVerified }
