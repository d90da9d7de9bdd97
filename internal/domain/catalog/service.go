// Package catalog holds the read-model value objects the search core
// queries against: services, vendors, categories, and the denormalized
// Listing that joins them. The catalog itself is owned by the marketplace
// CRUD layer; searchd only reads point-in-time snapshots.
package catalog

import "fmt"

// PricingType is how a service is priced.
type PricingType string

const (
	// PricingHourly is billed per hour.
	PricingHourly PricingType = "hourly"
	// PricingPackage is a fixed package price.
	PricingPackage PricingType = "package"
	// PricingCustom is quoted per engagement.
	PricingCustom PricingType = "custom"
)

// IsValid checks if the pricing type is supported.
func (p PricingType) IsValid() bool {
	return p == PricingHourly || p == PricingPackage || p == PricingCustom
}

// Label returns the human-readable bucket label for the pricing type.
func (p PricingType) Label() string {
	switch p {
	case PricingHourly:
		return "Hourly Rate"
	case PricingPackage:
		return "Package"
	case PricingCustom:
		return "Custom Quote"
	default:
		return string(p)
	}
}

// Status is the publication state of a service.
type Status string

const (
	// StatusDraft is not yet published.
	StatusDraft Status = "draft"
	// StatusActive is publicly visible.
	StatusActive Status = "active"
	// StatusInactive is withdrawn from public view.
	StatusInactive Status = "inactive"
)

// IsValid checks if the status is supported.
func (s Status) IsValid() bool {
	return s == StatusDraft || s == StatusActive || s == StatusInactive
}

// Service is an immutable snapshot of one bookable service record.
type Service struct {
	id          string
	name        string
	description string
	basePrice   float64
	pricingType PricingType
	status      Status
	categoryID  string
	vendorID    string
	createdAt   int64
}

// NewService validates and creates a service snapshot.
// createdAt is unix milliseconds.
func NewService(
	id, name, description string,
	basePrice float64,
	pricingType PricingType,
	status Status,
	categoryID, vendorID string,
	createdAt int64,
) (Service, error) {
	if id == "" {
		return Service{}, fmt.Errorf("service id is required")
	}
	if name == "" {
		return Service{}, fmt.Errorf("service name is required")
	}
	if basePrice < 0 {
		return Service{}, fmt.Errorf("base price must not be negative, got %v", basePrice)
	}
	if !pricingType.IsValid() {
		return Service{}, fmt.Errorf("invalid pricing type: %q", pricingType)
	}
	if !status.IsValid() {
		return Service{}, fmt.Errorf("invalid status: %q", status)
	}
	if vendorID == "" {
		return Service{}, fmt.Errorf("vendor id is required")
	}
	return Service{
		id:          id,
		name:        name,
		description: description,
		basePrice:   basePrice,
		pricingType: pricingType,
		status:      status,
		categoryID:  categoryID,
		vendorID:    vendorID,
		createdAt:   createdAt,
	}, nil
}

// ReconstructService rebuilds a service from storage without validation.
func ReconstructService(
	id, name, description string,
	basePrice float64,
	pricingType PricingType,
	status Status,
	categoryID, vendorID string,
	createdAt int64,
) Service {
	return Service{
		id:          id,
		name:        name,
		description: description,
		basePrice:   basePrice,
		pricingType: pricingType,
		status:      status,
		categoryID:  categoryID,
		vendorID:    vendorID,
		createdAt:   createdAt,
	}
}

// ID returns the service identifier.
func (s *Service) ID() string { return s.id }

// Name returns the service name.
func (s *Service) Name() string { return s.name }

// Description returns the service description.
func (s *Service) Description() string { return s.description }

// BasePrice returns the base price.
func (s *Service) BasePrice() float64 { return s.basePrice }

// PricingType returns how the service is priced.
func (s *Service) PricingType() PricingType { return s.pricingType }

// Status returns the publication state.
func (s *Service) Status() Status { return s.status }

// CategoryID returns the owning category identifier.
func (s *Service) CategoryID() string { return s.categoryID }

// VendorID returns the owning vendor identifier.
func (s *Service) VendorID() string { return s.vendorID }

// CreatedAt returns the creation time in unix milliseconds.
func (s *Service) CreatedAt() int64 { return s.createdAt }
