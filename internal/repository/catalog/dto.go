package catalog

import (
	"fmt"
	"strconv"

	domcat "github.com/lensbook/searchd/internal/domain/catalog"
)

// serviceToHash converts a domain Service to a map for HSET.
func serviceToHash(s *domcat.Service) map[string]string {
	return map[string]string{
		"id":           s.ID(),
		"name":         s.Name(),
		"description":  s.Description(),
		"base_price":   strconv.FormatFloat(s.BasePrice(), 'f', -1, 64),
		"pricing_type": string(s.PricingType()),
		"status":       string(s.Status()),
		"category_id":  s.CategoryID(),
		"vendor_id":    s.VendorID(),
		"created_at":   strconv.FormatInt(s.CreatedAt(), 10),
	}
}

// serviceFromHash hydrates a domain Service from an HGETALL result map.
func serviceFromHash(m map[string]string) (domcat.Service, error) {
	basePrice, err := strconv.ParseFloat(m["base_price"], 64)
	if err != nil {
		return domcat.Service{}, fmt.Errorf("invalid base_price: %w", err)
	}

	var createdAt int64
	if raw, ok := m["created_at"]; ok && raw != "" {
		createdAt, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domcat.Service{}, fmt.Errorf("invalid created_at: %w", err)
		}
	}

	return domcat.ReconstructService(
		m["id"], m["name"], m["description"],
		basePrice,
		domcat.PricingType(m["pricing_type"]),
		domcat.Status(m["status"]),
		m["category_id"], m["vendor_id"],
		createdAt,
	), nil
}

// vendorToHash converts a domain Vendor to a map for HSET.
func vendorToHash(v *domcat.Vendor) map[string]string {
	m := map[string]string{
		"id":             v.ID(),
		"business_name":  v.BusinessName(),
		"location":       v.Location(),
		"average_rating": strconv.FormatFloat(v.AverageRating(), 'f', -1, 64),
		"is_verified":    strconv.FormatBool(v.IsVerified()),
	}
	if v.HasCoordinates() {
		m["latitude"] = strconv.FormatFloat(v.Latitude(), 'f', -1, 64)
		m["longitude"] = strconv.FormatFloat(v.Longitude(), 'f', -1, 64)
	}
	return m
}

// vendorFromHash hydrates a domain Vendor from an HGETALL result map.
func vendorFromHash(m map[string]string) (domcat.Vendor, error) {
	var rating float64
	if raw, ok := m["average_rating"]; ok && raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domcat.Vendor{}, fmt.Errorf("invalid average_rating: %w", err)
		}
		rating = parsed
	}

	verified := m["is_verified"] == "true"

	var lat, lon float64
	var hasCoords bool
	latStr, latOK := m["latitude"]
	lonStr, lonOK := m["longitude"]
	if latOK && lonOK && latStr != "" && lonStr != "" {
		var err error
		lat, err = strconv.ParseFloat(latStr, 64)
		if err != nil {
			return domcat.Vendor{}, fmt.Errorf("invalid latitude: %w", err)
		}
		lon, err = strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return domcat.Vendor{}, fmt.Errorf("invalid longitude: %w", err)
		}
		hasCoords = true
	}

	return domcat.ReconstructVendor(
		m["id"], m["business_name"], m["location"],
		lat, lon, hasCoords,
		rating, verified,
	), nil
}

// categoryToHash converts a domain Category to a map for HSET.
func categoryToHash(c *domcat.Category) map[string]string {
	return map[string]string{
		"id":   c.ID(),
		"name": c.Name(),
		"slug": c.Slug(),
	}
}

// categoryFromHash hydrates a domain Category from an HGETALL result map.
func categoryFromHash(m map[string]string) domcat.Category {
	return domcat.ReconstructCategory(m["id"], m["name"], m["slug"])
}
