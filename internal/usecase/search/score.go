package search

import (
	"strings"

	"github.com/lensbook/searchd/internal/domain/catalog"
)

// Relevance weights per matched field. Name matches must never rank below
// description-only matches.
const (
	weightName        = 3.0
	weightDescription = 2.0
	weightVendorName  = 1.0
)

// tokenize splits a query into lowercase whitespace-separated terms.
// A blank query yields nil, which scoreListing treats as "no text filter".
func tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// scoreListing scores a listing against the query terms. A listing matches
// when ANY term appears as a substring in the service name, description, or
// vendor business name. With no terms every listing passes with score 0.
func scoreListing(l *catalog.Listing, terms []string) (float64, bool) {
	if len(terms) == 0 {
		return 0, true
	}

	name := strings.ToLower(l.Service().Name())
	description := strings.ToLower(l.Service().Description())
	vendorName := strings.ToLower(l.Vendor().BusinessName())

	score := 0.0
	for _, term := range terms {
		if strings.Contains(name, term) {
			score += weightName
		}
		if strings.Contains(description, term) {
			score += weightDescription
		}
		if strings.Contains(vendorName, term) {
			score += weightVendorName
		}
	}
	return score, score > 0
}

// matchesText reports whether a listing passes the text filter without
// caring about the score. Used by the facet aggregator, which applies the
// text filter to every dimension.
func matchesText(l *catalog.Listing, terms []string) bool {
	_, ok := scoreListing(l, terms)
	return ok
}
