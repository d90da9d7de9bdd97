package search

import (
	"sort"

	"github.com/lensbook/searchd/internal/domain/catalog"
	"github.com/lensbook/searchd/internal/domain/search/facet"
	"github.com/lensbook/searchd/internal/domain/search/filter"
)

// aggregateFacets computes facet counts for every dimension over the
// candidate snapshot. Each dimension relaxes its own filter and keeps all
// others; the text filter and the always-on predicates (visibility,
// verification) apply to every dimension. Zero-count buckets are omitted.
func aggregateFacets(
	candidates []catalog.Listing,
	preds filter.PredicateSet,
	terms []string,
	priceBands, ratingBands facet.Bands,
) facet.Facets {
	return facet.Facets{
		Categories:    categoryFacet(candidates, preds, terms),
		PriceRanges:   bandFacet(candidates, preds, terms, filter.DimPrice, priceBands, priceOf),
		Locations:     locationFacet(candidates, preds, terms),
		PricingTypes:  pricingTypeFacet(candidates, preds, terms),
		VendorRatings: bandFacet(candidates, preds, terms, filter.DimRating, ratingBands, ratingOf),
	}
}

func priceOf(l *catalog.Listing) float64 { return l.Service().BasePrice() }

func ratingOf(l *catalog.Listing) float64 { return l.Vendor().AverageRating() }

// eachMatching walks the candidates matching every filter except the given
// dimension plus the text filter, and calls fn per match.
func eachMatching(
	candidates []catalog.Listing,
	preds filter.PredicateSet,
	terms []string,
	skip filter.Dimension,
	fn func(l *catalog.Listing),
) {
	for i := range candidates {
		l := &candidates[i]
		if !preds.MatchesExcept(l, skip) {
			continue
		}
		if !matchesText(l, terms) {
			continue
		}
		fn(l)
	}
}

func categoryFacet(
	candidates []catalog.Listing, preds filter.PredicateSet, terms []string,
) []facet.CategoryBucket {
	byID := make(map[string]*facet.CategoryBucket)
	eachMatching(candidates, preds, terms, filter.DimCategory, func(l *catalog.Listing) {
		c := l.Category()
		if c.ID() == "" {
			return
		}
		b, ok := byID[c.ID()]
		if !ok {
			b = &facet.CategoryBucket{ID: c.ID(), Name: c.Name(), Slug: c.Slug()}
			byID[c.ID()] = b
		}
		b.Count++
	})

	out := make([]facet.CategoryBucket, 0, len(byID))
	for _, b := range byID {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// bandFacet buckets a numeric field into configured bands, keeping band
// order and dropping empty bands.
func bandFacet(
	candidates []catalog.Listing,
	preds filter.PredicateSet,
	terms []string,
	dim filter.Dimension,
	bands facet.Bands,
	valueOf func(l *catalog.Listing) float64,
) []facet.RangeBucket {
	counts := make([]int, len(bands))
	eachMatching(candidates, preds, terms, dim, func(l *catalog.Listing) {
		if i, ok := bands.Locate(valueOf(l)); ok {
			counts[i]++
		}
	})

	out := make([]facet.RangeBucket, 0, len(bands))
	for i, b := range bands {
		if counts[i] == 0 {
			continue
		}
		out = append(out, facet.RangeBucket{
			Label: b.Label,
			Min:   b.Min,
			Max:   b.Max,
			Count: counts[i],
		})
	}
	return out
}

func locationFacet(
	candidates []catalog.Listing, preds filter.PredicateSet, terms []string,
) []facet.TermBucket {
	counts := make(map[string]int)
	eachMatching(candidates, preds, terms, filter.DimLocation, func(l *catalog.Listing) {
		loc := l.Vendor().Location()
		if loc == "" {
			return
		}
		counts[loc]++
	})

	out := make([]facet.TermBucket, 0, len(counts))
	for loc, n := range counts {
		out = append(out, facet.TermBucket{Value: loc, Label: loc, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func pricingTypeFacet(
	candidates []catalog.Listing, preds filter.PredicateSet, terms []string,
) []facet.TermBucket {
	counts := make(map[catalog.PricingType]int)
	eachMatching(candidates, preds, terms, filter.DimPricingType, func(l *catalog.Listing) {
		counts[l.Service().PricingType()]++
	})

	// Fixed enum order keeps the response stable.
	order := []catalog.PricingType{catalog.PricingHourly, catalog.PricingPackage, catalog.PricingCustom}
	out := make([]facet.TermBucket, 0, len(order))
	for _, pt := range order {
		if counts[pt] == 0 {
			continue
		}
		out = append(out, facet.TermBucket{Value: string(pt), Label: pt.Label(), Count: counts[pt]})
	}
	return out
}
