package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lensbook/searchd/internal/domain"
	"github.com/lensbook/searchd/internal/domain/search/facet"
	"github.com/lensbook/searchd/internal/domain/search/filter"
	"github.com/lensbook/searchd/internal/domain/search/query"
	"github.com/lensbook/searchd/internal/domain/search/request"
	"github.com/lensbook/searchd/internal/domain/search/result"
	"github.com/lensbook/searchd/internal/logger"
	"github.com/lensbook/searchd/internal/metrics"
)

// Service orchestrates one search request: shape guard, filter compilation,
// text scoring, sorting, pagination and facet aggregation. Stateless across
// requests; safe for concurrent use.
type Service struct {
	catalog     Catalog
	limits      query.Limits
	priceBands  facet.Bands
	ratingBands facet.Bands
}

// New creates a search service with default shape limits and facet bands.
func New(catalog Catalog) *Service {
	return &Service{
		catalog:     catalog,
		limits:      query.Limits{}.WithDefaults(),
		priceBands:  facet.DefaultPriceBands(),
		ratingBands: facet.DefaultRatingBands(),
	}
}

// WithLimits overrides the shape guard ceilings.
func (s *Service) WithLimits(lim query.Limits) *Service {
	s.limits = lim.WithDefaults()
	return s
}

// WithBands overrides the price and rating facet bands. Nil keeps the
// current bands.
func (s *Service) WithBands(price, rating facet.Bands) *Service {
	if price != nil {
		s.priceBands = price
	}
	if rating != nil {
		s.ratingBands = rating
	}
	return s
}

// Execute runs a search request end to end. The shape guard runs before any
// catalog access; a guard or filter error aborts the whole request with no
// partial results. Facets always reflect the full filtered set, never the
// page slice.
func (s *Service) Execute(ctx context.Context, req *request.Request) (result.Page, error) {
	start := time.Now()

	if err := query.Validate(req.Fields(), req.PerPage(), s.limits); err != nil {
		observeRejection(err)
		return result.Page{}, err
	}

	preds, err := filter.Compile(req.Filters())
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("rejected").Inc()
		return result.Page{}, err
	}

	candidates, err := s.catalog.FindServices(ctx, preds.Visibility())
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		return result.Page{}, fmt.Errorf("find services: %w", err)
	}

	terms := tokenize(req.Query())

	matched := make([]result.Hit, 0, len(candidates))
	for i := range candidates {
		l := &candidates[i]
		if !preds.Matches(l) {
			continue
		}
		score, ok := scoreListing(l, terms)
		if !ok {
			continue
		}
		matched = append(matched, result.NewHit(*l, score))
	}

	sortHits(matched, req.SortBy(), req.SortOrder())
	pageSlice, meta := paginate(matched, req.Page(), req.PerPage())

	facetStart := time.Now()
	facets := aggregateFacets(candidates, preds, terms, s.priceBands, s.ratingBands)
	metrics.FacetAggregationDuration.Observe(time.Since(facetStart).Seconds())

	elapsed := time.Since(start)
	metrics.SearchesTotal.WithLabelValues("ok").Inc()
	metrics.SearchDuration.Observe(elapsed.Seconds())

	logger.FromContext(ctx).Debug("search executed",
		zap.Int("candidates", len(candidates)),
		zap.Int("matched", meta.totalCount),
		zap.Int("page", meta.currentPage),
		zap.Duration("elapsed", elapsed),
	)

	return result.NewPage(
		pageSlice,
		meta.totalCount,
		meta.currentPage,
		meta.totalPages,
		meta.hasNext,
		meta.hasPrevious,
		facets,
		float64(elapsed.Nanoseconds())/1e6,
	), nil
}

func observeRejection(err error) {
	reason := "complexity"
	if errors.Is(err, domain.ErrQueryTooDeep) {
		reason = "depth"
	}
	metrics.AdmissionRejectionsTotal.WithLabelValues(reason).Inc()
	metrics.SearchesTotal.WithLabelValues("rejected").Inc()
}
