package searchd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lensbook/searchd/internal/db"
	dbRedis "github.com/lensbook/searchd/internal/db/redis"
	"github.com/lensbook/searchd/internal/domain/catalog"
	"github.com/lensbook/searchd/internal/domain/search/facet"
	"github.com/lensbook/searchd/internal/domain/search/query"
	"github.com/lensbook/searchd/internal/domain/search/request"
	"github.com/lensbook/searchd/internal/domain/search/result"
	catalogrepo "github.com/lensbook/searchd/internal/repository/catalog"
	healthuc "github.com/lensbook/searchd/internal/usecase/health"
	lookupuc "github.com/lensbook/searchd/internal/usecase/lookup"
	searchuc "github.com/lensbook/searchd/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces so tests can substitute the services.
type searchUseCase interface {
	Execute(ctx context.Context, req *request.Request) (result.Page, error)
}

type lookupUseCase interface {
	ServiceByID(ctx context.Context, id, callerVendorID string) (catalog.Listing, error)
	VendorByID(ctx context.Context, id string) (catalog.Vendor, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

type catalogWriter interface {
	PutService(ctx context.Context, svc *catalog.Service) error
	PutServices(ctx context.Context, svcs []catalog.Service) error
	PutVendor(ctx context.Context, v *catalog.Vendor) error
	PutCategory(ctx context.Context, c *catalog.Category) error
	DeleteService(ctx context.Context, id string) error
}

// Client is the searchd SDK entry point.
type Client struct {
	store     db.Store
	searchSvc searchUseCase
	lookupSvc lookupUseCase
	healthSvc healthUseCase
	writer    catalogWriter
	obs       *observer
}

// New creates a searchd Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("searchd: database address required (use WithRedis or WithValkey)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("searchd: create store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("searchd: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return wireClient(store, cfg, obs), nil
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	repo := catalogrepo.New(store)
	if cfg.keyPrefix != "" {
		repo = repo.WithKeyPrefix(cfg.keyPrefix)
	}

	searchSvc := searchuc.New(repo)
	if cfg.maxDepth > 0 || cfg.maxComplexity > 0 {
		searchSvc = searchSvc.WithLimits(query.Limits{
			MaxDepth: cfg.maxDepth,
			MaxCost:  cfg.maxComplexity,
		})
	}
	price := bandsFromPublic(cfg.priceBands, facet.DefaultPriceBands())
	rating := bandsFromPublic(cfg.ratingBands, facet.DefaultRatingBands())
	searchSvc = searchSvc.WithBands(price, rating)

	return &Client{
		store:     store,
		searchSvc: searchSvc,
		lookupSvc: lookupuc.New(repo),
		healthSvc: healthuc.New(store),
		writer:    repo,
		obs:       obs,
	}
}

func bandsFromPublic(bands []FacetBand, fallback facet.Bands) facet.Bands {
	if len(bands) == 0 {
		return fallback
	}
	out := make(facet.Bands, len(bands))
	for i, b := range bands {
		out[i] = facet.Band{Min: b.Min, Max: b.Max, Label: b.Label}
	}
	return out
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
