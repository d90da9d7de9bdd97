package searchd

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	password string

	keyPrefix string

	maxDepth      int
	maxComplexity int

	priceBands  []FacetBand
	ratingBands []FacetBand

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithValkey configures the client to connect to a Valkey instance.
// Valkey speaks the Redis protocol, so this is an alias of WithRedis.
func WithValkey(addr, password string) Option {
	return WithRedis(addr, password)
}

// WithKeyPrefix overrides the storage key namespace. Default: "searchd".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithSearchLimits sets the admission guard thresholds for the requested
// field tree. Defaults: maxDepth=5, maxComplexity=10000.
func WithSearchLimits(maxDepth, maxComplexity int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxDepth = maxDepth
		c.maxComplexity = maxComplexity
	})
}

// WithPriceBands overrides the price facet bands.
func WithPriceBands(bands []FacetBand) Option {
	return optionFunc(func(c *clientConfig) {
		c.priceBands = bands
	})
}

// WithRatingBands overrides the vendor rating facet bands.
func WithRatingBands(bands []FacetBand) Option {
	return optionFunc(func(c *clientConfig) {
		c.ratingBands = bands
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
