package searchd

import "github.com/lensbook/searchd/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound        = domain.ErrNotFound
	ErrInvalidFilter   = domain.ErrInvalidFilter
	ErrQueryTooDeep    = domain.ErrQueryTooDeep
	ErrQueryTooComplex = domain.ErrQueryTooComplex
)
