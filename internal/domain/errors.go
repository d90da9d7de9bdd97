package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource (service or vendor lookup).
	ErrNotFound = errors.New("not found")
	// ErrInvalidFilter signals a malformed filter value.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrQueryTooDeep signals a request field tree nested beyond the depth ceiling.
	ErrQueryTooDeep = errors.New("query too deep")
	// ErrQueryTooComplex signals a request whose estimated cost exceeds the ceiling.
	ErrQueryTooComplex = errors.New("query too complex")
)

// InvalidFilterError wraps ErrInvalidFilter with the offending field and reason.
type InvalidFilterError struct {
	Field  string
	Reason string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter %q: %s", e.Field, e.Reason)
}

func (e *InvalidFilterError) Unwrap() error { return ErrInvalidFilter }

// NewInvalidFilter creates an invalid filter error.
func NewInvalidFilter(field, reason string) error {
	return &InvalidFilterError{Field: field, Reason: reason}
}

// DepthError wraps ErrQueryTooDeep with the requested and maximum depth.
// The message contains the literal "exceeds max depth"; clients match on it.
type DepthError struct {
	Depth    int
	MaxDepth int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("query depth %d exceeds max depth %d", e.Depth, e.MaxDepth)
}

func (e *DepthError) Unwrap() error { return ErrQueryTooDeep }

// NewDepthError creates a depth guard error.
func NewDepthError(depth, maxDepth int) error {
	return &DepthError{Depth: depth, MaxDepth: maxDepth}
}

// ComplexityError wraps ErrQueryTooComplex with the estimated and maximum cost.
type ComplexityError struct {
	Cost    int
	MaxCost int
}

func (e *ComplexityError) Error() string {
	return fmt.Sprintf("query cost %d exceeds max complexity %d", e.Cost, e.MaxCost)
}

func (e *ComplexityError) Unwrap() error { return ErrQueryTooComplex }

// NewComplexityError creates a complexity guard error.
func NewComplexityError(cost, maxCost int) error {
	return &ComplexityError{Cost: cost, MaxCost: maxCost}
}
