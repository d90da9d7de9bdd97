// Package query implements the admission-control guard over the requested
// field tree. The guard is a pure function of the request shape and runs
// before any catalog access.
package query

import "github.com/lensbook/searchd/internal/domain"

// Default shape ceilings.
const (
	DefaultMaxDepth = 5
	DefaultMaxCost  = 10000
)

// Field is one node of the requested field tree. Nested children model
// relation traversal (services -> vendorProfile -> services -> ...).
type Field struct {
	Name     string
	Children []Field
}

// Limits holds the shape ceilings for a deployment.
type Limits struct {
	MaxDepth int
	MaxCost  int
}

// WithDefaults fills zero limits with the package defaults.
func (l Limits) WithDefaults() Limits {
	if l.MaxDepth <= 0 {
		l.MaxDepth = DefaultMaxDepth
	}
	if l.MaxCost <= 0 {
		l.MaxCost = DefaultMaxCost
	}
	return l
}

// Depth returns the nesting depth of the field tree. An empty tree has depth 0;
// a flat field list has depth 1.
func Depth(fields []Field) int {
	max := 0
	for i := range fields {
		d := 1 + Depth(fields[i].Children)
		if d > max {
			max = d
		}
	}
	return max
}

// Count returns the total number of fields in the tree.
func Count(fields []Field) int {
	n := 0
	for i := range fields {
		n += 1 + Count(fields[i].Children)
	}
	return n
}

// Cost estimates the execution cost of a request shape:
// total fields x page size x nesting depth. Every nested level of a list
// relation multiplies the number of records a resolver would touch, so the
// estimate grows with both breadth and depth.
func Cost(fields []Field, perPage int) int {
	if perPage < 1 {
		perPage = 1
	}
	depth := Depth(fields)
	if depth == 0 {
		depth = 1
	}
	return Count(fields) * perPage * depth
}

// Validate rejects requests whose field tree exceeds the depth or cost
// ceiling. A nil/empty tree always passes (callers that do not support field
// selection request the default flat projection).
func Validate(fields []Field, perPage int, lim Limits) error {
	lim = lim.WithDefaults()

	if d := Depth(fields); d > lim.MaxDepth {
		return domain.NewDepthError(d, lim.MaxDepth)
	}
	if c := Cost(fields, perPage); c > lim.MaxCost {
		return domain.NewComplexityError(c, lim.MaxCost)
	}
	return nil
}
