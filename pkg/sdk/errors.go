package searchd

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors the server's error codes map to.
// Use errors.Is() to check.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidFilter   = errors.New("invalid filter")
	ErrQueryTooDeep    = errors.New("query too deep")
	ErrQueryTooComplex = errors.New("query too complex")
	ErrUnauthorized    = errors.New("unauthorized")
)

// APIError is a non-2xx response from the server. It unwraps to the
// sentinel matching its error code, so errors.Is works across the wire.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("searchd: %s (code %s, http %d)", e.Message, e.Code, e.StatusCode)
}

// Unwrap maps the server error code to a package sentinel.
func (e *APIError) Unwrap() error {
	switch e.Code {
	case "not_found":
		return ErrNotFound
	case "invalid_filter":
		return ErrInvalidFilter
	case "query_too_deep":
		return ErrQueryTooDeep
	case "query_too_complex":
		return ErrQueryTooComplex
	}
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}
