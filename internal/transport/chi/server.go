// Package chi wires the HTTP API on the chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	chirouter "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lensbook/searchd/internal/domain"
	"github.com/lensbook/searchd/internal/domain/search/request"
	healthuc "github.com/lensbook/searchd/internal/usecase/health"
	lookupuc "github.com/lensbook/searchd/internal/usecase/lookup"
	searchuc "github.com/lensbook/searchd/internal/usecase/search"
)

// vendorIDHeader carries the calling vendor's id for owner-only visibility.
const vendorIDHeader = "X-Vendor-Id"

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server exposes the search API over HTTP.
type Server struct {
	search        *searchuc.Service
	lookup        *lookupuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	pageSize      request.PageSize
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	lookup *lookupuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search: search,
		lookup: lookup,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		invalidFilterHandler,
		admissionHandler(domain.ErrQueryTooDeep, codeQueryTooDeep),
		admissionHandler(domain.ErrQueryTooComplex, codeQueryTooComplex),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
	}
	return s
}

// WithPageSize overrides the default and maximum page size.
func (s *Server) WithPageSize(def, max int) *Server {
	s.pageSize = request.PageSize{Default: def, Max: max}
	return s
}

// Routes mounts all API endpoints on the given router.
func (s *Server) Routes(r chirouter.Router) {
	r.Post("/api/v1/search", s.SearchServices)
	r.Get("/api/v1/services/{id}", s.GetService)
	r.Get("/api/v1/vendors/{id}", s.GetVendor)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// SearchServices handles POST /api/v1/search.
func (s *Server) SearchServices(w http.ResponseWriter, r *http.Request) {
	var req searchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	filters := filtersFromDTO(req.Filters, r.Header.Get(vendorIDHeader))
	searchReq, err := request.NewSized(
		req.Query, filters,
		req.Page, req.PerPage,
		req.SortBy, req.SortOrder,
		fieldsFromDTO(req.Fields),
		s.pageSize,
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	page, err := s.search.Execute(r.Context(), &searchReq)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pageToDTO(&page, searchReq.PerPage()))
}

// GetService handles GET /api/v1/services/{id}.
func (s *Server) GetService(w http.ResponseWriter, r *http.Request) {
	id := chirouter.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "service id is required")
		return
	}

	listing, err := s.lookup.ServiceByID(r.Context(), id, r.Header.Get(vendorIDHeader))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listingToDTO(&listing))
}

// GetVendor handles GET /api/v1/vendors/{id}.
func (s *Server) GetVendor(w http.ResponseWriter, r *http.Request) {
	id := chirouter.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "vendor id is required")
		return
	}

	vendor, err := s.lookup.VendorByID(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, vendorToDTO(&vendor))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, sentinel.Error())
		return true
	}
}

// invalidFilterHandler surfaces the offending field and reason to the client.
func invalidFilterHandler(w http.ResponseWriter, err error) bool {
	if !errors.Is(err, domain.ErrInvalidFilter) {
		return false
	}
	msg := domain.ErrInvalidFilter.Error()
	var ife *domain.InvalidFilterError
	if errors.As(err, &ife) {
		msg = ife.Error()
	}
	writeError(w, http.StatusBadRequest, codeInvalidFilter, msg)
	return true
}

// admissionHandler maps a depth or complexity rejection to 400 while keeping
// the typed message with the measured and allowed values.
func admissionHandler(sentinel error, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		msg := sentinel.Error()
		var de *domain.DepthError
		if errors.As(err, &de) {
			msg = de.Error()
		}
		var ce *domain.ComplexityError
		if errors.As(err, &ce) {
			msg = ce.Error()
		}
		writeError(w, http.StatusBadRequest, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			s.logger.Warn("domain error", zap.Error(err))
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
