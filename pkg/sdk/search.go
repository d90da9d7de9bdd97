package searchd

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Search runs a faceted search over the catalog.
func (c *Client) Search(ctx context.Context, req SearchRequest) (resp SearchResponse, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search", start, err) }()

	err = c.do(ctx, http.MethodPost, "/api/v1/search", req, &resp)
	return resp, err
}

// Service retrieves a single service listing by id. Non-active listings are
// visible only when the client identifies as the owning vendor
// (WithVendorID).
func (c *Client) Service(ctx context.Context, id string) (svc Service, err error) {
	start := time.Now()
	defer func() { c.obs.observe("get_service", start, err) }()

	err = c.do(ctx, http.MethodGet, "/api/v1/services/"+url.PathEscape(id), nil, &svc)
	return svc, err
}

// Vendor retrieves a vendor profile by id.
func (c *Client) Vendor(ctx context.Context, id string) (v Vendor, err error) {
	start := time.Now()
	defer func() { c.obs.observe("get_vendor", start, err) }()

	err = c.do(ctx, http.MethodGet, "/api/v1/vendors/"+url.PathEscape(id), nil, &v)
	return v, err
}
