// Package catalog implements the catalog repository over a hash store.
// Services, vendors and categories live in separate hashes; listings are
// joined in memory on read.
package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/lensbook/searchd/internal/db"
	"github.com/lensbook/searchd/internal/domain"
	domcat "github.com/lensbook/searchd/internal/domain/catalog"
	"github.com/lensbook/searchd/internal/domain/search/filter"
)

// DefaultKeyPrefix namespaces all catalog keys.
const DefaultKeyPrefix = "searchd"

// store is the consumer interface for the catalog (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/search.Catalog and usecase/lookup.Catalog.
type Repo struct {
	store  store
	prefix string
}

// New creates a catalog repository.
func New(s store) *Repo {
	return &Repo{store: s, prefix: DefaultKeyPrefix}
}

// WithKeyPrefix overrides the key namespace.
func (r *Repo) WithKeyPrefix(prefix string) *Repo {
	if prefix != "" {
		r.prefix = prefix
	}
	return r
}

func (r *Repo) serviceKey(id string) string  { return r.prefix + ":service:" + id }
func (r *Repo) vendorKey(id string) string   { return r.prefix + ":vendor:" + id }
func (r *Repo) categoryKey(id string) string { return r.prefix + ":category:" + id }

// FindServices returns all listings matching the predicate, joined with
// their vendor and category. A nil predicate matches everything.
func (r *Repo) FindServices(ctx context.Context, match filter.Predicate) ([]domcat.Listing, error) {
	keys, err := r.store.Scan(ctx, r.serviceKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan services: %w", err)
	}
	if len(keys) == 0 {
		return []domcat.Listing{}, nil
	}
	sort.Strings(keys)

	rows, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall services: %w", err)
	}

	services := make([]domcat.Service, 0, len(rows))
	for i, m := range rows {
		if len(m) == 0 {
			continue
		}
		svc, err := serviceFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("service %s: %w", keys[i], err)
		}
		services = append(services, svc)
	}

	vendors, err := r.fetchVendors(ctx, services)
	if err != nil {
		return nil, err
	}
	categories, err := r.fetchCategories(ctx, services)
	if err != nil {
		return nil, err
	}

	listings := make([]domcat.Listing, 0, len(services))
	for _, svc := range services {
		vendor, ok := vendors[svc.VendorID()]
		if !ok {
			continue // dangling vendor reference
		}
		category, ok := categories[svc.CategoryID()]
		if !ok {
			continue
		}
		l := domcat.NewListing(svc, vendor, category)
		if match == nil || match(&l) {
			listings = append(listings, l)
		}
	}

	return listings, nil
}

// CountServices counts listings matching the predicate.
func (r *Repo) CountServices(ctx context.Context, match filter.Predicate) (int, error) {
	listings, err := r.FindServices(ctx, match)
	if err != nil {
		return 0, err
	}
	return len(listings), nil
}

// GetService retrieves a single listing by service id.
func (r *Repo) GetService(ctx context.Context, id string) (domcat.Listing, error) {
	m, err := r.store.HGetAll(ctx, r.serviceKey(id))
	if err != nil {
		return domcat.Listing{}, fmt.Errorf("hgetall service %s: %w", id, err)
	}
	if len(m) == 0 {
		return domcat.Listing{}, domain.ErrNotFound
	}

	svc, err := serviceFromHash(m)
	if err != nil {
		return domcat.Listing{}, fmt.Errorf("service %s: %w", id, err)
	}

	vendor, err := r.GetVendor(ctx, svc.VendorID())
	if err != nil {
		return domcat.Listing{}, fmt.Errorf("vendor %s: %w", svc.VendorID(), err)
	}

	cm, err := r.store.HGetAll(ctx, r.categoryKey(svc.CategoryID()))
	if err != nil {
		return domcat.Listing{}, fmt.Errorf("hgetall category %s: %w", svc.CategoryID(), err)
	}
	if len(cm) == 0 {
		return domcat.Listing{}, domain.ErrNotFound
	}

	return domcat.NewListing(svc, vendor, categoryFromHash(cm)), nil
}

// GetVendor retrieves a vendor by id.
func (r *Repo) GetVendor(ctx context.Context, id string) (domcat.Vendor, error) {
	m, err := r.store.HGetAll(ctx, r.vendorKey(id))
	if err != nil {
		return domcat.Vendor{}, fmt.Errorf("hgetall vendor %s: %w", id, err)
	}
	if len(m) == 0 {
		return domcat.Vendor{}, domain.ErrNotFound
	}
	return vendorFromHash(m)
}

// PutService stores a service.
func (r *Repo) PutService(ctx context.Context, svc *domcat.Service) error {
	if err := r.store.HSet(ctx, r.serviceKey(svc.ID()), serviceToHash(svc)); err != nil {
		return fmt.Errorf("hset service %s: %w", svc.ID(), err)
	}
	return nil
}

// PutVendor stores a vendor.
func (r *Repo) PutVendor(ctx context.Context, v *domcat.Vendor) error {
	if err := r.store.HSet(ctx, r.vendorKey(v.ID()), vendorToHash(v)); err != nil {
		return fmt.Errorf("hset vendor %s: %w", v.ID(), err)
	}
	return nil
}

// PutCategory stores a category.
func (r *Repo) PutCategory(ctx context.Context, c *domcat.Category) error {
	if err := r.store.HSet(ctx, r.categoryKey(c.ID()), categoryToHash(c)); err != nil {
		return fmt.Errorf("hset category %s: %w", c.ID(), err)
	}
	return nil
}

// PutServices stores multiple services in one pipelined round-trip.
func (r *Repo) PutServices(ctx context.Context, svcs []domcat.Service) error {
	if len(svcs) == 0 {
		return nil
	}
	items := make([]db.HashSetItem, len(svcs))
	for i := range svcs {
		items[i] = db.HashSetItem{Key: r.serviceKey(svcs[i].ID()), Fields: serviceToHash(&svcs[i])}
	}
	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("hset services: %w", err)
	}
	return nil
}

// DeleteService removes a service.
func (r *Repo) DeleteService(ctx context.Context, id string) error {
	if err := r.store.Del(ctx, r.serviceKey(id)); err != nil {
		return fmt.Errorf("del service %s: %w", id, err)
	}
	return nil
}

func (r *Repo) fetchVendors(ctx context.Context, services []domcat.Service) (map[string]domcat.Vendor, error) {
	ids := distinct(services, func(s *domcat.Service) string { return s.VendorID() })
	if len(ids) == 0 {
		return map[string]domcat.Vendor{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.vendorKey(id)
	}
	rows, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall vendors: %w", err)
	}

	out := make(map[string]domcat.Vendor, len(ids))
	for i, m := range rows {
		if len(m) == 0 {
			continue
		}
		v, err := vendorFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("vendor %s: %w", ids[i], err)
		}
		out[ids[i]] = v
	}
	return out, nil
}

func (r *Repo) fetchCategories(ctx context.Context, services []domcat.Service) (map[string]domcat.Category, error) {
	ids := distinct(services, func(s *domcat.Service) string { return s.CategoryID() })
	if len(ids) == 0 {
		return map[string]domcat.Category{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.categoryKey(id)
	}
	rows, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall categories: %w", err)
	}

	out := make(map[string]domcat.Category, len(ids))
	for i, m := range rows {
		if len(m) == 0 {
			continue
		}
		out[ids[i]] = categoryFromHash(m)
	}
	return out, nil
}

// distinct collects unique ids from services in encounter order.
func distinct(services []domcat.Service, key func(*domcat.Service) string) []string {
	seen := make(map[string]struct{}, len(services))
	ids := make([]string, 0, len(services))
	for i := range services {
		id := key(&services[i])
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
