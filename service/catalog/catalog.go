package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"vitrine.GO/core/cache"
	entity "vitrine.GO/model/entity/catalog"
)

// DefaultPageSize is the number of products per listing page.
const DefaultPageSize = 30

// Page is one slice of the catalog listing.
type Page struct {
	Products []*entity.Product `json:"products"`
	HasMore  bool              `json:"hasMore"`
}

// Service owns the normalized catalog snapshot and the page memoization.
// The snapshot is immutable once loaded; a reload (cron refresh) swaps the
// whole snapshot and drops every memoized page.
type Service struct {
	mu       sync.RWMutex
	pageSize int
	valid    []*entity.Product
	byID     map[string]*entity.Product
	dropped  int
	pages    *cache.Cache
}

// NewService creates an empty catalog service. pageSize <= 0 falls back to
// DefaultPageSize.
func NewService(pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		pageSize: pageSize,
		byID:     make(map[string]*entity.Product),
		pages:    cache.NewCache(),
	}
}

// LoadFile reads a catalog snapshot (a JSON array of raw records) and
// replaces the current snapshot.
func (s *Service) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", path, err)
	}
	var records []entity.RawProduct
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parse catalog %s: %w", path, err)
	}
	s.Load(records)
	return nil
}

// Load normalizes raw records into the active snapshot. Records failing
// normalization are counted but otherwise dropped silently. All memoized
// pages are invalidated.
func (s *Service) Load(records []entity.RawProduct) {
	valid := make([]*entity.Product, 0, len(records))
	byID := make(map[string]*entity.Product, len(records))
	dropped := 0
	for i := range records {
		p, ok := Normalize(&records[i])
		if !ok {
			dropped++
			continue
		}
		prod := p
		valid = append(valid, &prod)
		byID[prod.ID] = &prod
	}

	s.mu.Lock()
	s.valid = valid
	s.byID = byID
	s.dropped = dropped
	s.mu.Unlock()
	s.pages.Reset()
}

// GetPage returns the 1-indexed page slice. The first call computes and
// memoizes the result; later calls return the identical cached Page until
// ResetCache. A page past the end yields an empty product list and
// HasMore=false — not an error.
func (s *Service) GetPage(page int) Page {
	if page < 1 {
		page = 1
	}
	if v, ok := s.pages.Get(page); ok {
		return v.(Page)
	}

	s.mu.RLock()
	total := len(s.valid)
	start := (page - 1) * s.pageSize
	end := start + s.pageSize
	if end > total {
		end = total
	}
	products := []*entity.Product{}
	if start < total {
		products = s.valid[start:end]
	}
	result := Page{
		Products: products,
		HasMore:  end < total,
	}
	s.mu.RUnlock()

	s.pages.Set(page, result, 0)
	return result
}

// GetProductByID looks up a product in the normalized snapshot. Unknown or
// unpriced ids are an explicit not-found, never an error.
func (s *Service) GetProductByID(id string) (*entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	return p, ok
}

// ResetCache drops every memoized page. The snapshot itself is untouched.
func (s *Service) ResetCache() {
	s.pages.Reset()
}

// Len returns the number of valid products in the snapshot.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.valid)
}

// Dropped returns how many records the last Load rejected.
func (s *Service) Dropped() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dropped
}

// AllValid returns the full normalized snapshot in catalog order.
func (s *Service) AllValid() []*entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.valid
}

// AllSizes returns the deduplicated, ordinal-sorted union of available
// sizes across the whole valid catalog (drives the filter UI).
func (s *Service) AllSizes() []Size {
	var all []Size
	for _, p := range s.AllValid() {
		all = append(all, AvailableSizes(p)...)
	}
	unique := UniqueSizes(all)
	SortSizes(unique)
	return unique
}

// PageSize returns the configured page size.
func (s *Service) PageSize() int {
	return s.pageSize
}
