// Package shopping wires the session-side services: the memoized catalog,
// the persisted cart, and the view projections consumed by rendering code.
package shopping

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/supertienda/storefront/internal/domain/shopping"
)

// CatalogCache fetches the product catalog once per session and memoizes
// the snapshot. Concurrent Load calls while a fetch is in flight share the
// same pending result instead of issuing duplicate requests. A failed load
// stays failed (degraded view, no automatic retry) until Reload is called.
type CatalogCache struct {
	fetcher shopping.CatalogFetcher
	logger  *zap.Logger

	mu       sync.Mutex
	done     chan struct{}
	snapshot *shopping.Catalog
	err      error
}

// NewCatalogCache creates a catalog cache over the given fetcher
func NewCatalogCache(fetcher shopping.CatalogFetcher, logger *zap.Logger) *CatalogCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogCache{fetcher: fetcher, logger: logger}
}

// Load returns the session catalog, fetching it on first call. Subsequent
// calls return the settled result; callers arriving while a fetch is in
// flight wait for it rather than fetching again.
func (c *CatalogCache) Load(ctx context.Context) (*shopping.Catalog, error) {
	c.mu.Lock()
	if c.done != nil {
		done := c.done
		c.mu.Unlock()
		select {
		case <-done:
			c.mu.Lock()
			defer c.mu.Unlock()
			return c.snapshot, c.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	done := make(chan struct{})
	c.done = done
	c.mu.Unlock()

	products, err := c.fetcher.Fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.snapshot = nil
		c.err = err
		c.logger.Warn("catalog load failed", zap.Error(err))
	} else {
		c.snapshot = shopping.NewCatalog(products)
		c.err = nil
		c.logger.Debug("catalog loaded", zap.Int("products", c.snapshot.Len()))
	}
	close(done)
	return c.snapshot, c.err
}

// Reload discards the settled result and loads again. The snapshot is
// replaced atomically: readers see either the old catalog or the new one,
// never a partial state.
func (c *CatalogCache) Reload(ctx context.Context) (*shopping.Catalog, error) {
	c.mu.Lock()
	if c.done != nil {
		select {
		case <-c.done:
			// settled: clear so Load fetches again
			c.done = nil
			c.snapshot = nil
			c.err = nil
		default:
			// a load is already in flight; join it
		}
	}
	c.mu.Unlock()
	return c.Load(ctx)
}

// Snapshot returns the last successful catalog, if any, without triggering
// a load.
func (c *CatalogCache) Snapshot() (*shopping.Catalog, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot, c.snapshot != nil
}

// Get looks up a product in the current snapshot; absent before any
// successful load.
func (c *CatalogCache) Get(productID string) (shopping.Product, bool) {
	snapshot, ok := c.Snapshot()
	if !ok {
		return shopping.Product{}, false
	}
	return snapshot.Get(productID)
}

// ListByCategory filters the current snapshot by category label
func (c *CatalogCache) ListByCategory(category string) []shopping.Product {
	snapshot, _ := c.Snapshot()
	return snapshot.ListByCategory(category)
}

// Filter applies the name query and category filter to the current snapshot
func (c *CatalogCache) Filter(query, category string) []shopping.Product {
	snapshot, _ := c.Snapshot()
	return snapshot.Filter(query, category)
}
