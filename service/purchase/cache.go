package purchase

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	catalogService "erp.GO/service/catalog"
)

// Cache memoizes product detail lookups for the lifetime of one form session.
// Each product is fetched at most once; concurrent requests for the same
// uncached product share one in-flight fetch. Failures are not stored, so a
// later retry fetches again.
type Cache struct {
	lookup catalogService.Lookup

	mu      sync.RWMutex
	entries map[uint]*catalogService.Entry
	sf      singleflight.Group
}

func NewCache(lookup catalogService.Lookup) *Cache {
	return &Cache{
		lookup:  lookup,
		entries: make(map[uint]*catalogService.Entry),
	}
}

// Entry returns the catalog entry for a product, fetching it on first use.
func (c *Cache) Entry(ctx context.Context, productID uint) (*catalogService.Entry, error) {
	c.mu.RLock()
	entry, ok := c.entries[productID]
	c.mu.RUnlock()
	if ok {
		return entry, nil
	}

	v, err, _ := c.sf.Do(strconv.FormatUint(uint64(productID), 10), func() (interface{}, error) {
		// Re-check under the group: a previous caller may have stored it
		// between our read miss and the flight starting.
		c.mu.RLock()
		cached, found := c.entries[productID]
		c.mu.RUnlock()
		if found {
			return cached, nil
		}

		fetched, lookupErr := c.lookup.Detail(ctx, productID)
		if lookupErr != nil {
			return nil, &CatalogLookupError{ProductID: productID, Err: lookupErr}
		}
		c.mu.Lock()
		c.entries[productID] = fetched
		c.mu.Unlock()
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*catalogService.Entry), nil
}

// Cached reports whether the product is already memoized (no fetch).
func (c *Cache) Cached(productID uint) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[productID]
	return ok
}
