package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrFetchFailed marks catalog fetch failures so callers can render an
// error state instead of an empty catalog.
var ErrFetchFailed = errors.New("catalog fetch failed")

// Fetcher performs the one network (or embedded) read of the product list.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Product, error)
}

// Cache memoizes the first successful fetch for its whole lifetime.
// Failures are returned to the caller and never cached, so the next call
// retries. There is no invalidation; a fresh Cache is a fresh fetch.
type Cache struct {
	fetcher Fetcher

	mu       sync.Mutex
	products []Product
	loaded   bool
}

func NewCache(fetcher Fetcher) *Cache {
	return &Cache{fetcher: fetcher}
}

// Products returns the cached product list, fetching it on first use.
// Concurrent callers coalesce into a single fetch.
func (c *Cache) Products(ctx context.Context) ([]Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.products, nil
	}

	products, err := c.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	c.products = products
	c.loaded = true
	return c.products, nil
}

// Get looks up a single product by id.
func (c *Cache) Get(ctx context.Context, id string) (Product, bool, error) {
	products, err := c.Products(ctx)
	if err != nil {
		return Product{}, false, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, true, nil
		}
	}
	return Product{}, false, nil
}

// Featured returns the first n products, the home page selection.
func (c *Cache) Featured(ctx context.Context, n int) ([]Product, error) {
	products, err := c.Products(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) < n {
		n = len(products)
	}
	return products[:n], nil
}
