package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFetcher struct {
	calls    int
	products []Product
	err      error
}

func (f *countingFetcher) Fetch(ctx context.Context) ([]Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func TestCacheFetchesOnce(t *testing.T) {
	f := &countingFetcher{products: []Product{{ID: "p1", Name: "Kibble"}}}
	c := NewCache(f)

	first, err := c.Products(context.Background())
	require.NoError(t, err)
	second, err := c.Products(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, f.calls)
	assert.Equal(t, first, second)
}

func TestCacheDoesNotCacheFailure(t *testing.T) {
	f := &countingFetcher{err: errors.New("boom")}
	c := NewCache(f)

	_, err := c.Products(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)

	// A later call retries instead of serving a cached failure.
	f.err = nil
	f.products = []Product{{ID: "p1"}}
	products, err := c.Products(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, 2, f.calls)
}

func TestCacheGet(t *testing.T) {
	f := &countingFetcher{products: []Product{{ID: "p1"}, {ID: "p2"}}}
	c := NewCache(f)

	p, ok, err := c.Get(context.Background(), "p2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "p2", p.ID)

	_, ok, err = c.Get(context.Background(), "p3")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheFeatured(t *testing.T) {
	f := &countingFetcher{products: []Product{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}}
	c := NewCache(f)

	featured, err := c.Featured(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, featured, 3)
	assert.Equal(t, "a", featured[0].ID)

	short := NewCache(&countingFetcher{products: []Product{{ID: "a"}}})
	featured, err = short.Featured(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, featured, 1)
}

func TestStaticFetcher(t *testing.T) {
	products, err := StaticFetcher{}.Fetch(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)

	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.Greater(t, p.Price, 0.0)
	}
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"p1","name":"Kibble","price":9.99}]`))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL, srv.Client())
	products, err := f.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestHTTPFetcherBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL, srv.Client())
	_, err := f.Fetch(context.Background())
	require.Error(t, err)
}
