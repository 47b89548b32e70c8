package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
)

//go:embed data/products.json
var dataFS embed.FS

// StaticFetcher reads the product dataset bundled with the binary.
type StaticFetcher struct{}

func (StaticFetcher) Fetch(ctx context.Context) ([]Product, error) {
	raw, err := dataFS.ReadFile("data/products.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded products: %w", err)
	}
	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("decode embedded products: %w", err)
	}
	return products, nil
}

// HTTPFetcher reads the product list from an external URL.
type HTTPFetcher struct {
	URL  string
	HTTP *http.Client
}

func NewHTTPFetcher(url string, httpClient *http.Client) *HTTPFetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPFetcher{URL: url, HTTP: httpClient}
}

func (f *HTTPFetcher) Fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch products: unexpected status %d", resp.StatusCode)
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}
