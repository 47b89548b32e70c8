package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleProducts() []Product {
	return []Product{
		{ID: "kibble", Name: "Chicken Kibble", Price: 42.5, PetType: "dog", Category: "food", Tags: []string{"kibble", "chicken"}},
		{ID: "treats", Name: "Salmon Treats", Price: 8.99, PetType: "dog", Category: "treats", Tags: []string{"salmon"}},
		{ID: "pate", Name: "Tuna Pâté", Price: 24, PetType: "cat", Category: "food", Tags: []string{"tuna"}},
		{ID: "hay", Name: "Timothy Hay", Price: 19.95, PetType: "small-pet", Category: "food", Tags: []string{"hay"}},
	}
}

func ids(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterApply(t *testing.T) {
	products := sampleProducts()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"empty matches all", Filter{}, []string{"kibble", "treats", "pate", "hay"}},
		{"all matches all", Filter{Pet: "all", Category: "all"}, []string{"kibble", "treats", "pate", "hay"}},
		{"by pet", Filter{Pet: "cat"}, []string{"pate"}},
		{"by category", Filter{Category: "treats"}, []string{"treats"}},
		{"by max price", Filter{MaxPrice: 20}, []string{"treats", "hay"}},
		{"by name search", Filter{Search: "kibble"}, []string{"kibble"}},
		{"by tag search", Filter{Search: "TUNA"}, []string{"pate"}},
		{"combined", Filter{Pet: "dog", MaxPrice: 50, Search: "chicken"}, []string{"kibble"}},
		{"no match", Filter{Pet: "dog", Category: "food", MaxPrice: 5}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(products)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}
