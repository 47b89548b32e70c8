package catalog

import "strings"

// Filter narrows the product list the way the listing page does: pet type,
// category, price ceiling, and a free-text search over name and tags.
// Empty (or "all") fields match everything.
type Filter struct {
	Pet      string
	Category string
	MaxPrice float64
	Search   string
}

func (f Filter) Apply(products []Product) []Product {
	term := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if !matchesField(f.Pet, p.PetType) {
			continue
		}
		if !matchesField(f.Category, p.Category) {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		if term != "" && !matchesSearch(p, term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesField(want, have string) bool {
	return want == "" || want == "all" || want == have
}

func matchesSearch(p Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
