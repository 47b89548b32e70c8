package cart

import "github.com/andreasstove999/pet-pantry-go/internal/catalog"

// Shipping is a step function: free at zero, free at or over the
// threshold, the flat cost in between.
const (
	ShippingThreshold = 49.0
	ShippingCost      = 4.99
)

// SummaryLine is one cart row joined to its catalog product.
type SummaryLine struct {
	Product   catalog.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal float64         `json:"lineTotal"`
}

// Summary is the mini-cart view: line items, money totals, and progress
// toward free shipping.
type Summary struct {
	Lines    []SummaryLine `json:"lines"`
	Subtotal float64       `json:"subtotal"`
	Shipping float64       `json:"shipping"`
	Total    float64       `json:"total"`

	FreeShipping bool    `json:"freeShipping"`
	Remaining    float64 `json:"remaining"`
	Percent      float64 `json:"percent"`
}

// BadgeCount is the total of all line-item quantities, not the number of
// distinct products.
func BadgeCount(items []LineItem) int {
	count := 0
	for _, it := range items {
		count += it.Quantity
	}
	return count
}

// Summarize joins cart items to the catalog and computes totals. Items
// whose product no longer exists are skipped, so a stale cart never
// breaks the view. Pure function of its inputs; recompute after every
// cart mutation.
func Summarize(items []LineItem, products []catalog.Product) Summary {
	byID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	s := Summary{Lines: []SummaryLine{}}
	for _, it := range items {
		product, ok := byID[it.ProductID]
		if !ok {
			continue
		}
		lineTotal := product.Price * float64(it.Quantity)
		s.Lines = append(s.Lines, SummaryLine{
			Product:   product,
			Quantity:  it.Quantity,
			LineTotal: lineTotal,
		})
		s.Subtotal += lineTotal
	}

	if s.Subtotal > 0 && s.Subtotal < ShippingThreshold {
		s.Shipping = ShippingCost
		s.Remaining = ShippingThreshold - s.Subtotal
		s.Percent = s.Subtotal / ShippingThreshold * 100
	} else if s.Subtotal >= ShippingThreshold {
		s.FreeShipping = true
		s.Percent = 100
	}
	s.Total = s.Subtotal + s.Shipping

	return s
}
