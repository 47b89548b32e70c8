// Package cart owns the shopping cart line items and the derived views
// (badge count, mini-cart summary) computed from them.
package cart

// LineItem is one distinct product's presence in the cart. At most one
// line item exists per product id; insertion order is first-added order.
type LineItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
