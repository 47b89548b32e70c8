package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/pet-pantry-go/internal/cart"
	"github.com/andreasstove999/pet-pantry-go/internal/catalog"
)

type CartHandler struct {
	store *cart.Store
	cache *catalog.Cache
}

func NewCartHandler(store *cart.Store, cache *catalog.Cache) *CartHandler {
	return &CartHandler{store: store, cache: cache}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items := h.store.Items()
	writeJSON(w, http.StatusOK, map[string]any{
		"items":      items,
		"badgeCount": cart.BadgeCount(items),
	})
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.ProductID == "" {
		writeError(w, http.StatusUnprocessableEntity, "productId is required")
		return
	}
	if body.Quantity < 0 {
		writeError(w, http.StatusUnprocessableEntity, "quantity must be positive")
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	h.store.Add(body.ProductID, body.Quantity)

	items := h.store.Items()
	writeJSON(w, http.StatusOK, map[string]any{
		"items":      items,
		"badgeCount": cart.BadgeCount(items),
	})
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	h.store.SetQuantity(productID, body.Quantity)

	items := h.store.Items()
	writeJSON(w, http.StatusOK, map[string]any{
		"items":      items,
		"badgeCount": cart.BadgeCount(items),
	})
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	h.store.Remove(productID)

	items := h.store.Items()
	writeJSON(w, http.StatusOK, map[string]any{
		"items":      items,
		"badgeCount": cart.BadgeCount(items),
	})
}

// Summary serves the mini-cart dropdown: joined line items, totals, and
// free-shipping progress, recomputed from current state on every call.
func (h *CartHandler) Summary(w http.ResponseWriter, r *http.Request) {
	products, err := h.cache.Products(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	items := h.store.Items()
	writeJSON(w, http.StatusOK, map[string]any{
		"badgeCount": cart.BadgeCount(items),
		"summary":    cart.Summarize(items, products),
	})
}
