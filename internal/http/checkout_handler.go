package httpapi

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/andreasstove999/pet-pantry-go/internal/cart"
	"github.com/andreasstove999/pet-pantry-go/internal/catalog"
)

type CheckoutHandler struct {
	store *cart.Store
	cache *catalog.Cache
}

func NewCheckoutHandler(store *cart.Store, cache *catalog.Cache) *CheckoutHandler {
	return &CheckoutHandler{store: store, cache: cache}
}

type checkoutRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Zip      string `json:"zip"`
}

func (req *checkoutRequest) validate() string {
	if strings.TrimSpace(req.FullName) == "" {
		return "fullName is required"
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return "a valid email is required"
	}
	if strings.TrimSpace(req.Address) == "" {
		return "address is required"
	}
	if strings.TrimSpace(req.City) == "" {
		return "city is required"
	}
	if strings.TrimSpace(req.Zip) == "" {
		return "zip is required"
	}
	return ""
}

// PlaceOrder validates the order form, reports the final totals, and
// clears the cart. No payment or fulfillment happens; this is a demo
// store and the order exists only in the response.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	items := h.store.Items()
	if len(items) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "cart is empty")
		return
	}

	products, err := h.cache.Products(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	summary := cart.Summarize(items, products)

	h.store.Clear()

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "order placed",
		"summary": summary,
	})
}
