package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/pet-pantry-go/internal/catalog"
)

const featuredCount = 3

type CatalogHandler struct {
	cache *catalog.Cache
}

func NewCatalogHandler(cache *catalog.Cache) *CatalogHandler {
	return &CatalogHandler{cache: cache}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.cache.Products(r.Context())
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	filter := catalog.Filter{
		Pet:      r.URL.Query().Get("pet"),
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
	}
	if raw := r.URL.Query().Get("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil || maxPrice < 0 {
			writeError(w, http.StatusUnprocessableEntity, "maxPrice must be a non-negative number")
			return
		}
		filter.MaxPrice = maxPrice
	}

	filtered := filter.Apply(products)
	writeJSON(w, http.StatusOK, map[string]any{
		"products": filtered,
		"count":    len(filtered),
	})
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	product, ok, err := h.cache.Get(r.Context(), productID)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) Featured(w http.ResponseWriter, r *http.Request) {
	featured, err := h.cache.Featured(r.Context(), featuredCount)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"products": featured})
}

// writeCatalogError renders the user-visible failed-to-load state the
// pages show when the catalog cannot be fetched.
func writeCatalogError(w http.ResponseWriter, err error) {
	if errors.Is(err, catalog.ErrFetchFailed) {
		writeError(w, http.StatusBadGateway, "failed to load products, please try again later")
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}
