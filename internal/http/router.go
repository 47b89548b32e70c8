// Package httpapi exposes the store operations as the JSON API consumed
// by the storefront pages.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/andreasstove999/pet-pantry-go/internal/auth"
	"github.com/andreasstove999/pet-pantry-go/internal/cart"
	"github.com/andreasstove999/pet-pantry-go/internal/catalog"
	"github.com/andreasstove999/pet-pantry-go/internal/contact"
	"github.com/andreasstove999/pet-pantry-go/internal/review"
)

type Deps struct {
	Catalog *catalog.Cache
	Cart    *cart.Store
	Auth    *auth.Store
	Reviews *review.Store
	Contact *contact.Store

	CORSAllowOrigins []string
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(CORS(deps.CORSAllowOrigins))

	r.Get("/health", healthHandler)

	catalogHandler := NewCatalogHandler(deps.Catalog)
	cartHandler := NewCartHandler(deps.Cart, deps.Catalog)
	checkoutHandler := NewCheckoutHandler(deps.Cart, deps.Catalog)
	authHandler := NewAuthHandler(deps.Auth)
	reviewHandler := NewReviewHandler(deps.Reviews)
	contactHandler := NewContactHandler(deps.Contact)

	r.Route("/api", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", catalogHandler.ListProducts)
			r.Get("/products/{productId}", catalogHandler.GetProduct)
			r.Get("/featured", catalogHandler.Featured)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Get("/summary", cartHandler.Summary)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{productId}", cartHandler.UpdateItem)
			r.Delete("/items/{productId}", cartHandler.RemoveItem)
		})

		r.Post("/checkout", checkoutHandler.PlaceOrder)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", reviewHandler.List)
			r.Get("/summary", reviewHandler.Summary)
			r.Post("/", reviewHandler.Create)
		})

		r.Post("/contact", contactHandler.Create)
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "pet-pantry"})
}
