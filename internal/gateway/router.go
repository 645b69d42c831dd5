package gateway

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the storefront API surface on top of the stores, the
// catalog client, and the checkout submitter.
func NewRouter(
	cart *CartHandler,
	wishlist *WishlistHandler,
	checkoutH *CheckoutHandler,
	products *ProductHandler,
	requestTimeout time.Duration,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", products.ListProducts)
			r.Get("/{product_id}", products.GetProduct)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cart.GetCart)
			r.Post("/items", cart.AddItem)
			r.Put("/items/{product_id}", cart.UpdateQuantity)
			r.Delete("/items/{product_id}", cart.RemoveItem)
			r.Delete("/", cart.ClearCart)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", wishlist.GetWishlist)
			r.Post("/items", wishlist.AddItem)
			r.Delete("/items/{product_id}", wishlist.RemoveItem)
			r.Delete("/", wishlist.Clear)
			r.Post("/items/{product_id}/move-to-cart", wishlist.MoveToCart)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", checkoutH.SubmitOrder)
			r.Get("/status", checkoutH.Status)
		})
	})

	return r
}
