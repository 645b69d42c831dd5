package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/myaseir/circuit-sphere-ecommerce/internal/catalog"
	"github.com/myaseir/circuit-sphere-ecommerce/internal/domain"
	"github.com/myaseir/circuit-sphere-ecommerce/internal/store"
)

type WishlistHandler struct {
	wishlist *store.WishlistStore
	cart     *store.CartStore
	products ProductSource
}

func NewWishlistHandler(wishlist *store.WishlistStore, cart *store.CartStore, products ProductSource) *WishlistHandler {
	return &WishlistHandler{
		wishlist: wishlist,
		cart:     cart,
		products: products,
	}
}

type WishlistResponseDTO struct {
	Items []domain.LineItem `json:"items"`
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, WishlistResponseDTO{Items: h.wishlist.Items()})
}

func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	if req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	product, err := h.products.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusBadGateway, "catalog_unavailable", "failed to fetch product")
		return
	}

	item := catalog.LineItemFor(product)
	if product.Stock > 0 {
		item.Status = "available"
	} else {
		item.Status = "out-of-stock"
	}

	if err := h.wishlist.AddItem(item, req.Quantity); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_quantity", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, WishlistResponseDTO{Items: h.wishlist.Items()})
}

func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	h.wishlist.RemoveItem(productID)
	respondJSON(w, http.StatusOK, WishlistResponseDTO{Items: h.wishlist.Items()})
}

func (h *WishlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.wishlist.Clear()
	respondJSON(w, http.StatusOK, WishlistResponseDTO{Items: h.wishlist.Items()})
}

// MoveToCart transfers a wishlist line into the cart, merging by identity on
// the cart side.
func (h *WishlistHandler) MoveToCart(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	item, ok := h.wishlist.Get(productID)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "item not in wishlist")
		return
	}

	line := item
	line.Status = ""
	if err := h.cart.AddItem(line, item.Quantity); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_quantity", err.Error())
		return
	}
	h.wishlist.RemoveItem(productID)

	respondJSON(w, http.StatusOK, cartResponse(h.cart.Items()))
}
