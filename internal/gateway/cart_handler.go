package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/myaseir/circuit-sphere-ecommerce/internal/catalog"
	"github.com/myaseir/circuit-sphere-ecommerce/internal/domain"
	"github.com/myaseir/circuit-sphere-ecommerce/internal/pricing"
	"github.com/myaseir/circuit-sphere-ecommerce/internal/store"
)

// ProductSource resolves catalog products for cart/wishlist adds.
// Consumers define this interface, not the catalog client.
type ProductSource interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type CartHandler struct {
	cart     *store.CartStore
	products ProductSource
}

func NewCartHandler(cart *store.CartStore, products ProductSource) *CartHandler {
	return &CartHandler{
		cart:     cart,
		products: products,
	}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartLineDTO struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	EffectivePrice decimal.Decimal `json:"effective_price"`
	OnSale         bool            `json:"on_sale"`
	Quantity       int             `json:"quantity"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Image          []string        `json:"image"`
}

type CartResponseDTO struct {
	Items []CartLineDTO   `json:"items"`
	Total decimal.Decimal `json:"total"`
}

func cartResponse(items []domain.LineItem) CartResponseDTO {
	lines := make([]CartLineDTO, 0, len(items))
	for _, item := range items {
		lines = append(lines, CartLineDTO{
			ID:             item.ID,
			Title:          item.Title,
			UnitPrice:      item.UnitPrice.Round(2),
			EffectivePrice: pricing.EffectivePrice(item).Round(2),
			OnSale:         item.OnSale,
			Quantity:       item.Quantity,
			Subtotal:       pricing.LineSubtotal(item).Round(2),
			Image:          item.Image,
		})
	}
	return CartResponseDTO{
		Items: lines,
		Total: pricing.CartTotal(items).Round(2),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, cartResponse(h.cart.Items()))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}
	if req.Quantity <= 0 || req.Quantity > 99 {
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

	if err := h.cart.AddItem(catalog.LineItemFor(product), req.Quantity); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_quantity", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, cartResponse(h.cart.Items()))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	if err := h.cart.UpdateQuantity(productID, req.Quantity); err != nil {
		respondError(w, http.StatusNotFound, "not_found", "item not in cart")
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(h.cart.Items()))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	h.cart.RemoveItem(productID)
	respondJSON(w, http.StatusOK, cartResponse(h.cart.Items()))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	respondJSON(w, http.StatusOK, cartResponse(h.cart.Items()))
}
