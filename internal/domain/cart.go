package domain

import "github.com/shopspring/decimal"

// LineItem is one product-and-quantity entry in the cart or wishlist.
// Price fields are captured from the product at add time and treated as
// immutable for the rest of the session.
type LineItem struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	OnSale          bool            `json:"on_sale"`
	Quantity        int             `json:"quantity"`
	Image           []string        `json:"image"`
	Status          string          `json:"status,omitempty"` // wishlist only
}
