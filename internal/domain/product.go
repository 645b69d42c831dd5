package domain

import "github.com/shopspring/decimal"

// Product is a normalized catalog record. The catalog boundary maps the
// backend's heterogeneous shapes (single image string vs array, snake_case
// price fields) into this form before it reaches any store.
type Product struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Category      string          `json:"category,omitempty"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	OnSale        bool            `json:"on_sale"`
	Stock         int             `json:"stock"`
	Image         []string        `json:"image"`
}
