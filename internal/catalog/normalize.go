package catalog

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/myaseir/circuit-sphere-ecommerce/internal/domain"
)

const placeholderImage = "/images/placeholder.png"

// kitRecord is the backend's wire shape for a catalog product. The backend
// is inconsistent about image_url (single string vs array) and keeps prices
// in snake_case floats, so normalization happens here at the boundary and
// nowhere else.
type kitRecord struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Price         float64    `json:"price"`
	OriginalPrice *float64   `json:"original_price"`
	OnSale        bool       `json:"on_sale"`
	StockQuantity int        `json:"stock_quantity"`
	ImageURL      imageField `json:"image_url"`
}

// imageField accepts a JSON string, an array of strings, or null.
type imageField []string

func (f *imageField) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*f = nil
		} else {
			*f = imageField{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*f = imageField(many)
		return nil
	}

	// null or an unexpected shape degrades to the placeholder
	*f = nil
	return nil
}

// normalize maps a wire record into the canonical product. On-sale products
// carry their full price in original_price with price already discounted;
// off-sale products carry the full price in price.
func normalize(rec kitRecord) domain.Product {
	price := decimal.NewFromFloat(rec.Price)

	var original decimal.Decimal
	if rec.OriginalPrice != nil {
		original = decimal.NewFromFloat(*rec.OriginalPrice)
	}

	images := []string(rec.ImageURL)
	if len(images) == 0 {
		images = []string{placeholderImage}
	}

	return domain.Product{
		ID:            rec.ID,
		Title:         rec.Name,
		Description:   rec.Description,
		Category:      rec.Category,
		Price:         price,
		OriginalPrice: original,
		OnSale:        rec.OnSale,
		Stock:         rec.StockQuantity,
		Image:         images,
	}
}

// LineItemFor builds a cart/wishlist line from a normalized product. The
// unit price is always the non-sale amount; the discounted price is only
// meaningful while the product is on sale.
func LineItemFor(p *domain.Product) domain.LineItem {
	unit := p.Price
	var discounted decimal.Decimal
	if p.OnSale {
		discounted = p.Price
		if p.OriginalPrice.IsPositive() {
			unit = p.OriginalPrice
		}
	}

	return domain.LineItem{
		ID:              p.ID,
		Title:           p.Title,
		UnitPrice:       unit,
		DiscountedPrice: discounted,
		OnSale:          p.OnSale,
		Image:           append([]string(nil), p.Image...),
	}
}
