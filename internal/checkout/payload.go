package checkout

import (
	"github.com/myaseir/circuit-sphere-ecommerce/internal/domain"
	"github.com/myaseir/circuit-sphere-ecommerce/internal/pricing"
)

const defaultPaymentMethod = "cod"

// Form holds the customer-entered checkout data. It lives outside the cart
// stores; the submitter reads it alongside a cart snapshot when building the
// payload.
type Form struct {
	Customer      domain.Customer
	PaymentMethod string
	Notes         string
}

// buildPayload assembles the order request from a cart snapshot and the form.
// Each item carries both the catalog unit price and the effective per-unit
// amount; the total is rounded to two places only here, at the payload
// boundary.
func buildPayload(items []domain.LineItem, form Form) domain.OrderPayload {
	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, domain.OrderItem{
			ID:              item.ID,
			Title:           item.Title,
			Quantity:        item.Quantity,
			Price:           item.UnitPrice.InexactFloat64(),
			DiscountedPrice: pricing.EffectivePrice(item).InexactFloat64(),
		})
	}

	method := form.PaymentMethod
	if method == "" {
		method = defaultPaymentMethod
	}

	total := pricing.CartTotal(items).Round(2)

	return domain.OrderPayload{
		Customer:      form.Customer,
		Items:         orderItems,
		TotalAmount:   total.InexactFloat64(),
		PaymentMethod: method,
		Notes:         form.Notes,
		Status:        "pending",
	}
}

// validateForm checks the required customer fields before any network call.
func validateForm(form Form) *domain.ValidationError {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", form.Customer.FirstName},
		{"lastName", form.Customer.LastName},
		{"email", form.Customer.Email},
		{"phone", form.Customer.Phone},
		{"address", form.Customer.Address},
		{"city", form.Customer.City},
		{"zip", form.Customer.Zip},
		{"country", form.Customer.Country},
	}

	var fields []domain.FieldError
	for _, f := range required {
		if f.value == "" {
			fields = append(fields, domain.FieldError{Field: f.name, Message: "is required"})
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: fields}
}
