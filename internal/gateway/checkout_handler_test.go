package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myaseir/circuit-sphere-ecommerce/internal/domain"
)

func checkoutBody(customer domain.Customer) CheckoutRequestDTO {
	return CheckoutRequestDTO{
		Customer:      customer,
		PaymentMethod: "cod",
	}
}

func fullCustomer() domain.Customer {
	return domain.Customer{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+1000000",
		Address:   "1 Analytical Way",
		City:      "London",
		Zip:       "E1 6AN",
		Country:   "UK",
	}
}

func TestSubmitOrder_EmptyCart(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/checkout/", checkoutBody(fullCustomer()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, f.orders.calls, "no network call on an empty cart")
}

func TestSubmitOrder_Success(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: "A", Quantity: 2})

	rec := f.do(t, http.MethodPost, "/api/v1/checkout/", checkoutBody(fullCustomer()))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CheckoutResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ORD123", resp.OrderID)
	assert.Equal(t, "SUCCEEDED", resp.Status)
	assert.True(t, f.cart.IsEmpty(), "cart clears on confirmed success")

	// confirmation view reads the last result
	rec = f.do(t, http.MethodGet, "/api/v1/checkout/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ORD123", resp.OrderID)
}

func TestSubmitOrder_MissingFieldsReturnsDetails(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: "A", Quantity: 1})

	customer := fullCustomer()
	customer.Email = ""

	rec := f.do(t, http.MethodPost, "/api/v1/checkout/", checkoutBody(customer))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Code    string             `json:"code"`
		Details []domain.FieldError `json:"details"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "validation_failed", resp.Code)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "email", resp.Details[0].Field)

	assert.Equal(t, 0, f.orders.calls)
	assert.Equal(t, 1, f.cart.Len())
}

func TestSubmitOrder_BackendFailurePreservesCart(t *testing.T) {
	f := newFixture(t)
	f.orders.err = errors.New("connection refused")
	f.do(t, http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: "A", Quantity: 2})

	rec := f.do(t, http.MethodPost, "/api/v1/checkout/", checkoutBody(fullCustomer()))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, 1, f.cart.Len(), "cart survives a failed submission")
}

func TestSubmitOrder_RemoteValidationSurfacesFields(t *testing.T) {
	f := newFixture(t)
	f.orders.err = &domain.ValidationError{Fields: []domain.FieldError{
		{Field: "zip", Message: "value is not a valid zip"},
	}}
	f.do(t, http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: "A", Quantity: 1})

	rec := f.do(t, http.MethodPost, "/api/v1/checkout/", checkoutBody(fullCustomer()))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Details []domain.FieldError `json:"details"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "zip", resp.Details[0].Field)
	assert.Equal(t, 1, f.cart.Len())
}
