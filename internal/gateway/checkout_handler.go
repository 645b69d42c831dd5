package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/myaseir/circuit-sphere-ecommerce/internal/checkout"
	"github.com/myaseir/circuit-sphere-ecommerce/internal/domain"
)

// Submitter drives the order submission state machine.
// Consumers define this interface, not the checkout implementation.
type Submitter interface {
	Submit(ctx context.Context, form checkout.Form) (string, error)
	Result() checkout.Result
}

type CheckoutHandler struct {
	submitter Submitter
}

func NewCheckoutHandler(submitter Submitter) *CheckoutHandler {
	return &CheckoutHandler{submitter: submitter}
}

type CheckoutRequestDTO struct {
	Customer      domain.Customer `json:"customer"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
}

type CheckoutResponseDTO struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// POST /api/v1/checkout
func (h *CheckoutHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	orderID, err := h.submitter.Submit(r.Context(), checkout.Form{
		Customer:      req.Customer,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		handleSubmitError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, CheckoutResponseDTO{
		OrderID: orderID,
		Status:  domain.SubmissionStatusSucceeded.String(),
	})
}

// GET /api/v1/checkout/status
func (h *CheckoutHandler) Status(w http.ResponseWriter, r *http.Request) {
	result := h.submitter.Result()
	resp := CheckoutResponseDTO{
		OrderID: result.OrderID,
		Status:  result.Status.String(),
	}
	respondJSON(w, http.StatusOK, resp)
}

func handleSubmitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", "cart is empty")
	case errors.Is(err, checkout.ErrSubmitInFlight):
		respondError(w, http.StatusConflict, "submit_in_flight", "order submission already in progress")
	default:
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:   "order was rejected",
				Code:    "validation_failed",
				Details: verr.Fields,
			})
			return
		}
		respondError(w, http.StatusBadGateway, "order_failed", "order failed, try again")
	}
}
