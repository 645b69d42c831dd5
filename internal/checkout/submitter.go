package checkout

import (
	"context"
	"log"
	"sync"

	"github.com/myaseir/circuit-sphere-ecommerce/internal/domain"
	"github.com/myaseir/circuit-sphere-ecommerce/internal/store"
)

// Submitter turns the current cart plus a checkout form into a submitted
// order. It runs a small state machine:
//
//	IDLE -> SUBMITTING -> {SUCCEEDED, FAILED}
//
// Terminal states permit a fresh submission on the next Submit call. At most
// one submission is in flight at a time; a second Submit while SUBMITTING is
// rejected with ErrSubmitInFlight so a duplicate order can never fire.
type Submitter struct {
	cart   *store.CartStore
	orders OrderClient

	mu          sync.Mutex
	status      domain.SubmissionStatus
	lastOrderID string
	lastErr     error
}

func NewSubmitter(cart *store.CartStore, orders OrderClient) *Submitter {
	return &Submitter{
		cart:   cart,
		orders: orders,
		status: domain.SubmissionStatusIdle,
	}
}

// Result is the outcome of the most recent submission attempt, for the
// confirmation or failure view.
type Result struct {
	Status  domain.SubmissionStatus
	OrderID string
	Err     error
}

// Submit validates locally, performs exactly one call to the order API, and
// resolves the outcome. The cart is cleared only on confirmed success; any
// failure leaves it untouched so the user can retry without re-entering
// everything. Validation failures (empty cart, missing customer fields) are
// reported synchronously without a network call and without leaving the
// current state.
func (s *Submitter) Submit(ctx context.Context, form Form) (string, error) {
	s.mu.Lock()
	if s.status == domain.SubmissionStatusSubmitting {
		s.mu.Unlock()
		return "", ErrSubmitInFlight
	}

	items := s.cart.Items()
	if len(items) == 0 {
		s.mu.Unlock()
		return "", ErrEmptyCart
	}
	if verr := validateForm(form); verr != nil {
		s.mu.Unlock()
		return "", verr
	}

	s.status = domain.SubmissionStatusSubmitting
	s.mu.Unlock()

	payload := buildPayload(items, form)

	orderID, err := s.orders.CreateOrder(ctx, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		log.Printf("order submission failed: %v", err)
		s.status = domain.SubmissionStatusFailed
		s.lastErr = err
		s.lastOrderID = ""
		return "", err
	}

	s.status = domain.SubmissionStatusSucceeded
	s.lastOrderID = orderID
	s.lastErr = nil
	s.cart.Clear()
	return orderID, nil
}

func (s *Submitter) Status() domain.SubmissionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Submitter) Result() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Result{
		Status:  s.status,
		OrderID: s.lastOrderID,
		Err:     s.lastErr,
	}
}
