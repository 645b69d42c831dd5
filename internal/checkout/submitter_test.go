package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myaseir/circuit-sphere-ecommerce/internal/domain"
	"github.com/myaseir/circuit-sphere-ecommerce/internal/store"
)

type mockOrderClient struct {
	mu       sync.Mutex
	calls    int
	payloads []domain.OrderPayload
	orderID  string
	err      error

	// when set, CreateOrder signals entered and blocks until release closes
	entered chan struct{}
	release chan struct{}
}

func (m *mockOrderClient) CreateOrder(_ context.Context, payload domain.OrderPayload) (string, error) {
	m.mu.Lock()
	m.calls++
	m.payloads = append(m.payloads, payload)
	entered, release := m.entered, m.release
	m.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
		<-release
	}

	if m.err != nil {
		return "", m.err
	}
	return m.orderID, nil
}

func (m *mockOrderClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func validForm() Form {
	return Form{
		Customer: domain.Customer{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Phone:     "+1000000",
			Address:   "1 Analytical Way",
			City:      "London",
			Zip:       "E1 6AN",
			Country:   "UK",
		},
		PaymentMethod: "cod",
	}
}

func cartWith(t *testing.T, items ...domain.LineItem) *store.CartStore {
	t.Helper()
	cart := store.NewCartStore()
	for _, item := range items {
		require.NoError(t, cart.AddItem(item, item.Quantity))
	}
	return cart
}

func line(id string, unit float64, quantity int) domain.LineItem {
	return domain.LineItem{
		ID:        id,
		Title:     "Kit " + id,
		UnitPrice: decimal.NewFromFloat(unit),
		Quantity:  quantity,
	}
}

func TestSubmit_EmptyCart_NoNetworkCall(t *testing.T) {
	client := &mockOrderClient{orderID: "ORD1"}
	s := NewSubmitter(store.NewCartStore(), client)

	_, err := s.Submit(context.Background(), validForm())

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, 0, client.callCount())
	assert.Equal(t, domain.SubmissionStatusIdle, s.Status())
}

func TestSubmit_MissingCustomerFields_NoNetworkCall(t *testing.T) {
	client := &mockOrderClient{orderID: "ORD1"}
	cart := cartWith(t, line("A", 500, 1))
	s := NewSubmitter(cart, client)

	form := validForm()
	form.Customer.Email = ""
	form.Customer.Zip = ""

	_, err := s.Submit(context.Background(), form)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "email", verr.Fields[0].Field)
	assert.Equal(t, "zip", verr.Fields[1].Field)

	assert.Equal(t, 0, client.callCount())
	assert.Equal(t, 1, cart.Len(), "validation failure must not touch the cart")
}

func TestSubmit_Success_ClearsCartAndReturnsOrderID(t *testing.T) {
	client := &mockOrderClient{orderID: "ORD123"}
	cart := cartWith(t, line("A", 500, 2))
	s := NewSubmitter(cart, client)

	orderID, err := s.Submit(context.Background(), validForm())

	require.NoError(t, err)
	assert.Equal(t, "ORD123", orderID)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, domain.SubmissionStatusSucceeded, s.Status())

	result := s.Result()
	assert.Equal(t, "ORD123", result.OrderID)
	assert.NoError(t, result.Err)
}

func TestSubmit_PayloadCarriesSnapshotAndTotal(t *testing.T) {
	client := &mockOrderClient{orderID: "ORD123"}
	saleItem := line("B", 1000, 1)
	saleItem.DiscountedPrice = decimal.NewFromInt(800)
	saleItem.OnSale = true

	cart := cartWith(t, line("A", 500, 2), saleItem)
	s := NewSubmitter(cart, client)

	_, err := s.Submit(context.Background(), validForm())
	require.NoError(t, err)

	require.Len(t, client.payloads, 1)
	payload := client.payloads[0]

	require.Len(t, payload.Items, 2)
	assert.Equal(t, "A", payload.Items[0].ID)
	assert.Equal(t, "Kit A", payload.Items[0].Title)
	assert.Equal(t, 2, payload.Items[0].Quantity)
	assert.Equal(t, 500.0, payload.Items[0].Price)
	assert.Equal(t, 500.0, payload.Items[0].DiscountedPrice)

	// sale line bills the discounted amount but keeps the unit price
	assert.Equal(t, 1000.0, payload.Items[1].Price)
	assert.Equal(t, 800.0, payload.Items[1].DiscountedPrice)

	assert.Equal(t, 1800.0, payload.TotalAmount)
	assert.Equal(t, "cod", payload.PaymentMethod)
	assert.Equal(t, "pending", payload.Status)
	assert.Equal(t, "Ada", payload.Customer.FirstName)
}

func TestSubmit_Failure_PreservesCart(t *testing.T) {
	client := &mockOrderClient{err: errors.New("connection refused")}
	cart := cartWith(t, line("A", 500, 2), line("B", 100, 1))
	before := cart.Items()

	s := NewSubmitter(cart, client)
	_, err := s.Submit(context.Background(), validForm())

	require.Error(t, err)
	assert.Equal(t, domain.SubmissionStatusFailed, s.Status())
	assert.Equal(t, before, cart.Items(), "a failed submission must leave the cart untouched")
}

func TestSubmit_RetryAfterFailureSucceeds(t *testing.T) {
	client := &mockOrderClient{err: errors.New("boom")}
	cart := cartWith(t, line("A", 500, 1))
	s := NewSubmitter(cart, client)

	_, err := s.Submit(context.Background(), validForm())
	require.Error(t, err)
	require.Equal(t, domain.SubmissionStatusFailed, s.Status())

	// manual retry re-enters SUBMITTING from FAILED
	client.mu.Lock()
	client.err = nil
	client.orderID = "ORD777"
	client.mu.Unlock()

	orderID, err := s.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, "ORD777", orderID)
	assert.Equal(t, 2, client.callCount())
	assert.True(t, cart.IsEmpty())
}

func TestSubmit_SecondAttemptWhileInFlightIsRejected(t *testing.T) {
	client := &mockOrderClient{
		orderID: "ORD123",
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	cart := cartWith(t, line("A", 500, 1))
	s := NewSubmitter(cart, client)

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background(), validForm())
		done <- err
	}()

	<-client.entered
	require.Equal(t, domain.SubmissionStatusSubmitting, s.Status())

	_, err := s.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(client.release)
	require.NoError(t, <-done)

	assert.Equal(t, 1, client.callCount(), "a duplicate order must never fire")
	assert.Equal(t, domain.SubmissionStatusSucceeded, s.Status())
}

func TestSubmit_EndToEndAgainstOrderAPI(t *testing.T) {
	var received domain.OrderPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": "ORD123"}`))
	}))
	defer srv.Close()

	cart := cartWith(t, line("A", 500, 2))
	s := NewSubmitter(cart, NewAPIClient(srv.URL))

	orderID, err := s.Submit(context.Background(), validForm())

	require.NoError(t, err)
	assert.Equal(t, "ORD123", orderID)
	assert.Equal(t, 1000.0, received.TotalAmount)
	assert.True(t, cart.IsEmpty())
}

func TestSubmit_DefaultsPaymentMethod(t *testing.T) {
	client := &mockOrderClient{orderID: "ORD1"}
	cart := cartWith(t, line("A", 10, 1))
	s := NewSubmitter(cart, client)

	form := validForm()
	form.PaymentMethod = ""

	_, err := s.Submit(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "cod", client.payloads[0].PaymentMethod)
}
