package checkout

import "errors"

var (
	ErrEmptyCart      = errors.New("cart is empty, nothing to submit")
	ErrSubmitInFlight = errors.New("an order submission is already in progress")
)
