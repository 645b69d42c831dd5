package domain

// Customer holds the billing details collected by the checkout form.
// JSON tags match the order API's camelCase schema.
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
}

// OrderItem is one cart line as the order API expects it. Price is the
// catalog unit price, DiscountedPrice the per-unit amount actually billed.
type OrderItem struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discountedPrice"`
}

// OrderPayload is the request body for POST /orders. It is built fresh from
// the cart and the checkout form on every submission attempt and never stored.
type OrderPayload struct {
	Customer      Customer    `json:"customer"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	PaymentMethod string      `json:"paymentMethod"`
	Notes         string      `json:"notes,omitempty"`
	Status        string      `json:"status"`
}
