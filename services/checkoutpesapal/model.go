package checkoutpesapal

// CheckoutRequest is what the shop front-end posts to start a payment.
type CheckoutRequest struct {
	Amount *float64 `json:"amount"`
	Name   string   `json:"name,omitempty"`
	Email  string   `json:"email,omitempty"`
	Phone  string   `json:"phone"`
}

// PaymentResult is the success envelope; failures use myhttp.ErrorResponse.
type PaymentResult struct {
	RedirectURL string `json:"url"`
}
