package response

type InitiatedPayment struct {
	PaymentID   string  `json:"payment_id"`
	BookingID   string  `json:"booking_id"`
	TxRef       string  `json:"tx_ref"`
	CheckoutURL string  `json:"checkout_url"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Status      string  `json:"status"`
}

type Payment struct {
	ID            string  `json:"id"`
	BookingID     string  `json:"booking_id"`
	TxRef         string  `json:"tx_ref"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	CheckoutURL   string  `json:"checkout_url,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	CompletedAt   string  `json:"completed_at,omitempty"`
}

type PaymentStatus struct {
	TxRef         string  `json:"tx_ref"`
	PaymentID     string  `json:"payment_id"`
	PaymentStatus string  `json:"payment_status"`
	BookingStatus string  `json:"booking_status"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}

// ChapaInitiateResponse mirrors the provider response for
// /transaction/initialize.
type ChapaInitiateResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		CheckoutURL string `json:"checkout_url"`
	} `json:"data"`
}

// ChapaVerifyResponse mirrors the provider response for
// /transaction/verify/{tx_ref}.
type ChapaVerifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status   string  `json:"status"`
		TxRef    string  `json:"tx_ref"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
		Method   string  `json:"method"`
	} `json:"data"`
}
