package request

type InitiatePayment struct {
	Phone     string `json:"phone" validate:"omitempty,min=9,max=15"`
	ReturnURL string `json:"return_url" validate:"omitempty,url"`
}

type VerifyPayment struct {
	TxRef string `json:"tx_ref" validate:"required"`
}

type Webhook struct {
	TxRef    string  `json:"tx_ref" validate:"required"`
	Status   string  `json:"status" validate:"required,oneof=success failed cancelled pending"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Message  string  `json:"message"`
}

type CheckPaymentStatus struct {
	TxRef string `json:"tx_ref" validate:"required"`
}

// ChapaInitiate is the provider payload for /transaction/initialize.
type ChapaInitiate struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
	TxRef       string `json:"tx_ref"`
	CallbackURL string `json:"callback_url,omitempty"`
	ReturnURL   string `json:"return_url,omitempty"`
	Description string `json:"description,omitempty"`
}

type PaymentNotification struct {
	BookingID      string  `json:"booking_id" validate:"required"`
	TxRef          string  `json:"tx_ref" validate:"required"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	Message        string  `json:"message" validate:"required"`
	CheckoutURL    string  `json:"checkout_url,omitempty"`
	EmailRecipient string  `json:"email_recipient" validate:"required"`
	RecipientName  string  `json:"recipient_name"`
}
