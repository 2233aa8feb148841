package request

// BookingNotification mirrors the payload published on booking_notification.
type BookingNotification struct {
	BookingID      string  `json:"booking_id" validate:"required"`
	ListingName    string  `json:"listing_name" validate:"required"`
	StartDate      string  `json:"start_date" validate:"required"`
	EndDate        string  `json:"end_date" validate:"required"`
	TotalPrice     float64 `json:"total_price" validate:"required"`
	EmailRecipient string  `json:"email_recipient" validate:"required"`
	RecipientName  string  `json:"recipient_name"`
}

// PaymentNotification mirrors the payload published on payment_notification.
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
