package request

const DateLayout = "2006-01-02"

type CreateBooking struct {
	ListingID string `json:"listing_id" validate:"required,uuid4"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type BookingNotification struct {
	BookingID      string  `json:"booking_id" validate:"required"`
	ListingName    string  `json:"listing_name" validate:"required"`
	StartDate      string  `json:"start_date" validate:"required"`
	EndDate        string  `json:"end_date" validate:"required"`
	TotalPrice     float64 `json:"total_price" validate:"required"`
	EmailRecipient string  `json:"email_recipient" validate:"required"`
	RecipientName  string  `json:"recipient_name"`
}
