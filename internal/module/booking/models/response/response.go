package response

type Booking struct {
	ID          string  `json:"id"`
	ListingID   string  `json:"listing_id"`
	ListingName string  `json:"listing_name,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Nights      int     `json:"nights"`
	TotalPrice  float64 `json:"total_price"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}
