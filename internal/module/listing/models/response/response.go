package response

type Listing struct {
	ID            string  `json:"id"`
	HostID        string  `json:"host_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"price_per_night"`
	CreatedAt     string  `json:"created_at"`
}

type Review struct {
	ID        string `json:"id"`
	ListingID string `json:"listing_id"`
	UserID    string `json:"user_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"created_at"`
}
