package request

type CreateListing struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Location      string  `json:"location" validate:"required"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gte=0"`
}

type UpdateListing struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Location      string  `json:"location" validate:"required"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gte=0"`
}

type CreateReview struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
