package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Listing struct {
	ID            uuid.UUID    `db:"id" json:"id"`
	HostID        uuid.UUID    `db:"host_id" json:"host_id"`
	Name          string       `db:"name" json:"name"`
	Description   string       `db:"description" json:"description"`
	Location      string       `db:"location" json:"location"`
	PricePerNight float64      `db:"price_per_night" json:"price_per_night"`
	CreatedAt     time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt     sql.NullTime `db:"updated_at" json:"-"`
}

type Review struct {
	ID        uuid.UUID `db:"id"`
	ListingID uuid.UUID `db:"listing_id"`
	UserID    uuid.UUID `db:"user_id"`
	Rating    int       `db:"rating"`
	Comment   string    `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
}
