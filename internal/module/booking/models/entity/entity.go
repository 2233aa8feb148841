package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCanceled  = "canceled"
)

type Booking struct {
	ID         uuid.UUID    `db:"id"`
	ListingID  uuid.UUID    `db:"listing_id"`
	UserID     uuid.UUID    `db:"user_id"`
	StartDate  time.Time    `db:"start_date"`
	EndDate    time.Time    `db:"end_date"`
	TotalPrice float64      `db:"total_price"`
	Status     string       `db:"status"`
	CreatedAt  time.Time    `db:"created_at"`
	UpdatedAt  sql.NullTime `db:"updated_at"`
}

// Nights is the number of nights the booking covers.
func (b *Booking) Nights() int {
	return int(b.EndDate.Sub(b.StartDate).Hours() / 24)
}

// CanTransitionTo enforces the booking state machine: a booking only ever
// moves out of pending, and never back into it.
func (b *Booking) CanTransitionTo(status string) bool {
	if b.Status != StatusPending {
		return false
	}
	return status == StatusConfirmed || status == StatusCanceled
}

// ListingInfo is the slice of a listing a booking needs for pricing.
type ListingInfo struct {
	ID            uuid.UUID `db:"id"`
	Name          string    `db:"name"`
	PricePerNight float64   `db:"price_per_night"`
}
