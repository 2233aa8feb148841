package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type Payment struct {
	ID            uuid.UUID      `db:"id"`
	BookingID     uuid.UUID      `db:"booking_id"`
	TxRef         string         `db:"tx_ref"`
	Amount        float64        `db:"amount"`
	Currency      string         `db:"currency"`
	PaymentMethod sql.NullString `db:"payment_method"`
	CheckoutURL   sql.NullString `db:"checkout_url"`
	Status        string         `db:"status"`
	CustomerEmail string         `db:"customer_email"`
	CustomerName  string         `db:"customer_name"`
	CustomerPhone sql.NullString `db:"customer_phone"`
	TaskID        sql.NullString `db:"task_id"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     sql.NullTime   `db:"updated_at"`
	CompletedAt   sql.NullTime   `db:"completed_at"`
}

// IsTerminal reports whether the payment reached a final state.
func (p *Payment) IsTerminal() bool {
	return p.Status == StatusCompleted || p.Status == StatusFailed
}

// CanTransitionTo enforces the monotonic payment state machine: pending may
// move to completed or failed, terminal states never move again. This is the
// idempotency guard for at-least-once webhook delivery.
func (p *Payment) CanTransitionTo(status string) bool {
	if p.IsTerminal() {
		return false
	}
	return status == StatusCompleted || status == StatusFailed
}

// BlocksNewInitiation reports whether an existing payment forbids starting
// another one for the same booking. A failed payment may be retried.
func (p *Payment) BlocksNewInitiation() bool {
	return p.Status == StatusPending || p.Status == StatusCompleted
}

// BookingInfo is the booking slice the payment flow needs.
type BookingInfo struct {
	ID          uuid.UUID `db:"id"`
	ListingID   uuid.UUID `db:"listing_id"`
	UserID      uuid.UUID `db:"user_id"`
	ListingName string    `db:"listing_name"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	TotalPrice  float64   `db:"total_price"`
	Status      string    `db:"status"`
}
