package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"travel-service/internal/module/booking/models/entity"
	"travel-service/internal/pkg/errors"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type repositories struct {
	db  *sqlx.DB
	log *otelzap.Logger
}

type Repositories interface {
	InsertBooking(ctx context.Context, booking entity.Booking) error
	FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error)
	FindBookingsByUserID(ctx context.Context, userID string) ([]entity.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, status string) error
	DeleteBooking(ctx context.Context, bookingID string) error
	CountOverlappingBookings(ctx context.Context, listingID string, startDate string, endDate string) (int, error)
	FindListingByID(ctx context.Context, listingID string) (entity.ListingInfo, error)
}

func New(db *sqlx.DB, log *otelzap.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// InsertBooking implements Repositories.
func (r *repositories) InsertBooking(ctx context.Context, booking entity.Booking) error {
	query := `
		INSERT INTO bookings (id, listing_id, user_id, start_date, end_date, total_price, status, created_at)
		VALUES (:id, :listing_id, :user_id, :start_date, :end_date, :total_price, :status, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, booking)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error insert booking: %v", err))
		return errors.InternalServerError("error insert booking")
	}
	return nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE id = $1`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find booking by id: %v", err))
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindBookingsByUserID implements Repositories.
func (r *repositories) FindBookingsByUserID(ctx context.Context, userID string) ([]entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`
	bookings := []entity.Booking{}
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find bookings by user id: %v", err))
		return nil, errors.InternalServerError("error find bookings by user id")
	}
	return bookings, nil
}

// UpdateBookingStatus implements Repositories. The status guard is repeated
// here so concurrent writers cannot race a booking out of pending twice.
func (r *repositories) UpdateBookingStatus(ctx context.Context, bookingID string, status string) error {
	query := `UPDATE bookings SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`
	_, err := r.db.ExecContext(ctx, query, status, bookingID, entity.StatusPending)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error update booking status: %v", err))
		return errors.InternalServerError("error update booking status")
	}
	return nil
}

// DeleteBooking implements Repositories.
func (r *repositories) DeleteBooking(ctx context.Context, bookingID string) error {
	query := `DELETE FROM bookings WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, bookingID)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error delete booking: %v", err))
		return errors.InternalServerError("error delete booking")
	}
	return nil
}

// CountOverlappingBookings implements Repositories. Canceled bookings do not
// block the date range.
func (r *repositories) CountOverlappingBookings(ctx context.Context, listingID string, startDate string, endDate string) (int, error) {
	query := `
		SELECT COUNT(*) FROM bookings
		WHERE listing_id = $1 AND status IN ($2, $3)
			AND start_date < $4 AND end_date > $5
	`
	var count int
	err := r.db.GetContext(ctx, &count, query, listingID, entity.StatusPending, entity.StatusConfirmed, endDate, startDate)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error count overlapping bookings: %v", err))
		return 0, errors.InternalServerError("error count overlapping bookings")
	}
	return count, nil
}

// FindListingByID implements Repositories.
func (r *repositories) FindListingByID(ctx context.Context, listingID string) (entity.ListingInfo, error) {
	query := `SELECT id, name, price_per_night FROM listings WHERE id = $1`
	var listing entity.ListingInfo
	err := r.db.GetContext(ctx, &listing, query, listingID)
	if err == sql.ErrNoRows {
		return entity.ListingInfo{}, errors.NotFound("listing not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find listing by id: %v", err))
		return entity.ListingInfo{}, errors.InternalServerError("error find listing by id")
	}
	return listing, nil
}
