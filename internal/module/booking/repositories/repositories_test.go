package repositories_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"travel-service/internal/module/booking/models/entity"
	"travel-service/internal/module/booking/repositories"
	"travel-service/internal/pkg/errors"
	log_internal "travel-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock    sqlxmock.Sqlmock
	dbx     *sqlx.DB
	logMock *otelzap.Logger
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	logMock = log_internal.Setup()
}

func TestFindBookingByID(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	UUID := uuid.New()
	listingUUID := uuid.New()
	userUUID := uuid.New()
	createdAt := time.Now().UTC()

	query := regexp.QuoteMeta(`SELECT * FROM bookings WHERE id = $1`)

	testCases := []struct {
		name            string
		bookingID       string
		rows            *sqlxmock.Rows
		queryError      error
		expectedError   error
		expectedBooking entity.Booking
	}{
		{
			name:      "booking found",
			bookingID: UUID.String(),
			rows: sqlxmock.NewRows([]string{
				"id", "listing_id", "user_id", "start_date", "end_date", "total_price", "status", "created_at", "updated_at",
			}).AddRow(UUID, listingUUID, userUUID, createdAt.AddDate(0, 0, 7), createdAt.AddDate(0, 0, 10), 750.0, "pending", createdAt, nil),
			expectedError: nil,
			expectedBooking: entity.Booking{
				ID:         UUID,
				ListingID:  listingUUID,
				UserID:     userUUID,
				StartDate:  createdAt.AddDate(0, 0, 7),
				EndDate:    createdAt.AddDate(0, 0, 10),
				TotalPrice: 750,
				Status:     "pending",
				CreatedAt:  createdAt,
			},
		},
		{
			name:            "booking not found",
			bookingID:       uuid.New().String(),
			queryError:      sql.ErrNoRows,
			expectedError:   errors.NotFound("booking not found"),
			expectedBooking: entity.Booking{},
		},
		{
			name:            "database error",
			bookingID:       uuid.New().String(),
			queryError:      sql.ErrConnDone,
			expectedError:   errors.InternalServerError("error find booking by id"),
			expectedBooking: entity.Booking{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.queryError != nil {
				mock.ExpectQuery(query).WithArgs(tc.bookingID).WillReturnError(tc.queryError)
			} else {
				mock.ExpectQuery(query).WithArgs(tc.bookingID).WillReturnRows(tc.rows)
			}

			booking, err := repo.FindBookingByID(context.Background(), tc.bookingID)

			assert.Equal(t, tc.expectedError, err)
			assert.Equal(t, tc.expectedBooking, booking)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCountOverlappingBookings(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	listingID := uuid.New().String()
	query := regexp.QuoteMeta(`
		SELECT COUNT(*) FROM bookings
		WHERE listing_id = $1 AND status IN ($2, $3)
			AND start_date < $4 AND end_date > $5
	`)

	t.Run("overlap found", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"count"}).AddRow(1)
		mock.ExpectQuery(query).
			WithArgs(listingID, entity.StatusPending, entity.StatusConfirmed, "2026-09-13", "2026-09-10").
			WillReturnRows(rows)

		count, err := repo.CountOverlappingBookings(context.Background(), listingID, "2026-09-10", "2026-09-13")

		assert.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no overlap", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"count"}).AddRow(0)
		mock.ExpectQuery(query).
			WithArgs(listingID, entity.StatusPending, entity.StatusConfirmed, "2026-09-13", "2026-09-10").
			WillReturnRows(rows)

		count, err := repo.CountOverlappingBookings(context.Background(), listingID, "2026-09-10", "2026-09-13")

		assert.NoError(t, err)
		assert.Equal(t, 0, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	bookingID := uuid.New().String()
	query := regexp.QuoteMeta(`UPDATE bookings SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(entity.StatusCanceled, bookingID, entity.StatusPending).
			WillReturnResult(sqlxmock.NewResult(0, 1))

		err := repo.UpdateBookingStatus(context.Background(), bookingID, entity.StatusCanceled)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(entity.StatusCanceled, bookingID, entity.StatusPending).
			WillReturnError(sql.ErrConnDone)

		err := repo.UpdateBookingStatus(context.Background(), bookingID, entity.StatusCanceled)

		assert.Equal(t, errors.InternalServerError("error update booking status"), err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
