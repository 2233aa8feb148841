package usecases

import (
	"context"
	"fmt"
	"time"

	"travel-service/internal/module/booking/models/entity"
	"travel-service/internal/module/booking/models/request"
	"travel-service/internal/module/booking/models/response"
	"travel-service/internal/module/booking/repositories"
	"travel-service/internal/pkg/errors"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const TopicBookingNotification = "booking_notification"

type usecase struct {
	repo    repositories.Repositories
	log     *otelzap.Logger
	publish message.Publisher
}

type Usecase interface {
	CreateBooking(ctx context.Context, payload *request.CreateBooking, userID string, emailUser string, fullName string) (response.Booking, error)
	ShowBookings(ctx context.Context, userID string) ([]response.Booking, error)
	GetBooking(ctx context.Context, bookingID string, userID string, userRole string) (response.Booking, error)
	CancelBooking(ctx context.Context, bookingID string, userID string, userRole string) (response.Booking, error)
	DeleteBooking(ctx context.Context, bookingID string, userID string, userRole string) error
}

func New(repo repositories.Repositories, log *otelzap.Logger, publish message.Publisher) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
	}
}

func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking, userID string, emailUser string, fullName string) (response.Booking, error) {
	startDate, err := time.Parse(request.DateLayout, payload.StartDate)
	if err != nil {
		return response.Booking{}, errors.BadRequest("error parse start date")
	}
	endDate, err := time.Parse(request.DateLayout, payload.EndDate)
	if err != nil {
		return response.Booking{}, errors.BadRequest("error parse end date")
	}

	if !endDate.After(startDate) {
		return response.Booking{}, errors.BadRequest("end date must be after start date")
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if startDate.Before(today) {
		return response.Booking{}, errors.BadRequest("cannot book for past dates")
	}

	listing, err := u.repo.FindListingByID(ctx, payload.ListingID)
	if err != nil {
		return response.Booking{}, err
	}

	overlapping, err := u.repo.CountOverlappingBookings(ctx, payload.ListingID, payload.StartDate, payload.EndDate)
	if err != nil {
		return response.Booking{}, err
	}
	if overlapping > 0 {
		return response.Booking{}, errors.Conflict("listing is already booked for the selected dates")
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return response.Booking{}, errors.BadRequest("invalid user id")
	}

	nights := int(endDate.Sub(startDate).Hours() / 24)
	booking := entity.Booking{
		ID:         uuid.New(),
		ListingID:  listing.ID,
		UserID:     userUUID,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalPrice: float64(nights) * listing.PricePerNight,
		Status:     entity.StatusPending,
		CreatedAt:  time.Now().UTC(),
	}

	if err := u.repo.InsertBooking(ctx, booking); err != nil {
		return response.Booking{}, err
	}

	// fire-and-forget: the booking is already committed, mail delivery is
	// handled by the notification worker
	notification := request.BookingNotification{
		BookingID:      booking.ID.String(),
		ListingName:    listing.Name,
		StartDate:      payload.StartDate,
		EndDate:        payload.EndDate,
		TotalPrice:     booking.TotalPrice,
		EmailRecipient: emailUser,
		RecipientName:  fullName,
	}
	jsonPayload, _ := json.Marshal(notification)
	if err := u.publish.Publish(TopicBookingNotification, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish booking notification: %v", err))
	}

	return bookingResponse(booking, listing.Name), nil
}

func (u *usecase) ShowBookings(ctx context.Context, userID string) ([]response.Booking, error) {
	bookings, err := u.repo.FindBookingsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Booking, 0, len(bookings))
	for _, booking := range bookings {
		resp = append(resp, bookingResponse(booking, ""))
	}
	return resp, nil
}

func (u *usecase) GetBooking(ctx context.Context, bookingID string, userID string, userRole string) (response.Booking, error) {
	booking, err := u.findOwnedBooking(ctx, bookingID, userID, userRole)
	if err != nil {
		return response.Booking{}, err
	}
	return bookingResponse(booking, ""), nil
}

func (u *usecase) CancelBooking(ctx context.Context, bookingID string, userID string, userRole string) (response.Booking, error) {
	booking, err := u.findOwnedBooking(ctx, bookingID, userID, userRole)
	if err != nil {
		return response.Booking{}, err
	}

	if !booking.CanTransitionTo(entity.StatusCanceled) {
		return response.Booking{}, errors.UnprocessableEntity("only pending bookings can be canceled")
	}

	if err := u.repo.UpdateBookingStatus(ctx, bookingID, entity.StatusCanceled); err != nil {
		return response.Booking{}, err
	}

	booking.Status = entity.StatusCanceled
	return bookingResponse(booking, ""), nil
}

func (u *usecase) DeleteBooking(ctx context.Context, bookingID string, userID string, userRole string) error {
	booking, err := u.findOwnedBooking(ctx, bookingID, userID, userRole)
	if err != nil {
		return err
	}

	if booking.Status == entity.StatusConfirmed {
		return errors.BadRequest("cannot delete a confirmed booking")
	}

	return u.repo.DeleteBooking(ctx, bookingID)
}

// findOwnedBooking loads a booking and rejects callers that do not own it.
func (u *usecase) findOwnedBooking(ctx context.Context, bookingID string, userID string, userRole string) (entity.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return entity.Booking{}, err
	}

	if booking.UserID.String() != userID && userRole != "admin" {
		return entity.Booking{}, errors.ForbiddenError("you don't have permission to access this booking")
	}

	return booking, nil
}

func bookingResponse(booking entity.Booking, listingName string) response.Booking {
	return response.Booking{
		ID:          booking.ID.String(),
		ListingID:   booking.ListingID.String(),
		ListingName: listingName,
		StartDate:   booking.StartDate.Format(request.DateLayout),
		EndDate:     booking.EndDate.Format(request.DateLayout),
		Nights:      booking.Nights(),
		TotalPrice:  booking.TotalPrice,
		Status:      booking.Status,
		CreatedAt:   booking.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
