package usecases

import (
	"context"
	"fmt"
	"strings"

	"travel-service/internal/module/notification/models/request"
	"travel-service/internal/module/notification/repositories"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type usecase struct {
	repo repositories.Repositories
	log  *otelzap.Logger
}

type Usecase interface {
	SendBookingConfirmation(ctx context.Context, payload *request.BookingNotification) error
	SendPaymentUpdate(ctx context.Context, payload *request.PaymentNotification) error
}

func New(repo repositories.Repositories, log *otelzap.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

// SendBookingConfirmation implements Usecase.
func (u *usecase) SendBookingConfirmation(ctx context.Context, payload *request.BookingNotification) error {
	subject := fmt.Sprintf("Booking received for %s", payload.ListingName)

	var body strings.Builder
	fmt.Fprintf(&body, "Hi %s,\n\n", greetingName(payload.RecipientName))
	fmt.Fprintf(&body, "We received your booking for %s.\n\n", payload.ListingName)
	fmt.Fprintf(&body, "Check-in:  %s\n", payload.StartDate)
	fmt.Fprintf(&body, "Check-out: %s\n", payload.EndDate)
	fmt.Fprintf(&body, "Total:     %.2f\n\n", payload.TotalPrice)
	fmt.Fprintf(&body, "Booking reference: %s\n\n", payload.BookingID)
	body.WriteString("The booking is pending until the payment completes.\n")

	return u.repo.SendEmail(ctx, payload.EmailRecipient, subject, body.String())
}

// SendPaymentUpdate implements Usecase.
func (u *usecase) SendPaymentUpdate(ctx context.Context, payload *request.PaymentNotification) error {
	subject := fmt.Sprintf("Payment update for booking %s", payload.BookingID)

	var body strings.Builder
	fmt.Fprintf(&body, "Hi %s,\n\n", greetingName(payload.RecipientName))
	fmt.Fprintf(&body, "%s\n\n", payload.Message)
	fmt.Fprintf(&body, "Reference: %s\n", payload.TxRef)
	if payload.Amount > 0 {
		fmt.Fprintf(&body, "Amount:    %.2f %s\n", payload.Amount, payload.Currency)
	}
	if payload.CheckoutURL != "" {
		fmt.Fprintf(&body, "\nComplete your payment here: %s\n", payload.CheckoutURL)
	}

	return u.repo.SendEmail(ctx, payload.EmailRecipient, subject, body.String())
}

func greetingName(name string) string {
	if name == "" {
		return "there"
	}
	return name
}
