package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"travel-service/internal/module/payment/models/entity"
	"travel-service/internal/module/payment/models/request"
	"travel-service/internal/module/payment/models/response"
	"travel-service/internal/module/payment/repositories"
	"travel-service/internal/pkg/errors"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const (
	TopicPaymentNotification = "payment_notification"

	currencyETB = "ETB"

	// how long after initiation the deferred status check runs
	statusCheckDelay = 30 * time.Minute
)

type usecase struct {
	repo        repositories.Repositories
	log         *otelzap.Logger
	publish     message.Publisher
	txRefPrefix string
	callbackURL string
}

type Usecase interface {
	// http
	InitiatePayment(ctx context.Context, bookingID string, payload *request.InitiatePayment, userID string, emailUser string, fullName string) (response.InitiatedPayment, error)
	VerifyPayment(ctx context.Context, payload *request.VerifyPayment, userID string, userRole string) (response.PaymentStatus, error)
	ProcessWebhook(ctx context.Context, payload *request.Webhook) error
	ShowPayments(ctx context.Context, userID string) ([]response.Payment, error)
	GetPayment(ctx context.Context, paymentID string, userID string, userRole string) (response.Payment, error)
	// scheduler
	CheckPaymentStatus(ctx context.Context, payload *request.CheckPaymentStatus) error
}

func New(repo repositories.Repositories, log *otelzap.Logger, publish message.Publisher, txRefPrefix string, callbackBaseURL string) Usecase {
	return &usecase{
		repo:        repo,
		log:         log,
		publish:     publish,
		txRefPrefix: txRefPrefix,
		callbackURL: fmt.Sprintf("%s/api/v1/payments/webhook", strings.TrimRight(callbackBaseURL, "/")),
	}
}

func (u *usecase) InitiatePayment(ctx context.Context, bookingID string, payload *request.InitiatePayment, userID string, emailUser string, fullName string) (response.InitiatedPayment, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.InitiatedPayment{}, err
	}

	if booking.UserID.String() != userID {
		return response.InitiatedPayment{}, errors.ForbiddenError("you can only pay for your own bookings")
	}

	if booking.Status == "canceled" {
		return response.InitiatedPayment{}, errors.UnprocessableEntity("cannot pay for a canceled booking")
	}

	existing, err := u.repo.FindPaymentByBookingID(ctx, bookingID)
	switch {
	case err == nil && existing.BlocksNewInitiation():
		return response.InitiatedPayment{}, errors.Conflict("a payment is already pending or completed for this booking")
	case err != nil && errors.GetCode(err) != 404:
		return response.InitiatedPayment{}, err
	}
	retryingFailed := err == nil && existing.Status == entity.StatusFailed

	txRef := u.generateTxRef()
	firstName, lastName := splitName(fullName, emailUser)

	chapaResp, err := u.repo.InitiateTransaction(ctx, request.ChapaInitiate{
		Amount:      strconv.FormatFloat(booking.TotalPrice, 'f', 2, 64),
		Currency:    currencyETB,
		Email:       emailUser,
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: payload.Phone,
		TxRef:       txRef,
		CallbackURL: u.callbackURL,
		ReturnURL:   payload.ReturnURL,
		Description: fmt.Sprintf("Booking for %s", booking.ListingName),
	})
	if err != nil {
		// no payment row exists yet, the caller can simply retry
		return response.InitiatedPayment{}, err
	}

	payment := entity.Payment{
		ID:            uuid.New(),
		BookingID:     booking.ID,
		TxRef:         txRef,
		Amount:        booking.TotalPrice,
		Currency:      currencyETB,
		CheckoutURL:   sql.NullString{String: chapaResp.Data.CheckoutURL, Valid: chapaResp.Data.CheckoutURL != ""},
		Status:        entity.StatusPending,
		CustomerEmail: emailUser,
		CustomerName:  fullName,
		CustomerPhone: sql.NullString{String: payload.Phone, Valid: payload.Phone != ""},
		CreatedAt:     time.Now().UTC(),
	}

	// the checkout session is already live at the provider, so a scheduling
	// failure is logged instead of aborting the request
	checkPayload, _ := json.Marshal(request.CheckPaymentStatus{TxRef: txRef})
	taskID, err := u.repo.SetTaskScheduler(ctx, time.Now().Add(statusCheckDelay), checkPayload)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error schedule payment status check: %v", err))
	} else {
		payment.TaskID = sql.NullString{String: taskID, Valid: true}
	}

	if retryingFailed {
		// reuse the failed row, fresh reference
		payment.ID = existing.ID
		payment.CreatedAt = existing.CreatedAt
		err = u.repo.UpdatePayment(ctx, payment)
	} else {
		err = u.repo.InsertPayment(ctx, payment)
	}
	if err != nil {
		return response.InitiatedPayment{}, err
	}

	u.publishNotification(ctx, request.PaymentNotification{
		BookingID:      booking.ID.String(),
		TxRef:          txRef,
		Amount:         payment.Amount,
		Currency:       payment.Currency,
		Message:        "payment initiated, please complete the checkout",
		CheckoutURL:    chapaResp.Data.CheckoutURL,
		EmailRecipient: emailUser,
		RecipientName:  fullName,
	})

	return response.InitiatedPayment{
		PaymentID:   payment.ID.String(),
		BookingID:   booking.ID.String(),
		TxRef:       txRef,
		CheckoutURL: chapaResp.Data.CheckoutURL,
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		Status:      payment.Status,
	}, nil
}

func (u *usecase) VerifyPayment(ctx context.Context, payload *request.VerifyPayment, userID string, userRole string) (response.PaymentStatus, error) {
	payment, err := u.repo.FindPaymentByTxRef(ctx, payload.TxRef)
	if err != nil {
		return response.PaymentStatus{}, err
	}

	booking, err := u.repo.FindBookingByID(ctx, payment.BookingID.String())
	if err != nil {
		return response.PaymentStatus{}, err
	}

	if booking.UserID.String() != userID && userRole != "admin" {
		return response.PaymentStatus{}, errors.ForbiddenError("you don't have permission to access this payment")
	}

	chapaResp, err := u.repo.VerifyTransaction(ctx, payload.TxRef)
	if err != nil {
		return response.PaymentStatus{}, err
	}

	newStatus := mapProviderStatus(chapaResp.Data.Status)
	if chapaResp.Data.Method != "" {
		payment.PaymentMethod = sql.NullString{String: chapaResp.Data.Method, Valid: true}
	}

	if err := u.applyTransition(ctx, &payment, booking, newStatus, chapaResp.Message); err != nil {
		return response.PaymentStatus{}, err
	}

	bookingStatus := booking.Status
	if payment.Status == entity.StatusCompleted {
		bookingStatus = "confirmed"
	}

	return response.PaymentStatus{
		TxRef:         payment.TxRef,
		PaymentID:     payment.ID.String(),
		PaymentStatus: payment.Status,
		BookingStatus: bookingStatus,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
	}, nil
}

func (u *usecase) ProcessWebhook(ctx context.Context, payload *request.Webhook) error {
	payment, err := u.repo.FindPaymentByTxRef(ctx, payload.TxRef)
	if err != nil {
		return err
	}

	booking, err := u.repo.FindBookingByID(ctx, payment.BookingID.String())
	if err != nil {
		return err
	}

	newStatus := mapProviderStatus(payload.Status)

	// duplicate deliveries fall through applyTransition as a no-op, the
	// webhook still answers 200 so the provider stops retrying
	return u.applyTransition(ctx, &payment, booking, newStatus, payload.Message)
}

func (u *usecase) ShowPayments(ctx context.Context, userID string) ([]response.Payment, error) {
	payments, err := u.repo.FindPaymentsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Payment, 0, len(payments))
	for _, payment := range payments {
		resp = append(resp, paymentResponse(payment))
	}
	return resp, nil
}

func (u *usecase) GetPayment(ctx context.Context, paymentID string, userID string, userRole string) (response.Payment, error) {
	payment, err := u.repo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return response.Payment{}, err
	}

	booking, err := u.repo.FindBookingByID(ctx, payment.BookingID.String())
	if err != nil {
		return response.Payment{}, err
	}

	if booking.UserID.String() != userID && userRole != "admin" {
		return response.Payment{}, errors.ForbiddenError("you don't have permission to access this payment")
	}

	return paymentResponse(payment), nil
}

func (u *usecase) CheckPaymentStatus(ctx context.Context, payload *request.CheckPaymentStatus) error {
	payment, err := u.repo.FindPaymentByTxRef(ctx, payload.TxRef)
	if err != nil {
		return err
	}

	if payment.IsTerminal() {
		return nil
	}

	booking, err := u.repo.FindBookingByID(ctx, payment.BookingID.String())
	if err != nil {
		return err
	}

	chapaResp, err := u.repo.VerifyTransaction(ctx, payload.TxRef)
	if err != nil {
		return err
	}

	// a still-pending payment is left alone, the customer may yet pay
	return u.applyTransition(ctx, &payment, booking, mapProviderStatus(chapaResp.Data.Status), chapaResp.Message)
}

// applyTransition moves a payment along its monotonic state machine. Writes
// happen only when the transition is legal, so replays and stale checks are
// harmless.
func (u *usecase) applyTransition(ctx context.Context, payment *entity.Payment, booking entity.BookingInfo, newStatus string, providerMessage string) error {
	if newStatus == entity.StatusPending || !payment.CanTransitionTo(newStatus) {
		return nil
	}

	payment.Status = newStatus
	if newStatus == entity.StatusCompleted {
		payment.CompletedAt = sql.NullTime{Time: time.Now().UTC(), Valid: true}
	}

	if err := u.repo.UpdatePayment(ctx, *payment); err != nil {
		return err
	}

	if payment.TaskID.Valid {
		if err := u.repo.DeleteTaskScheduler(ctx, payment.TaskID.String); err != nil {
			u.log.Ctx(ctx).Error(fmt.Sprintf("error delete payment status check task: %v", err))
		}
	}

	notification := request.PaymentNotification{
		BookingID:      booking.ID.String(),
		TxRef:          payment.TxRef,
		Amount:         payment.Amount,
		Currency:       payment.Currency,
		EmailRecipient: payment.CustomerEmail,
		RecipientName:  payment.CustomerName,
	}

	if newStatus == entity.StatusCompleted {
		if err := u.repo.ConfirmBooking(ctx, booking.ID.String()); err != nil {
			return err
		}
		notification.Message = fmt.Sprintf("your payment for %s was received, the booking is confirmed", booking.ListingName)
	} else {
		// a failed payment leaves the booking pending so the user can retry
		notification.Message = fmt.Sprintf("your payment for %s failed: %s", booking.ListingName, providerMessage)
	}

	u.publishNotification(ctx, notification)
	return nil
}

func (u *usecase) publishNotification(ctx context.Context, notification request.PaymentNotification) {
	jsonPayload, _ := json.Marshal(notification)
	if err := u.publish.Publish(TopicPaymentNotification, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish payment notification: %v", err))
	}
}

func (u *usecase) generateTxRef() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s_%s", u.txRefPrefix, strings.ToUpper(raw[:8]))
}

// mapProviderStatus folds the provider vocabulary into the local one.
func mapProviderStatus(providerStatus string) string {
	switch strings.ToLower(providerStatus) {
	case "success":
		return entity.StatusCompleted
	case "failed", "cancelled":
		return entity.StatusFailed
	default:
		return entity.StatusPending
	}
}

func paymentResponse(payment entity.Payment) response.Payment {
	resp := response.Payment{
		ID:            payment.ID.String(),
		BookingID:     payment.BookingID.String(),
		TxRef:         payment.TxRef,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		PaymentMethod: payment.PaymentMethod.String,
		CheckoutURL:   payment.CheckoutURL.String,
		Status:        payment.Status,
		CreatedAt:     payment.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if payment.CompletedAt.Valid {
		resp.CompletedAt = payment.CompletedAt.Time.Format("2006-01-02 15:04:05")
	}
	return resp
}

func splitName(fullName string, email string) (string, string) {
	fields := strings.Fields(fullName)
	switch {
	case len(fields) >= 2:
		return fields[0], strings.Join(fields[1:], " ")
	case len(fields) == 1:
		return fields[0], "User"
	default:
		// fall back to the mailbox name
		local := strings.SplitN(email, "@", 2)[0]
		if local == "" {
			local = "Customer"
		}
		return local, "User"
	}
}
