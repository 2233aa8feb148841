package repositories

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"travel-service/config"
	"travel-service/internal/module/payment/models/entity"
	"travel-service/internal/module/payment/models/request"
	"travel-service/internal/module/payment/models/response"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/helpers"
	"travel-service/internal/pkg/scheduler"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type repositories struct {
	db              *sqlx.DB
	log             *otelzap.Logger
	httpClient      *circuit.HTTPClient
	cfg             *config.ChapaConfig
	schedulerClient *asynq.Client
	inspector       *asynq.Inspector
}

type Repositories interface {
	// db
	InsertPayment(ctx context.Context, payment entity.Payment) error
	UpdatePayment(ctx context.Context, payment entity.Payment) error
	FindPaymentByID(ctx context.Context, paymentID string) (entity.Payment, error)
	FindPaymentByTxRef(ctx context.Context, txRef string) (entity.Payment, error)
	FindPaymentByBookingID(ctx context.Context, bookingID string) (entity.Payment, error)
	FindPaymentsByUserID(ctx context.Context, userID string) ([]entity.Payment, error)
	FindBookingByID(ctx context.Context, bookingID string) (entity.BookingInfo, error)
	ConfirmBooking(ctx context.Context, bookingID string) error
	// http
	InitiateTransaction(ctx context.Context, payload request.ChapaInitiate) (response.ChapaInitiateResponse, error)
	VerifyTransaction(ctx context.Context, txRef string) (response.ChapaVerifyResponse, error)
	// scheduler
	SetTaskScheduler(ctx context.Context, runAt time.Time, payload []byte) (string, error)
	DeleteTaskScheduler(ctx context.Context, taskID string) error
}

func New(
	db *sqlx.DB,
	log *otelzap.Logger,
	httpClient *circuit.HTTPClient,
	cfg *config.ChapaConfig,
	schedulerClient *asynq.Client,
	inspector *asynq.Inspector,
) Repositories {
	return &repositories{
		db:              db,
		log:             log,
		httpClient:      httpClient,
		cfg:             cfg,
		schedulerClient: schedulerClient,
		inspector:       inspector,
	}
}

// InsertPayment implements Repositories.
func (r *repositories) InsertPayment(ctx context.Context, payment entity.Payment) error {
	query := `
		INSERT INTO payments (id, booking_id, tx_ref, amount, currency, payment_method, checkout_url,
			status, customer_email, customer_name, customer_phone, task_id, created_at)
		VALUES (:id, :booking_id, :tx_ref, :amount, :currency, :payment_method, :checkout_url,
			:status, :customer_email, :customer_name, :customer_phone, :task_id, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, payment)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error insert payment: %v", err))
		return errors.InternalServerError("error insert payment")
	}
	return nil
}

// UpdatePayment implements Repositories.
func (r *repositories) UpdatePayment(ctx context.Context, payment entity.Payment) error {
	query := `
		UPDATE payments
		SET tx_ref = :tx_ref, amount = :amount, currency = :currency, payment_method = :payment_method,
			checkout_url = :checkout_url, status = :status, customer_email = :customer_email,
			customer_name = :customer_name, customer_phone = :customer_phone, task_id = :task_id,
			completed_at = :completed_at, updated_at = now()
		WHERE id = :id
	`
	_, err := r.db.NamedExecContext(ctx, query, payment)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error update payment: %v", err))
		return errors.InternalServerError("error update payment")
	}
	return nil
}

// FindPaymentByID implements Repositories.
func (r *repositories) FindPaymentByID(ctx context.Context, paymentID string) (entity.Payment, error) {
	return r.findPayment(ctx, `SELECT * FROM payments WHERE id = $1`, paymentID)
}

// FindPaymentByTxRef implements Repositories.
func (r *repositories) FindPaymentByTxRef(ctx context.Context, txRef string) (entity.Payment, error) {
	return r.findPayment(ctx, `SELECT * FROM payments WHERE tx_ref = $1`, txRef)
}

// FindPaymentByBookingID implements Repositories.
func (r *repositories) FindPaymentByBookingID(ctx context.Context, bookingID string) (entity.Payment, error) {
	return r.findPayment(ctx, `SELECT * FROM payments WHERE booking_id = $1`, bookingID)
}

func (r *repositories) findPayment(ctx context.Context, query string, arg interface{}) (entity.Payment, error) {
	var payment entity.Payment
	err := r.db.GetContext(ctx, &payment, query, arg)
	if err == sql.ErrNoRows {
		return entity.Payment{}, errors.NotFound("payment not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find payment: %v", err))
		return entity.Payment{}, errors.InternalServerError("error find payment")
	}
	return payment, nil
}

// FindPaymentsByUserID implements Repositories. Ownership goes through the
// booking row.
func (r *repositories) FindPaymentsByUserID(ctx context.Context, userID string) ([]entity.Payment, error) {
	query := `
		SELECT p.* FROM payments p
		JOIN bookings b ON b.id = p.booking_id
		WHERE b.user_id = $1
		ORDER BY p.created_at DESC
	`
	payments := []entity.Payment{}
	err := r.db.SelectContext(ctx, &payments, query, userID)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find payments by user id: %v", err))
		return nil, errors.InternalServerError("error find payments by user id")
	}
	return payments, nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID string) (entity.BookingInfo, error) {
	query := `
		SELECT b.id, b.listing_id, b.user_id, l.name AS listing_name,
			b.start_date, b.end_date, b.total_price, b.status
		FROM bookings b
		JOIN listings l ON l.id = b.listing_id
		WHERE b.id = $1
	`
	var booking entity.BookingInfo
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.BookingInfo{}, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find booking by id: %v", err))
		return entity.BookingInfo{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// ConfirmBooking implements Repositories. Guarded on pending so replayed
// webhooks cannot re-confirm.
func (r *repositories) ConfirmBooking(ctx context.Context, bookingID string) error {
	query := `UPDATE bookings SET status = 'confirmed', updated_at = now() WHERE id = $1 AND status = 'pending'`
	_, err := r.db.ExecContext(ctx, query, bookingID)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error confirm booking: %v", err))
		return errors.InternalServerError("error confirm booking")
	}
	return nil
}

// InitiateTransaction implements Repositories. Transport failures are a
// retryable error and leave no local state behind.
func (r *repositories) InitiateTransaction(ctx context.Context, payload request.ChapaInitiate) (response.ChapaInitiateResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return response.ChapaInitiateResponse{}, errors.InternalServerError("error marshal initiate payload")
	}

	url := fmt.Sprintf("%s/transaction/initialize", r.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return response.ChapaInitiateResponse{}, errors.InternalServerError("error build initiate request")
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.cfg.SecretKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error call payment provider: %v", err))
		return response.ChapaInitiateResponse{}, errors.BadGateway("payment provider unavailable, please retry")
	}
	defer resp.Body.Close()

	var chapaResp response.ChapaInitiateResponse
	if err := json.NewDecoder(resp.Body).Decode(&chapaResp); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error decode provider response: %v", err))
		return response.ChapaInitiateResponse{}, errors.BadGateway("invalid response from payment provider")
	}

	if resp.StatusCode != http.StatusOK || chapaResp.Status != "success" {
		r.log.Ctx(ctx).Error(fmt.Sprintf("payment initiation rejected: %s (http %d)", chapaResp.Message, resp.StatusCode))
		return response.ChapaInitiateResponse{}, errors.BadRequest(fmt.Sprintf("payment initiation rejected: %s", chapaResp.Message))
	}

	return chapaResp, nil
}

// VerifyTransaction implements Repositories.
func (r *repositories) VerifyTransaction(ctx context.Context, txRef string) (response.ChapaVerifyResponse, error) {
	url := fmt.Sprintf("%s/transaction/verify/%s", r.cfg.BaseURL, txRef)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return response.ChapaVerifyResponse{}, errors.InternalServerError("error build verify request")
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.cfg.SecretKey))

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error call payment provider: %v", err))
		return response.ChapaVerifyResponse{}, errors.BadGateway("payment provider unavailable, please retry")
	}
	defer resp.Body.Close()

	var chapaResp response.ChapaVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&chapaResp); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error decode provider response: %v", err))
		return response.ChapaVerifyResponse{}, errors.BadGateway("invalid response from payment provider")
	}

	if resp.StatusCode != http.StatusOK {
		r.log.Ctx(ctx).Error(fmt.Sprintf("payment verification rejected: %s (http %d)", chapaResp.Message, resp.StatusCode))
		return response.ChapaVerifyResponse{}, errors.BadGateway("payment provider unavailable, please retry")
	}

	return chapaResp, nil
}

// SetTaskScheduler implements Repositories.
func (r *repositories) SetTaskScheduler(ctx context.Context, runAt time.Time, payload []byte) (string, error) {
	task := asynq.NewTask(scheduler.TypeCheckPaymentStatus, payload)
	info, err := r.schedulerClient.EnqueueContext(ctx, task, asynq.ProcessIn(helpers.DurationCalculation(runAt)))
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error enqueue scheduler task: %v", err))
		return "", errors.InternalServerError("error enqueue scheduler task")
	}
	return info.ID, nil
}

// DeleteTaskScheduler implements Repositories.
func (r *repositories) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	if err := r.inspector.DeleteTask("default", taskID); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error delete scheduler task: %v", err))
		return errors.InternalServerError("error delete scheduler task")
	}
	return nil
}
