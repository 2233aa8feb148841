package usecases_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"travel-service/internal/module/payment/mocks"
	"travel-service/internal/module/payment/models/entity"
	"travel-service/internal/module/payment/models/request"
	"travel-service/internal/module/payment/models/response"
	"travel-service/internal/module/payment/usecases"
	"travel-service/internal/pkg/errors"
	log_internal "travel-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	logMock  *otelzap.Logger
	p        message.Publisher
)

type mockPublisher struct{}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	return nil
}

func NewMockPublisher() message.Publisher {
	return &mockPublisher{}
}

func setup() {
	repoMock = new(mocks.Repositories)
	p = NewMockPublisher()
	logMock = log_internal.Setup()
	uc = usecases.New(repoMock, logMock, p, "TRV", "http://localhost:3000")
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestInitiatePayment(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	bookingID := uuid.New()
	userID := uuid.New()

	bookingMock := entity.BookingInfo{
		ID:          bookingID,
		ListingID:   uuid.New(),
		UserID:      userID,
		ListingName: "Lakeside Villa",
		TotalPrice:  750,
		Status:      "pending",
	}

	t.Run("success", func(t *testing.T) {
		// mock data
		payloadMock := request.InitiatePayment{
			Phone: "0912345678",
		}
		chapaRespMock := response.ChapaInitiateResponse{
			Status:  "success",
			Message: "Hosted Link",
		}
		chapaRespMock.Data.CheckoutURL = "https://checkout.chapa.co/checkout/payment/abc123"

		// mock repo
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)
		repoMock.On("FindPaymentByBookingID", ctx, bookingID.String()).Return(entity.Payment{}, errors.NotFound("payment not found"))
		repoMock.On("InitiateTransaction", ctx, mock.AnythingOfType("request.ChapaInitiate")).Return(chapaRespMock, nil)
		repoMock.On("SetTaskScheduler", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("[]uint8")).Return("task-1", nil)
		repoMock.On("InsertPayment", ctx, mock.AnythingOfType("entity.Payment")).Return(nil)

		// test
		resp, err := uc.InitiatePayment(ctx, bookingID.String(), &payloadMock, userID.String(), "guest@test.com", "Test Guest")

		// assert
		assert.NoError(t, err)
		assert.Equal(t, chapaRespMock.Data.CheckoutURL, resp.CheckoutURL)
		assert.Equal(t, entity.StatusPending, resp.Status)
		assert.Equal(t, float64(750), resp.Amount)
		assert.Contains(t, resp.TxRef, "TRV_")
	})

	t.Run("blocked by pending payment", func(t *testing.T) {
		setup()
		// mock data
		existingMock := entity.Payment{
			ID:        uuid.New(),
			BookingID: bookingID,
			TxRef:     "TRV_AAAA1111",
			Status:    entity.StatusPending,
		}

		// mock repo
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)
		repoMock.On("FindPaymentByBookingID", ctx, bookingID.String()).Return(existingMock, nil)

		// test
		_, err := uc.InitiatePayment(ctx, bookingID.String(), &request.InitiatePayment{}, userID.String(), "guest@test.com", "Test Guest")

		// assert
		assert.Error(t, err)
		assert.Equal(t, 409, errors.GetCode(err))
	})

	t.Run("retry after failed payment reuses the row", func(t *testing.T) {
		setup()
		// mock data
		existingMock := entity.Payment{
			ID:        uuid.New(),
			BookingID: bookingID,
			TxRef:     "TRV_AAAA1111",
			Status:    entity.StatusFailed,
			CreatedAt: time.Now().UTC().Add(-time.Hour),
		}
		chapaRespMock := response.ChapaInitiateResponse{
			Status: "success",
		}
		chapaRespMock.Data.CheckoutURL = "https://checkout.chapa.co/checkout/payment/def456"

		// mock repo
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)
		repoMock.On("FindPaymentByBookingID", ctx, bookingID.String()).Return(existingMock, nil)
		repoMock.On("InitiateTransaction", ctx, mock.AnythingOfType("request.ChapaInitiate")).Return(chapaRespMock, nil)
		repoMock.On("SetTaskScheduler", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("[]uint8")).Return("task-2", nil)
		repoMock.On("UpdatePayment", ctx, mock.AnythingOfType("entity.Payment")).Return(nil)

		// test
		resp, err := uc.InitiatePayment(ctx, bookingID.String(), &request.InitiatePayment{}, userID.String(), "guest@test.com", "Test Guest")

		// assert
		assert.NoError(t, err)
		assert.Equal(t, existingMock.ID.String(), resp.PaymentID)
		assert.NotEqual(t, existingMock.TxRef, resp.TxRef)
		repoMock.AssertNotCalled(t, "InsertPayment", ctx, mock.Anything)
	})

	t.Run("not the owner", func(t *testing.T) {
		setup()
		// mock repo
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)

		// test
		_, err := uc.InitiatePayment(ctx, bookingID.String(), &request.InitiatePayment{}, uuid.New().String(), "other@test.com", "Other User")

		// assert
		assert.Error(t, err)
		assert.Equal(t, 403, errors.GetCode(err))
	})

	t.Run("canceled booking", func(t *testing.T) {
		setup()
		// mock data
		canceledMock := bookingMock
		canceledMock.Status = "canceled"

		// mock repo
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(canceledMock, nil)

		// test
		_, err := uc.InitiatePayment(ctx, bookingID.String(), &request.InitiatePayment{}, userID.String(), "guest@test.com", "Test Guest")

		// assert
		assert.Error(t, err)
		assert.Equal(t, 422, errors.GetCode(err))
	})
}

func TestProcessWebhook(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	bookingID := uuid.New()
	paymentID := uuid.New()

	bookingMock := entity.BookingInfo{
		ID:          bookingID,
		UserID:      uuid.New(),
		ListingName: "Lakeside Villa",
		TotalPrice:  750,
		Status:      "pending",
	}

	t.Run("success confirms the booking", func(t *testing.T) {
		// mock data
		payloadMock := request.Webhook{
			TxRef:  "TRV_AAAA1111",
			Status: "success",
		}
		paymentMock := entity.Payment{
			ID:            paymentID,
			BookingID:     bookingID,
			TxRef:         payloadMock.TxRef,
			Amount:        750,
			Currency:      "ETB",
			Status:        entity.StatusPending,
			CustomerEmail: "guest@test.com",
			TaskID:        sql.NullString{String: "task-1", Valid: true},
		}

		// mock repo
		repoMock.On("FindPaymentByTxRef", ctx, payloadMock.TxRef).Return(paymentMock, nil)
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)
		repoMock.On("UpdatePayment", ctx, mock.AnythingOfType("entity.Payment")).Return(nil)
		repoMock.On("DeleteTaskScheduler", ctx, "task-1").Return(nil)
		repoMock.On("ConfirmBooking", ctx, bookingID.String()).Return(nil)

		// test
		err := uc.ProcessWebhook(ctx, &payloadMock)

		// assert
		assert.NoError(t, err)
		repoMock.AssertCalled(t, "ConfirmBooking", ctx, bookingID.String())
	})

	t.Run("duplicate delivery is a no-op", func(t *testing.T) {
		setup()
		// mock data
		payloadMock := request.Webhook{
			TxRef:  "TRV_AAAA1111",
			Status: "success",
		}
		paymentMock := entity.Payment{
			ID:        paymentID,
			BookingID: bookingID,
			TxRef:     payloadMock.TxRef,
			Status:    entity.StatusCompleted,
		}

		// mock repo
		repoMock.On("FindPaymentByTxRef", ctx, payloadMock.TxRef).Return(paymentMock, nil)
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)

		// test
		err := uc.ProcessWebhook(ctx, &payloadMock)

		// assert
		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "UpdatePayment", ctx, mock.Anything)
		repoMock.AssertNotCalled(t, "ConfirmBooking", ctx, mock.Anything)
	})

	t.Run("failed payment leaves the booking pending", func(t *testing.T) {
		setup()
		// mock data
		payloadMock := request.Webhook{
			TxRef:   "TRV_BBBB2222",
			Status:  "failed",
			Message: "insufficient funds",
		}
		paymentMock := entity.Payment{
			ID:            paymentID,
			BookingID:     bookingID,
			TxRef:         payloadMock.TxRef,
			Status:        entity.StatusPending,
			CustomerEmail: "guest@test.com",
		}

		// mock repo
		repoMock.On("FindPaymentByTxRef", ctx, payloadMock.TxRef).Return(paymentMock, nil)
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)
		repoMock.On("UpdatePayment", ctx, mock.AnythingOfType("entity.Payment")).Return(nil)

		// test
		err := uc.ProcessWebhook(ctx, &payloadMock)

		// assert
		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "ConfirmBooking", ctx, mock.Anything)
	})
}

func TestVerifyPayment(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	bookingID := uuid.New()
	userID := uuid.New()
	paymentID := uuid.New()

	t.Run("success settles the payment", func(t *testing.T) {
		// mock data
		payloadMock := request.VerifyPayment{TxRef: "TRV_AAAA1111"}
		paymentMock := entity.Payment{
			ID:            paymentID,
			BookingID:     bookingID,
			TxRef:         payloadMock.TxRef,
			Amount:        750,
			Currency:      "ETB",
			Status:        entity.StatusPending,
			CustomerEmail: "guest@test.com",
		}
		bookingMock := entity.BookingInfo{
			ID:          bookingID,
			UserID:      userID,
			ListingName: "Lakeside Villa",
			Status:      "pending",
		}
		chapaRespMock := response.ChapaVerifyResponse{Status: "success"}
		chapaRespMock.Data.Status = "success"
		chapaRespMock.Data.Method = "telebirr"

		// mock repo
		repoMock.On("FindPaymentByTxRef", ctx, payloadMock.TxRef).Return(paymentMock, nil)
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)
		repoMock.On("VerifyTransaction", ctx, payloadMock.TxRef).Return(chapaRespMock, nil)
		repoMock.On("UpdatePayment", ctx, mock.AnythingOfType("entity.Payment")).Return(nil)
		repoMock.On("ConfirmBooking", ctx, bookingID.String()).Return(nil)

		// test
		resp, err := uc.VerifyPayment(ctx, &payloadMock, userID.String(), "guest")

		// assert
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, resp.PaymentStatus)
		assert.Equal(t, "confirmed", resp.BookingStatus)
	})

	t.Run("not the owner", func(t *testing.T) {
		setup()
		// mock data
		payloadMock := request.VerifyPayment{TxRef: "TRV_AAAA1111"}
		paymentMock := entity.Payment{
			ID:        paymentID,
			BookingID: bookingID,
			TxRef:     payloadMock.TxRef,
			Status:    entity.StatusPending,
		}
		bookingMock := entity.BookingInfo{
			ID:     bookingID,
			UserID: userID,
			Status: "pending",
		}

		// mock repo
		repoMock.On("FindPaymentByTxRef", ctx, payloadMock.TxRef).Return(paymentMock, nil)
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)

		// test
		_, err := uc.VerifyPayment(ctx, &payloadMock, uuid.New().String(), "guest")

		// assert
		assert.Error(t, err)
		assert.Equal(t, 403, errors.GetCode(err))
	})
}

func TestCheckPaymentStatus(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	bookingID := uuid.New()

	t.Run("terminal payment is skipped", func(t *testing.T) {
		// mock data
		payloadMock := request.CheckPaymentStatus{TxRef: "TRV_AAAA1111"}
		paymentMock := entity.Payment{
			ID:        uuid.New(),
			BookingID: bookingID,
			TxRef:     payloadMock.TxRef,
			Status:    entity.StatusCompleted,
		}

		// mock repo
		repoMock.On("FindPaymentByTxRef", ctx, payloadMock.TxRef).Return(paymentMock, nil)

		// test
		err := uc.CheckPaymentStatus(ctx, &payloadMock)

		// assert
		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "VerifyTransaction", ctx, mock.Anything)
	})

	t.Run("still pending at the provider stays pending", func(t *testing.T) {
		setup()
		// mock data
		payloadMock := request.CheckPaymentStatus{TxRef: "TRV_BBBB2222"}
		paymentMock := entity.Payment{
			ID:        uuid.New(),
			BookingID: bookingID,
			TxRef:     payloadMock.TxRef,
			Status:    entity.StatusPending,
		}
		bookingMock := entity.BookingInfo{
			ID:     bookingID,
			UserID: uuid.New(),
			Status: "pending",
		}
		chapaRespMock := response.ChapaVerifyResponse{Status: "success"}
		chapaRespMock.Data.Status = "pending"

		// mock repo
		repoMock.On("FindPaymentByTxRef", ctx, payloadMock.TxRef).Return(paymentMock, nil)
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)
		repoMock.On("VerifyTransaction", ctx, payloadMock.TxRef).Return(chapaRespMock, nil)

		// test
		err := uc.CheckPaymentStatus(ctx, &payloadMock)

		// assert
		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "UpdatePayment", ctx, mock.Anything)
	})
}
