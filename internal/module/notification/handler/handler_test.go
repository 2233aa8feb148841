package handler_test

import (
	"testing"

	"travel-service/internal/module/notification/handler"
	"travel-service/internal/module/notification/mocks"
	"travel-service/internal/module/notification/models/request"
	"travel-service/internal/module/notification/usecases"
	log_internal "travel-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	h        *handler.NotificationHandler
	repoMock *mocks.Repositories
)

func setup() {
	repoMock = new(mocks.Repositories)
	logMock := log_internal.Setup()
	h = &handler.NotificationHandler{
		Log:       logMock,
		Validator: validator.New(),
		Usecase:   usecases.New(repoMock, logMock),
	}
}

func teardown() {
	repoMock = nil
	h = nil
}

func TestConsumeBookingNotificationQueue(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.BookingNotification{
			BookingID:      "7e9a4c3b-0000-0000-0000-000000000000",
			ListingName:    "Lakeside Villa",
			StartDate:      "2026-09-10",
			EndDate:        "2026-09-13",
			TotalPrice:     750,
			EmailRecipient: "guest@test.com",
			RecipientName:  "Test Guest",
		}
		jsonData, _ := json.Marshal(payload)
		msg := message.NewMessage("123", jsonData)

		// mock repo
		repoMock.On("SendEmail", mock.Anything, payload.EmailRecipient, mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil)

		// test
		err := h.ConsumeBookingNotificationQueue(msg)

		// assert
		assert.NoError(t, err)
	})

	t.Run("invalid payload", func(t *testing.T) {
		setup()
		// mock data
		msg := message.NewMessage("124", []byte(`{"booking_id":""}`))

		// test
		err := h.ConsumeBookingNotificationQueue(msg)

		// assert
		assert.Error(t, err)
		repoMock.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestConsumePaymentNotificationQueue(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.PaymentNotification{
			BookingID:      "7e9a4c3b-0000-0000-0000-000000000000",
			TxRef:          "TRV_AAAA1111",
			Amount:         750,
			Currency:       "ETB",
			Message:        "payment initiated, please complete the checkout",
			EmailRecipient: "guest@test.com",
		}
		jsonData, _ := json.Marshal(payload)
		msg := message.NewMessage("125", jsonData)

		// mock repo
		repoMock.On("SendEmail", mock.Anything, payload.EmailRecipient, mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil)

		// test
		err := h.ConsumePaymentNotificationQueue(msg)

		// assert
		assert.NoError(t, err)
	})
}
