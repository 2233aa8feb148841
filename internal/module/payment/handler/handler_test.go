package handler_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http/httptest"
	"testing"

	"travel-service/internal/module/payment/handler"
	"travel-service/internal/module/payment/mocks"
	"travel-service/internal/module/payment/models/request"
	"travel-service/internal/module/payment/models/response"
	log_internal "travel-service/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/valyala/fasthttp"
)

const webhookSecret = "test-webhook-secret"

var (
	h             *handler.PaymentHandler
	ucm           *mocks.Usecase
	app           *fiber.App
	validatorTest *validator.Validate
)

func setup() {
	ucm = &mocks.Usecase{}
	logMock := log_internal.Setup()
	validatorTest = validator.New()
	h = &handler.PaymentHandler{
		Log:           logMock,
		Validator:     validatorTest,
		Usecase:       ucm,
		WebhookSecret: webhookSecret,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	validatorTest = nil
	h = nil
	app = nil
}

func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestInitiatePayment(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.InitiatePayment{
			Phone: "0912345678",
		}
		jsonData, _ := json.Marshal(payload)

		// the handler reads the booking id via ctx.Params, so it must be
		// exercised through a registered route (a route-less AcquireCtx
		// panics inside fiber's Params)
		var handlerErr error
		app.Post("/api/v1/bookings/:id/payment", func(c *fiber.Ctx) error {
			c.Locals("user_id", "user-1")
			c.Locals("email_user", "guest@test.com")
			c.Locals("full_name", "Test Guest")
			handlerErr = h.InitiatePayment(c)
			return handlerErr
		})

		req := httptest.NewRequest(fiber.MethodPost, "/api/v1/bookings/123/payment", bytes.NewReader(jsonData))
		req.Header.Set("Content-Type", "application/json")

		// mock usecase
		ucm.On("InitiatePayment", mock.Anything, "123", &payload, "user-1", "guest@test.com", "Test Guest").Return(response.InitiatedPayment{TxRef: "TRV_AAAA1111"}, nil)

		// test
		resp, err := app.Test(req)

		// assert
		assert.NoError(t, err)
		assert.NoError(t, handlerErr)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})
}

func TestWebhook(t *testing.T) {
	setup()
	defer teardown()

	payload := request.Webhook{
		TxRef:  "TRV_AAAA1111",
		Status: "success",
	}
	jsonData, _ := json.Marshal(payload)

	t.Run("valid signature", func(t *testing.T) {
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/payments/webhook")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().Header.Set("Chapa-Signature", sign(jsonData))
		ctx.Request().SetBody(jsonData)

		// mock usecase
		ucm.On("ProcessWebhook", mock.Anything, &payload).Return(nil)

		// test
		err := h.Webhook(ctx)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})

	t.Run("missing signature", func(t *testing.T) {
		setup()
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/payments/webhook")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		// test
		err := h.Webhook(ctx)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, ctx.Response().StatusCode())
		ucm.AssertNotCalled(t, "ProcessWebhook", mock.Anything, mock.Anything)
	})

	t.Run("tampered body", func(t *testing.T) {
		setup()
		tampered := append([]byte{}, jsonData...)
		tampered = append(tampered[:len(tampered)-1], []byte(",\"amount\":1}")...)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/payments/webhook")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().Header.Set("Chapa-Signature", sign(jsonData))
		ctx.Request().SetBody(tampered)

		// test
		err := h.Webhook(ctx)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, ctx.Response().StatusCode())
		ucm.AssertNotCalled(t, "ProcessWebhook", mock.Anything, mock.Anything)
	})
}

func TestShowPayments(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/payments")
		ctx.Request().Header.SetMethod("GET")
		ctx.Locals("user_id", "user-1")

		// mock usecase
		ucm.On("ShowPayments", mock.Anything, "user-1").Return([]response.Payment{}, nil)

		// test
		err := h.ShowPayments(ctx)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}

func TestCheckPaymentStatus(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.CheckPaymentStatus{TxRef: "TRV_AAAA1111"}

		// mock usecase
		ucm.On("CheckPaymentStatus", ctx, &payload).Return(nil)
		task := asynq.NewTask("check_payment_status", []byte(`{"tx_ref":"TRV_AAAA1111"}`))

		// test
		err := h.CheckPaymentStatus(ctx, task)

		// assert
		assert.NoError(t, err)
	})
}
