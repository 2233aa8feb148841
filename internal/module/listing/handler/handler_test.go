package handler_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"travel-service/internal/module/listing/handler"
	"travel-service/internal/module/listing/mocks"
	"travel-service/internal/module/listing/models/request"
	"travel-service/internal/module/listing/models/response"
	log_internal "travel-service/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/valyala/fasthttp"
)

var (
	h             *handler.ListingHandler
	ucm           *mocks.Usecase
	app           *fiber.App
	validatorTest *validator.Validate
)

func setup() {
	ucm = &mocks.Usecase{}
	logMock := log_internal.Setup()
	validatorTest = validator.New()
	h = &handler.ListingHandler{
		Log:       logMock,
		Validator: validatorTest,
		Usecase:   ucm,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	validatorTest = nil
	h = nil
	app = nil
}

func reviewCtx(body []byte) *fiber.Ctx {
	ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
	ctx.Request().SetRequestURI("/api/v1/listings/listing-1/reviews")
	ctx.Request().Header.SetContentType("application/json")
	ctx.Request().Header.SetMethod("POST")
	ctx.Request().SetBody(body)
	ctx.Locals("user_id", "user-1")
	return ctx
}

func TestCreateReview(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		// mock data
		payload := request.CreateReview{
			Rating:  4,
			Comment: "great stay",
		}
		jsonData, _ := json.Marshal(payload)

		// the handler reads the listing id via ctx.Params, so it must be
		// exercised through a registered route (a route-less AcquireCtx
		// panics inside fiber's Params)
		var handlerErr error
		app.Post("/api/v1/listings/:id/reviews", func(c *fiber.Ctx) error {
			c.Locals("user_id", "user-1")
			handlerErr = h.CreateReview(c)
			return handlerErr
		})

		req := httptest.NewRequest(fiber.MethodPost, "/api/v1/listings/listing-1/reviews", bytes.NewReader(jsonData))
		req.Header.Set("Content-Type", "application/json")

		// mock usecase
		ucm.On("CreateReview", mock.Anything, &payload, mock.Anything, "user-1").Return(response.Review{Rating: 4}, nil)

		// test
		resp, err := app.Test(req)

		// assert
		assert.NoError(t, err)
		assert.NoError(t, handlerErr)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("rating below bound", func(t *testing.T) {
		setup()
		defer teardown()

		jsonData, _ := json.Marshal(request.CreateReview{Rating: 0, Comment: "never happened"})
		ctx := reviewCtx(jsonData)

		// test
		err := h.CreateReview(ctx)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
		ucm.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rating above bound", func(t *testing.T) {
		setup()
		defer teardown()

		jsonData, _ := json.Marshal(request.CreateReview{Rating: 6, Comment: "too enthusiastic"})
		ctx := reviewCtx(jsonData)

		// test
		err := h.CreateReview(ctx)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
		ucm.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
