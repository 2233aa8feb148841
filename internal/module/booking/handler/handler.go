package handler

import (
	"fmt"

	"travel-service/internal/module/booking/models/request"
	"travel-service/internal/module/booking/usecases"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(string)
	emailUser := ctx.Locals("email_user").(string)
	fullName, _ := ctx.Locals("full_name").(string)

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), &req, userID, emailUser, fullName)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create booking, please check your email")
}

func (h *BookingHandler) ShowBookings(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	resp, err := h.Usecase.ShowBookings(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show bookings")
}

func (h *BookingHandler) GetBooking(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	userRole := ctx.Locals("user_role").(string)

	resp, err := h.Usecase.GetBooking(ctx.UserContext(), ctx.Params("id"), userID, userRole)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get booking")
}

func (h *BookingHandler) CancelBooking(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	userRole := ctx.Locals("user_role").(string)

	resp, err := h.Usecase.CancelBooking(ctx.UserContext(), ctx.Params("id"), userID, userRole)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error cancel booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success cancel booking")
}

func (h *BookingHandler) DeleteBooking(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	userRole := ctx.Locals("user_role").(string)

	err := h.Usecase.DeleteBooking(ctx.UserContext(), ctx.Params("id"), userID, userRole)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete booking")
}
