package handler

import (
	"fmt"
	"strconv"

	"travel-service/internal/module/listing/models/request"
	"travel-service/internal/module/listing/usecases"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type ListingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *ListingHandler) CreateListing(ctx *fiber.Ctx) error {
	var req request.CreateListing
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	hostID := ctx.Locals("user_id").(string)

	resp, err := h.Usecase.CreateListing(ctx.UserContext(), &req, hostID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create listing: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create listing")
}

func (h *ListingHandler) UpdateListing(ctx *fiber.Ctx) error {
	var req request.UpdateListing
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(string)
	userRole := ctx.Locals("user_role").(string)

	resp, err := h.Usecase.UpdateListing(ctx.UserContext(), &req, ctx.Params("id"), userID, userRole)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update listing: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update listing")
}

func (h *ListingHandler) DeleteListing(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	userRole := ctx.Locals("user_role").(string)

	err := h.Usecase.DeleteListing(ctx.UserContext(), ctx.Params("id"), userID, userRole)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete listing: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success delete listing")
}

func (h *ListingHandler) ShowListings(ctx *fiber.Ctx) error {
	var maxPrice float64
	if raw := ctx.Query("max_price"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse max_price: %v", err))
			return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse max_price"))
		}
		maxPrice = parsed
	}

	resp, err := h.Usecase.ShowListings(ctx.UserContext(), maxPrice)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show listings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show listings")
}

func (h *ListingHandler) GetListing(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetListing(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get listing: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get listing")
}

func (h *ListingHandler) CreateReview(ctx *fiber.Ctx) error {
	var req request.CreateReview
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(string)

	resp, err := h.Usecase.CreateReview(ctx.UserContext(), &req, ctx.Params("id"), userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create review: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create review")
}

func (h *ListingHandler) ShowReviews(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ShowReviews(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show reviews: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show reviews")
}
