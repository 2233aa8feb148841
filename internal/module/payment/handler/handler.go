package handler

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"travel-service/internal/module/payment/models/request"
	"travel-service/internal/module/payment/usecases"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const webhookSignatureHeader = "Chapa-Signature"

type PaymentHandler struct {
	Log           *otelzap.Logger
	Validator     *validator.Validate
	Usecase       usecases.Usecase
	WebhookSecret string
}

func (h *PaymentHandler) InitiatePayment(ctx *fiber.Ctx) error {
	var req request.InitiatePayment
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
			return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
		}
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(string)
	emailUser := ctx.Locals("email_user").(string)
	fullName, _ := ctx.Locals("full_name").(string)

	resp, err := h.Usecase.InitiatePayment(ctx.UserContext(), ctx.Params("id"), &req, userID, emailUser, fullName)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error initiate payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success initiate payment, please complete the checkout")
}

func (h *PaymentHandler) VerifyPayment(ctx *fiber.Ctx) error {
	req := request.VerifyPayment{TxRef: ctx.Params("tx_ref")}
	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(string)
	userRole := ctx.Locals("user_role").(string)

	resp, err := h.Usecase.VerifyPayment(ctx.UserContext(), &req, userID, userRole)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error verify payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success verify payment")
}

// Webhook receives provider callbacks. The raw body is authenticated with an
// HMAC-SHA256 signature before anything is parsed out of it.
func (h *PaymentHandler) Webhook(ctx *fiber.Ctx) error {
	body := ctx.Body()
	if !h.validSignature(body, ctx.Get(webhookSignatureHeader)) {
		h.Log.Ctx(ctx.UserContext()).Error("webhook signature mismatch")
		return helpers.RespError(ctx, h.Log, errors.UnauthorizedError("invalid webhook signature"))
	}

	var req request.Webhook
	if err := json.Unmarshal(body, &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse webhook: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse webhook"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate webhook: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	if err := h.Usecase.ProcessWebhook(ctx.UserContext(), &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error process webhook: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "webhook processed")
}

func (h *PaymentHandler) ShowPayments(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	resp, err := h.Usecase.ShowPayments(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show payments: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show payments")
}

func (h *PaymentHandler) GetPayment(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	userRole := ctx.Locals("user_role").(string)

	resp, err := h.Usecase.GetPayment(ctx.UserContext(), ctx.Params("id"), userID, userRole)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get payment")
}

// CheckPaymentStatus runs as a deferred task some time after initiation and
// settles payments the webhook never reported on.
func (h *PaymentHandler) CheckPaymentStatus(ctx context.Context, t *asynq.Task) error {
	var req request.CheckPaymentStatus
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error parse check payment status payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate check payment status payload: %v", err))
		return err
	}

	if err := h.Usecase.CheckPaymentStatus(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error check payment status: %v", err))
		return err
	}

	return nil
}

func (h *PaymentHandler) validSignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(h.WebhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
