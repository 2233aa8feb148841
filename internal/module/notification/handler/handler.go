package handler

import (
	"fmt"

	"travel-service/internal/module/notification/models/request"
	"travel-service/internal/module/notification/usecases"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type NotificationHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

// ConsumeBookingNotificationQueue handles messages from booking_notification.
// A returned error makes the router retry and eventually poison the message.
func (h *NotificationHandler) ConsumeBookingNotificationQueue(msg *message.Message) error {
	ctx := msg.Context()

	var req request.BookingNotification
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error parse booking notification: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate booking notification: %v", err))
		return err
	}

	return h.Usecase.SendBookingConfirmation(ctx, &req)
}

// ConsumePaymentNotificationQueue handles messages from payment_notification.
func (h *NotificationHandler) ConsumePaymentNotificationQueue(msg *message.Message) error {
	ctx := msg.Context()

	var req request.PaymentNotification
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error parse payment notification: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payment notification: %v", err))
		return err
	}

	return h.Usecase.SendPaymentUpdate(ctx, &req)
}
