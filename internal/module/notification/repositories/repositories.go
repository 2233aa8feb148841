package repositories

import (
	"context"
	"fmt"

	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/mailer"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type repositories struct {
	mail mailer.Mailer
	log  *otelzap.Logger
}

type Repositories interface {
	SendEmail(ctx context.Context, to string, subject string, body string) error
}

func New(mail mailer.Mailer, log *otelzap.Logger) Repositories {
	return &repositories{
		mail: mail,
		log:  log,
	}
}

// SendEmail implements Repositories. Failures bubble up so the message
// router can retry the delivery.
func (r *repositories) SendEmail(ctx context.Context, to string, subject string, body string) error {
	if err := r.mail.Send(ctx, to, subject, body); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error send email to %s: %v", to, err))
		return errors.InternalServerError("error send email")
	}
	return nil
}
