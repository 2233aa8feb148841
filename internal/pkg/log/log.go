package log

import (
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Setup builds the application logger. Every handler, usecase and repository
// shares the same *otelzap.Logger so log context follows the request.
func Setup() *otelzap.Logger {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		zapLogger = zap.NewNop()
	}

	return otelzap.New(zapLogger)
}
