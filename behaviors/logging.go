package behaviors

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"github.com/glimte/mediate-go/contracts"
	"github.com/glimte/mediate-go/mediator"
)

// LoggingBehavior logs request processing with timing information
type LoggingBehavior struct {
	logger *slog.Logger
}

// NewLoggingBehavior creates a new logging behavior
func NewLoggingBehavior(logger *slog.Logger) *LoggingBehavior {
	if logger == nil {
		logger = slog.Default()
	}

	return &LoggingBehavior{logger: logger}
}

// Handle implements mediator.Behavior
func (b *LoggingBehavior) Handle(ctx context.Context, request any, next mediator.Next) (any, error) {
	start := time.Now()
	attrs := requestAttrs(request)

	b.logger.Info("processing request", attrs...)

	response, err := next(ctx)
	duration := time.Since(start)

	if err != nil {
		b.logger.Error("request failed", append(attrs, slog.Duration("duration", duration), slog.Any("error", err))...)
	} else {
		b.logger.Info("request processed", append(attrs, slog.Duration("duration", duration))...)
	}

	return response, err
}

// Name implements mediator.Behavior
func (b *LoggingBehavior) Name() string {
	return "LoggingBehavior"
}

// requestAttrs extracts log attributes, using message identity when the
// request implements contracts.Message.
func requestAttrs(request any) []any {
	if msg, ok := request.(contracts.Message); ok {
		return []any{
			slog.String("requestType", msg.GetType()),
			slog.String("messageId", msg.GetID()),
			slog.String("correlationId", msg.GetCorrelationID()),
		}
	}
	return []any{
		slog.String("requestType", reflect.TypeOf(request).String()),
	}
}
