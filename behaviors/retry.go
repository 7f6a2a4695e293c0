package behaviors

import (
	"context"
	"log/slog"

	"github.com/glimte/mediate-go/internal/reliability"
	"github.com/glimte/mediate-go/mediator"
)

// RetryBehavior re-invokes the continuation on failure per the configured
// retry policy. Each attempt runs the full inner chain and the handler.
type RetryBehavior struct {
	policy reliability.Policy
	logger *slog.Logger
}

// NewRetryBehavior creates a new retry behavior
func NewRetryBehavior(policy reliability.Policy) *RetryBehavior {
	return &RetryBehavior{
		policy: policy,
		logger: slog.Default(),
	}
}

// WithLogger sets the logger for the retry behavior
func (b *RetryBehavior) WithLogger(logger *slog.Logger) *RetryBehavior {
	b.logger = logger
	return b
}

// Handle implements mediator.Behavior
func (b *RetryBehavior) Handle(ctx context.Context, request any, next mediator.Next) (any, error) {
	var response any

	err := reliability.Do(ctx, b.policy, func() error {
		var attemptErr error
		response, attemptErr = next(ctx)
		return attemptErr
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

// Name implements mediator.Behavior
func (b *RetryBehavior) Name() string {
	return "RetryBehavior"
}
