package mediate

import (
	"log/slog"
	"time"

	"github.com/glimte/mediate-go/mediator"
)

// ClientOption configures the client
type ClientOption func(*clientConfig)

// WithLogger sets a custom logger
func WithLogger(logger *slog.Logger) ClientOption {
	return func(cfg *clientConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithBehaviors registers global behaviors that wrap every request,
// outermost first in the given order
func WithBehaviors(behaviors ...mediator.Behavior) ClientOption {
	return func(cfg *clientConfig) {
		cfg.behaviors = append(cfg.behaviors, behaviors...)
	}
}

// WithRequestTimeout sets a deadline applied to every request dispatch.
// The signal propagates cooperatively; handlers that ignore it are always
// waited for.
func WithRequestTimeout(timeout time.Duration) ClientOption {
	return func(cfg *clientConfig) {
		cfg.requestTimeout = timeout
	}
}

// WithMissingHandlerPolicy selects what Send does when no handler is
// registered for a request type
func WithMissingHandlerPolicy(policy mediator.MissingHandlerPolicy) ClientOption {
	return func(cfg *clientConfig) {
		cfg.missingHandler = policy
	}
}

// WithSlowRequestCallback invokes fn whenever a dispatch takes longer than
// threshold. The callback never affects the dispatch result.
func WithSlowRequestCallback(threshold time.Duration, fn mediator.SlowRequestCallback) ClientOption {
	return func(cfg *clientConfig) {
		cfg.slowThreshold = threshold
		cfg.onSlowRequest = fn
	}
}

// WithNotificationStrategy selects sequential or parallel notification
// handler execution
func WithNotificationStrategy(strategy mediator.NotificationStrategy) ClientOption {
	return func(cfg *clientConfig) {
		cfg.strategy = strategy
	}
}

// WithNotificationExceptionPolicy selects how notification handler
// failures are surfaced by Publish
func WithNotificationExceptionPolicy(policy mediator.ExceptionPolicy) ClientOption {
	return func(cfg *clientConfig) {
		cfg.policy = policy
	}
}

// WithMaxConcurrentNotificationHandlers bounds parallel notification
// fan-out. Zero means unbounded.
func WithMaxConcurrentNotificationHandlers(n int) ClientOption {
	return func(cfg *clientConfig) {
		cfg.maxConcurrent = n
	}
}
