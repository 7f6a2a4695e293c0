package mediate

import (
	"context"
	"log/slog"
	"time"

	"github.com/glimte/mediate-go/mediator"
)

// Client provides the main entry point for mediate-go. It composes a
// handler registry, a request dispatcher, and a notification publisher
// configured once at construction.
type Client struct {
	registry   *mediator.Registry
	dispatcher *mediator.Dispatcher
	publisher  *mediator.Publisher
	logger     *slog.Logger
}

// NewClient creates a new mediate client
func NewClient(options ...ClientOption) *Client {
	cfg := &clientConfig{
		logger:   slog.Default(),
		strategy: mediator.Parallel,
		policy:   mediator.ContinueOnException,
	}

	for _, opt := range options {
		opt(cfg)
	}

	registry := mediator.NewRegistry()
	registry.Use(cfg.behaviors...)

	dispatcherOpts := []mediator.DispatcherOption{
		mediator.WithMissingHandlerPolicy(cfg.missingHandler),
	}
	if cfg.requestTimeout > 0 {
		dispatcherOpts = append(dispatcherOpts, mediator.WithRequestTimeout(cfg.requestTimeout))
	}
	if cfg.onSlowRequest != nil {
		dispatcherOpts = append(dispatcherOpts, mediator.WithSlowRequestCallback(cfg.slowThreshold, cfg.onSlowRequest))
	}

	publisherOpts := []mediator.PublisherOption{
		mediator.WithStrategy(cfg.strategy),
		mediator.WithExceptionPolicy(cfg.policy),
	}
	if cfg.maxConcurrent > 0 {
		publisherOpts = append(publisherOpts, mediator.WithMaxConcurrentHandlers(cfg.maxConcurrent))
	}

	return &Client{
		registry:   registry,
		dispatcher: mediator.NewDispatcher(registry, dispatcherOpts...),
		publisher:  mediator.NewPublisher(registry, publisherOpts...),
		logger:     cfg.logger,
	}
}

// Send dispatches a request to its handler through the behavior chain
func (c *Client) Send(ctx context.Context, request any) (any, error) {
	return c.dispatcher.Send(ctx, request)
}

// Publish broadcasts a notification to every registered handler
func (c *Client) Publish(ctx context.Context, notification any) error {
	return c.publisher.Publish(ctx, notification)
}

// Registry returns the handler registry for registration
func (c *Client) Registry() *mediator.Registry {
	return c.registry
}

// Dispatcher returns the request dispatcher
func (c *Client) Dispatcher() *mediator.Dispatcher {
	return c.dispatcher
}

// Publisher returns the notification publisher
func (c *Client) Publisher() *mediator.Publisher {
	return c.publisher
}

// Logger returns the client logger
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// Send dispatches a request through the client and asserts the response
// type. Convenience wrapper over mediator.Send.
func Send[Resp any](ctx context.Context, c *Client, request any) (Resp, error) {
	return mediator.Send[Resp](ctx, c.dispatcher, request)
}

// clientConfig holds client configuration
type clientConfig struct {
	logger         *slog.Logger
	behaviors      []mediator.Behavior
	requestTimeout time.Duration
	missingHandler mediator.MissingHandlerPolicy
	slowThreshold  time.Duration
	onSlowRequest  mediator.SlowRequestCallback
	strategy       mediator.NotificationStrategy
	policy         mediator.ExceptionPolicy
	maxConcurrent  int
}
