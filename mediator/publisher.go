package mediator

import (
	"context"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/glimte/mediate-go/contracts"
)

// Publisher broadcasts a notification to every handler registered for its
// type, per the configured execution strategy and exception policy.
type Publisher struct {
	resolver      NotificationResolver
	strategy      NotificationStrategy
	policy        ExceptionPolicy
	maxConcurrent int
}

// NewPublisher creates a new notification publisher backed by resolver
func NewPublisher(resolver NotificationResolver, options ...PublisherOption) *Publisher {
	p := &Publisher{
		resolver: resolver,
		strategy: Parallel,
		policy:   ContinueOnException,
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// Publish invokes every handler registered for the notification type.
// Publishing to zero handlers succeeds. Handler failures are surfaced per
// the exception policy; under SuppressExceptions Publish never fails.
func (p *Publisher) Publish(ctx context.Context, notification any) error {
	if notification == nil {
		return contracts.ErrNilNotification
	}

	handlers := p.resolver.ResolveNotificationHandlers(reflect.TypeOf(notification))
	if len(handlers) == 0 {
		return nil
	}

	if p.strategy == Sequential {
		return p.publishSequential(ctx, notification, handlers)
	}
	return p.publishParallel(ctx, notification, handlers)
}

func (p *Publisher) publishSequential(ctx context.Context, notification any, handlers []NotificationHandlerEntry) error {
	ec := NewExceptionContext()

	for _, handler := range handlers {
		if err := handler(ctx, notification); err != nil {
			if p.policy == StopOnFirstException {
				return err
			}
			ec.Add(err)
		}
	}

	return p.outcome(ec)
}

func (p *Publisher) publishParallel(ctx context.Context, notification any, handlers []NotificationHandlerEntry) error {
	ec := NewExceptionContext()

	// Soft stop for StopOnFirstException: suppresses new dispatches only,
	// in-flight handlers always run to completion.
	var failed atomic.Bool

	var permits chan struct{}
	if p.maxConcurrent > 0 {
		permits = make(chan struct{}, p.maxConcurrent)
	}

	var wg sync.WaitGroup
	for _, handler := range handlers {
		if p.policy == StopOnFirstException && failed.Load() {
			break
		}

		wg.Add(1)
		go func(handler NotificationHandlerEntry) {
			defer wg.Done()

			if permits != nil {
				permits <- struct{}{}
				defer func() { <-permits }()
			}

			if p.policy == StopOnFirstException && failed.Load() {
				return
			}

			if err := handler(ctx, notification); err != nil {
				failed.Store(true)
				ec.Add(err)
			}
		}(handler)
	}
	wg.Wait()

	return p.outcome(ec)
}

func (p *Publisher) outcome(ec *ExceptionContext) error {
	switch p.policy {
	case SuppressExceptions:
		return nil
	case AggregateExceptions:
		if ec.HasAny() {
			return &contracts.AggregateError{Errors: ec.All()}
		}
		return nil
	default:
		// StopOnFirstException and ContinueOnException both surface the
		// first recorded failure: registration order when sequential,
		// observation order when parallel.
		return ec.First()
	}
}
