package mediator

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/glimte/mediate-go/contracts"
)

// Dispatcher routes a request to its single resolved handler through the
// behavior chain. A Dispatcher holds no mutable state across calls, so
// concurrent Send calls on one instance are fully independent.
type Dispatcher struct {
	resolver       RequestResolver
	timeout        time.Duration
	missingHandler MissingHandlerPolicy
	slowThreshold  time.Duration
	onSlowRequest  SlowRequestCallback
}

// NewDispatcher creates a new request dispatcher backed by resolver
func NewDispatcher(resolver RequestResolver, options ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		resolver: resolver,
	}

	for _, opt := range options {
		opt(d)
	}

	return d
}

// Send dispatches request to its handler and returns the response.
//
// The behavior chain wraps the handler with the first-registered behavior
// outermost. Errors from behaviors and the handler propagate unwrapped.
// With no handler registered the result depends on the missing-handler
// policy: ErrHandlerNotFound, or a nil response without error.
func (d *Dispatcher) Send(ctx context.Context, request any) (any, error) {
	if request == nil {
		return nil, contracts.ErrNilRequest
	}

	requestType := reflect.TypeOf(request)

	handler, ok := d.resolver.ResolveRequestHandler(requestType)
	if !ok {
		if d.missingHandler == MissingHandlerDefaultValue {
			return nil, nil
		}
		return nil, fmt.Errorf("send %s: %w", requestType, contracts.ErrHandlerNotFound)
	}

	behaviors := d.resolver.ResolveBehaviors(requestType)

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	chain := buildChain(behaviors, request, func(ctx context.Context) (any, error) {
		return handler(ctx, request)
	})

	if d.onSlowRequest == nil {
		return chain(ctx)
	}

	start := time.Now()
	response, err := chain(ctx)
	if elapsed := time.Since(start); elapsed > d.slowThreshold {
		d.reportSlow(requestType.String(), elapsed)
	}
	return response, err
}

// reportSlow shields the dispatch result from a misbehaving callback.
func (d *Dispatcher) reportSlow(requestType string, elapsed time.Duration) {
	defer func() {
		_ = recover()
	}()
	d.onSlowRequest(requestType, elapsed)
}

// Send dispatches request through d and asserts the response to Resp.
// A nil response under the DefaultValue missing-handler policy becomes the
// zero value of Resp.
func Send[Resp any](ctx context.Context, d *Dispatcher, request any) (Resp, error) {
	var zero Resp

	response, err := d.Send(ctx, request)
	if err != nil {
		return zero, err
	}
	if response == nil {
		return zero, nil
	}

	resp, ok := response.(Resp)
	if !ok {
		return zero, fmt.Errorf("send %T: handler returned %T: %w", request, response, contracts.ErrResponseTypeMismatch)
	}
	return resp, nil
}
