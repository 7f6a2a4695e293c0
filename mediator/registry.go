package mediator

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/glimte/mediate-go/contracts"
)

// RequestHandler handles a request of type Req and produces a Resp.
// Exactly one request handler may be registered per request type.
type RequestHandler[Req any, Resp any] interface {
	Handle(ctx context.Context, request Req) (Resp, error)
}

// RequestHandlerFunc is a function adapter for RequestHandler
type RequestHandlerFunc[Req any, Resp any] func(ctx context.Context, request Req) (Resp, error)

// Handle implements RequestHandler
func (f RequestHandlerFunc[Req, Resp]) Handle(ctx context.Context, request Req) (Resp, error) {
	return f(ctx, request)
}

// NotificationHandler handles a broadcast notification of type N.
// Any number of notification handlers may be registered per type.
type NotificationHandler[N any] interface {
	Handle(ctx context.Context, notification N) error
}

// NotificationHandlerFunc is a function adapter for NotificationHandler
type NotificationHandlerFunc[N any] func(ctx context.Context, notification N) error

// Handle implements NotificationHandler
func (f NotificationHandlerFunc[N]) Handle(ctx context.Context, notification N) error {
	return f(ctx, notification)
}

// RequestHandlerEntry is the type-erased form a registered request handler
// is stored and resolved as.
type RequestHandlerEntry func(ctx context.Context, request any) (any, error)

// NotificationHandlerEntry is the type-erased form a registered
// notification handler is stored and resolved as.
type NotificationHandlerEntry func(ctx context.Context, notification any) error

// RequestResolver is the lookup surface the Dispatcher consumes.
type RequestResolver interface {
	// ResolveRequestHandler returns the single handler registered for the
	// request type, if any.
	ResolveRequestHandler(requestType reflect.Type) (RequestHandlerEntry, bool)

	// ResolveBehaviors returns the behaviors applying to the request type,
	// outermost first.
	ResolveBehaviors(requestType reflect.Type) []Behavior
}

// NotificationResolver is the lookup surface the Publisher consumes.
type NotificationResolver interface {
	// ResolveNotificationHandlers returns the handlers registered for the
	// notification type in registration order.
	ResolveNotificationHandlers(notificationType reflect.Type) []NotificationHandlerEntry
}

// Registry is the default in-memory handler registry. Handlers and
// behaviors are keyed by the concrete reflect.Type of the message value
// (pointer and value types are distinct). Registration is expected at
// startup but is safe at any time; resolution takes read locks only.
type Registry struct {
	mu            sync.RWMutex
	requests      map[reflect.Type]RequestHandlerEntry
	notifications map[reflect.Type][]NotificationHandlerEntry
	behaviors     map[reflect.Type][]Behavior
	global        []Behavior
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		requests:      make(map[reflect.Type]RequestHandlerEntry),
		notifications: make(map[reflect.Type][]NotificationHandlerEntry),
		behaviors:     make(map[reflect.Type][]Behavior),
	}
}

// RegisterRequestHandler binds h as the single handler for request type
// Req. A duplicate registration fails with ErrHandlerExists.
func RegisterRequestHandler[Req any, Resp any](r *Registry, h RequestHandler[Req, Resp]) error {
	if h == nil {
		return fmt.Errorf("register request handler: handler cannot be nil")
	}

	t := reflect.TypeOf((*Req)(nil)).Elem()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.requests[t]; exists {
		return fmt.Errorf("register %s: %w", t, contracts.ErrHandlerExists)
	}

	r.requests[t] = func(ctx context.Context, v any) (any, error) {
		request, ok := v.(Req)
		if !ok {
			return nil, fmt.Errorf("dispatch %T as %s: handler type mismatch", v, t)
		}
		return h.Handle(ctx, request)
	}

	return nil
}

// RegisterRequestHandlerFunc registers a function as a request handler
func RegisterRequestHandlerFunc[Req any, Resp any](r *Registry, h RequestHandlerFunc[Req, Resp]) error {
	return RegisterRequestHandler[Req, Resp](r, h)
}

// RegisterNotificationHandler appends h to the handlers for notification
// type N. Registration order is the sequential execution order.
func RegisterNotificationHandler[N any](r *Registry, h NotificationHandler[N]) error {
	if h == nil {
		return fmt.Errorf("register notification handler: handler cannot be nil")
	}

	t := reflect.TypeOf((*N)(nil)).Elem()
	entry := func(ctx context.Context, v any) error {
		notification, ok := v.(N)
		if !ok {
			return fmt.Errorf("publish %T as %s: handler type mismatch", v, t)
		}
		return h.Handle(ctx, notification)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications[t] = append(r.notifications[t], entry)

	return nil
}

// RegisterNotificationHandlerFunc registers a function as a notification handler
func RegisterNotificationHandlerFunc[N any](r *Registry, h NotificationHandlerFunc[N]) error {
	return RegisterNotificationHandler[N](r, h)
}

// RegisterBehaviorFor appends b to the behavior chain for request type Req.
// Per-type behaviors run inside any global behaviors, in registration order.
func RegisterBehaviorFor[Req any](r *Registry, b Behavior) error {
	if b == nil {
		return fmt.Errorf("register behavior: behavior cannot be nil")
	}

	t := reflect.TypeOf((*Req)(nil)).Elem()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.behaviors[t] = append(r.behaviors[t], b)

	return nil
}

// Use appends behaviors that apply to every request type. Global behaviors
// run outermost, ahead of per-type behaviors.
func (r *Registry) Use(behaviors ...Behavior) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.global = append(r.global, behaviors...)
	return r
}

// ResolveRequestHandler implements RequestResolver
func (r *Registry) ResolveRequestHandler(requestType reflect.Type) (RequestHandlerEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.requests[requestType]
	return h, ok
}

// ResolveBehaviors implements RequestResolver
func (r *Registry) ResolveBehaviors(requestType reflect.Type) []Behavior {
	r.mu.RLock()
	defer r.mu.RUnlock()

	typed := r.behaviors[requestType]
	if len(r.global) == 0 && len(typed) == 0 {
		return nil
	}

	out := make([]Behavior, 0, len(r.global)+len(typed))
	out = append(out, r.global...)
	out = append(out, typed...)
	return out
}

// ResolveNotificationHandlers implements NotificationResolver
func (r *Registry) ResolveNotificationHandlers(notificationType reflect.Type) []NotificationHandlerEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handlers := r.notifications[notificationType]
	if len(handlers) == 0 {
		return nil
	}

	out := make([]NotificationHandlerEntry, len(handlers))
	copy(out, handlers)
	return out
}

// RegisteredRequestTypes returns the request types that have a handler
func (r *Registry) RegisteredRequestTypes() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]reflect.Type, 0, len(r.requests))
	for t := range r.requests {
		types = append(types, t)
	}
	return types
}
