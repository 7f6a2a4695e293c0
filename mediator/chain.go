package mediator

import "context"

// Next represents the remainder of the behavior chain from the current
// behavior's position: every inner behavior followed by the handler itself.
// A behavior may invoke it zero times (short-circuit: the handler never
// runs), exactly once (normal flow), or multiple times (retry).
type Next func(ctx context.Context) (any, error)

// Behavior processes a request before it reaches the handler. Behaviors
// wrap each other in registration order: the first registered behavior runs
// outermost, and results flow back through them in reverse.
type Behavior interface {
	// Handle processes the request and decides whether, and how often,
	// to invoke the rest of the chain.
	Handle(ctx context.Context, request any, next Next) (any, error)

	// Name returns the behavior name for logging and debugging
	Name() string
}

// BehaviorFunc is a function adapter for Behavior
type BehaviorFunc struct {
	name string
	fn   func(ctx context.Context, request any, next Next) (any, error)
}

// NewBehaviorFunc creates a new function-based behavior
func NewBehaviorFunc(name string, fn func(ctx context.Context, request any, next Next) (any, error)) *BehaviorFunc {
	return &BehaviorFunc{name: name, fn: fn}
}

// Handle implements Behavior
func (b *BehaviorFunc) Handle(ctx context.Context, request any, next Next) (any, error) {
	return b.fn(ctx, request, next)
}

// Name implements Behavior
func (b *BehaviorFunc) Name() string {
	return b.name
}

// buildChain nests behaviors around the terminal handler invocation.
// The chain is built back-to-front so that behaviors[0] ends up outermost.
func buildChain(behaviors []Behavior, request any, terminal Next) Next {
	next := terminal
	for i := len(behaviors) - 1; i >= 0; i-- {
		behavior := behaviors[i]
		inner := next
		next = func(ctx context.Context) (any, error) {
			return behavior.Handle(ctx, request, inner)
		}
	}
	return next
}
