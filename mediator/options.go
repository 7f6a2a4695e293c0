package mediator

import "time"

// NotificationStrategy selects how notification handlers are executed.
type NotificationStrategy int

const (
	// Parallel launches every handler concurrently and joins before
	// reporting the outcome. This is the default.
	Parallel NotificationStrategy = iota

	// Sequential runs handlers one at a time in registration order; each
	// must finish before the next starts.
	Sequential
)

// String implements fmt.Stringer
func (s NotificationStrategy) String() string {
	switch s {
	case Parallel:
		return "Parallel"
	case Sequential:
		return "Sequential"
	default:
		return "Unknown"
	}
}

// ExceptionPolicy selects how notification handler failures are surfaced.
type ExceptionPolicy int

const (
	// ContinueOnException runs every handler regardless of failures and
	// returns the first recorded failure. This is the default.
	ContinueOnException ExceptionPolicy = iota

	// StopOnFirstException stops dispatching new handlers once a failure
	// is observed and returns that failure. Already-running handlers are
	// never cancelled.
	StopOnFirstException

	// AggregateExceptions runs every handler and returns all failures as
	// one *contracts.AggregateError, encounter order preserved.
	AggregateExceptions

	// SuppressExceptions runs every handler and discards all failures.
	SuppressExceptions
)

// String implements fmt.Stringer
func (p ExceptionPolicy) String() string {
	switch p {
	case ContinueOnException:
		return "ContinueOnException"
	case StopOnFirstException:
		return "StopOnFirstException"
	case AggregateExceptions:
		return "AggregateExceptions"
	case SuppressExceptions:
		return "SuppressExceptions"
	default:
		return "Unknown"
	}
}

// MissingHandlerPolicy selects what Send does when no handler is registered
// for a request type.
type MissingHandlerPolicy int

const (
	// MissingHandlerError fails the dispatch with ErrHandlerNotFound.
	// This is the default.
	MissingHandlerError MissingHandlerPolicy = iota

	// MissingHandlerDefaultValue returns the response type's zero value
	// without error.
	MissingHandlerDefaultValue
)

// String implements fmt.Stringer
func (p MissingHandlerPolicy) String() string {
	switch p {
	case MissingHandlerError:
		return "Error"
	case MissingHandlerDefaultValue:
		return "DefaultValue"
	default:
		return "Unknown"
	}
}

// SlowRequestCallback is invoked when an instrumented dispatch exceeds the
// configured threshold. It receives the request type name and the elapsed
// wall-clock duration of the full chain.
type SlowRequestCallback func(requestType string, elapsed time.Duration)

// DispatcherOption configures a Dispatcher
type DispatcherOption func(*Dispatcher)

// WithRequestTimeout derives a deadline for every dispatch. The signal is
// combined with the caller's context and propagated cooperatively; it never
// aborts a handler that ignores it.
func WithRequestTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.timeout = timeout
	}
}

// WithMissingHandlerPolicy sets the missing-handler policy
func WithMissingHandlerPolicy(policy MissingHandlerPolicy) DispatcherOption {
	return func(d *Dispatcher) {
		d.missingHandler = policy
	}
}

// WithSlowRequestCallback enables wall-clock instrumentation around the
// full chain. Dispatches slower than threshold invoke fn; fn can neither
// fail the dispatch nor alter its result.
func WithSlowRequestCallback(threshold time.Duration, fn SlowRequestCallback) DispatcherOption {
	return func(d *Dispatcher) {
		d.slowThreshold = threshold
		d.onSlowRequest = fn
	}
}

// PublisherOption configures a Publisher
type PublisherOption func(*Publisher)

// WithStrategy sets the notification execution strategy
func WithStrategy(strategy NotificationStrategy) PublisherOption {
	return func(p *Publisher) {
		p.strategy = strategy
	}
}

// WithExceptionPolicy sets the notification exception policy
func WithExceptionPolicy(policy ExceptionPolicy) PublisherOption {
	return func(p *Publisher) {
		p.policy = policy
	}
}

// WithMaxConcurrentHandlers bounds parallel handler execution with a
// counting permit pool. Zero or negative means unbounded. Ignored under
// the Sequential strategy.
func WithMaxConcurrentHandlers(n int) PublisherOption {
	return func(p *Publisher) {
		p.maxConcurrent = n
	}
}
