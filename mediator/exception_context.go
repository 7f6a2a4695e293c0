package mediator

import "sync"

// ExceptionContext accumulates handler failures observed while publishing a
// single notification. Safe for concurrent use by parallel handlers;
// insertion order is preserved and the first failure is available without
// re-scanning.
type ExceptionContext struct {
	mu   sync.Mutex
	errs []error
}

// NewExceptionContext creates an empty accumulator
func NewExceptionContext() *ExceptionContext {
	return &ExceptionContext{}
}

// Add records err. Nil errors are ignored.
func (c *ExceptionContext) Add(err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	c.errs = append(c.errs, err)
	c.mu.Unlock()
}

// HasAny reports whether any error has been recorded
func (c *ExceptionContext) HasAny() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errs) > 0
}

// First returns the earliest recorded error, or nil
func (c *ExceptionContext) First() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs[0]
}

// All returns a snapshot of the recorded errors in insertion order
func (c *ExceptionContext) All() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.errs) == 0 {
		return nil
	}
	out := make([]error, len(c.errs))
	copy(out, c.errs)
	return out
}
