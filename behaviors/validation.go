package behaviors

import (
	"context"
	"fmt"

	"github.com/glimte/mediate-go/mediator"
)

// Validator defines the interface for request validation
type Validator interface {
	Validate(ctx context.Context, request any) error
}

// ValidatorFunc is a function adapter for Validator
type ValidatorFunc func(ctx context.Context, request any) error

// Validate implements Validator
func (f ValidatorFunc) Validate(ctx context.Context, request any) error {
	return f(ctx, request)
}

// ValidationBehavior validates requests before they reach the handler.
// An invalid request short-circuits the chain: the handler never runs.
type ValidationBehavior struct {
	validator Validator
}

// NewValidationBehavior creates a new validation behavior
func NewValidationBehavior(validator Validator) *ValidationBehavior {
	return &ValidationBehavior{validator: validator}
}

// Handle implements mediator.Behavior
func (b *ValidationBehavior) Handle(ctx context.Context, request any, next mediator.Next) (any, error) {
	if err := b.validator.Validate(ctx, request); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return next(ctx)
}

// Name implements mediator.Behavior
func (b *ValidationBehavior) Name() string {
	return "ValidationBehavior"
}
