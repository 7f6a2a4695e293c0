package mediator

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/glimte/mediate-go/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingRequest struct {
	Message string
}

type otherRequest struct{}

type userCreated struct {
	ID string
}

func TestRegisterRequestHandler(t *testing.T) {
	t.Run("registers and resolves a handler", func(t *testing.T) {
		registry := NewRegistry()

		err := RegisterRequestHandlerFunc(registry, func(ctx context.Context, req pingRequest) (string, error) {
			return "pong: " + req.Message, nil
		})
		require.NoError(t, err)

		handler, ok := registry.ResolveRequestHandler(reflect.TypeOf(pingRequest{}))
		require.True(t, ok)

		response, err := handler(context.Background(), pingRequest{Message: "hi"})
		assert.NoError(t, err)
		assert.Equal(t, "pong: hi", response)
	})

	t.Run("duplicate registration fails with ErrHandlerExists", func(t *testing.T) {
		registry := NewRegistry()
		handler := RequestHandlerFunc[pingRequest, string](func(ctx context.Context, req pingRequest) (string, error) {
			return "", nil
		})

		require.NoError(t, RegisterRequestHandler[pingRequest, string](registry, handler))
		err := RegisterRequestHandler[pingRequest, string](registry, handler)

		assert.ErrorIs(t, err, contracts.ErrHandlerExists)
	})

	t.Run("nil handler is rejected", func(t *testing.T) {
		registry := NewRegistry()

		err := RegisterRequestHandler[pingRequest, string](registry, nil)

		assert.Error(t, err)
	})

	t.Run("pointer and value request types are distinct", func(t *testing.T) {
		registry := NewRegistry()

		require.NoError(t, RegisterRequestHandlerFunc(registry, func(ctx context.Context, req pingRequest) (string, error) {
			return "value", nil
		}))
		require.NoError(t, RegisterRequestHandlerFunc(registry, func(ctx context.Context, req *pingRequest) (string, error) {
			return "pointer", nil
		}))

		_, ok := registry.ResolveRequestHandler(reflect.TypeOf(pingRequest{}))
		assert.True(t, ok)
		_, ok = registry.ResolveRequestHandler(reflect.TypeOf(&pingRequest{}))
		assert.True(t, ok)
	})

	t.Run("unregistered type does not resolve", func(t *testing.T) {
		registry := NewRegistry()

		_, ok := registry.ResolveRequestHandler(reflect.TypeOf(otherRequest{}))

		assert.False(t, ok)
	})
}

func TestRegisterNotificationHandler(t *testing.T) {
	t.Run("multiple handlers resolve in registration order", func(t *testing.T) {
		registry := NewRegistry()
		var calls []string

		for _, name := range []string{"H1", "H2", "H3"} {
			name := name
			err := RegisterNotificationHandlerFunc(registry, func(ctx context.Context, n userCreated) error {
				calls = append(calls, name)
				return nil
			})
			require.NoError(t, err)
		}

		handlers := registry.ResolveNotificationHandlers(reflect.TypeOf(userCreated{}))
		require.Len(t, handlers, 3)

		for _, h := range handlers {
			require.NoError(t, h(context.Background(), userCreated{ID: "1"}))
		}
		assert.Equal(t, []string{"H1", "H2", "H3"}, calls)
	})

	t.Run("nil handler is rejected", func(t *testing.T) {
		registry := NewRegistry()

		err := RegisterNotificationHandler[userCreated](registry, nil)

		assert.Error(t, err)
	})

	t.Run("type with no handlers resolves empty", func(t *testing.T) {
		registry := NewRegistry()

		handlers := registry.ResolveNotificationHandlers(reflect.TypeOf(userCreated{}))

		assert.Empty(t, handlers)
	})

	t.Run("resolved slice is a snapshot", func(t *testing.T) {
		registry := NewRegistry()
		require.NoError(t, RegisterNotificationHandlerFunc(registry, func(ctx context.Context, n userCreated) error {
			return nil
		}))

		handlers := registry.ResolveNotificationHandlers(reflect.TypeOf(userCreated{}))
		handlers[0] = func(ctx context.Context, notification any) error {
			return errors.New("mutated")
		}

		fresh := registry.ResolveNotificationHandlers(reflect.TypeOf(userCreated{}))
		assert.NoError(t, fresh[0](context.Background(), userCreated{}))
	})
}

func TestRegisterBehaviors(t *testing.T) {
	t.Run("global behaviors run ahead of per-type behaviors", func(t *testing.T) {
		registry := NewRegistry()
		global := NewBehaviorFunc("Global", func(ctx context.Context, request any, next Next) (any, error) {
			return next(ctx)
		})
		typed := NewBehaviorFunc("Typed", func(ctx context.Context, request any, next Next) (any, error) {
			return next(ctx)
		})

		registry.Use(global)
		require.NoError(t, RegisterBehaviorFor[pingRequest](registry, typed))

		behaviors := registry.ResolveBehaviors(reflect.TypeOf(pingRequest{}))
		require.Len(t, behaviors, 2)
		assert.Equal(t, "Global", behaviors[0].Name())
		assert.Equal(t, "Typed", behaviors[1].Name())
	})

	t.Run("per-type behaviors do not leak to other types", func(t *testing.T) {
		registry := NewRegistry()
		typed := NewBehaviorFunc("Typed", func(ctx context.Context, request any, next Next) (any, error) {
			return next(ctx)
		})

		require.NoError(t, RegisterBehaviorFor[pingRequest](registry, typed))

		assert.Empty(t, registry.ResolveBehaviors(reflect.TypeOf(otherRequest{})))
	})

	t.Run("nil behavior is rejected", func(t *testing.T) {
		registry := NewRegistry()

		err := RegisterBehaviorFor[pingRequest](registry, nil)

		assert.Error(t, err)
	})
}

func TestRegisteredRequestTypes(t *testing.T) {
	t.Run("lists types with handlers", func(t *testing.T) {
		registry := NewRegistry()
		require.NoError(t, RegisterRequestHandlerFunc(registry, func(ctx context.Context, req pingRequest) (string, error) {
			return "", nil
		}))

		types := registry.RegisteredRequestTypes()

		require.Len(t, types, 1)
		assert.Equal(t, reflect.TypeOf(pingRequest{}), types[0])
	})
}
