// Package mediator implements in-process request/response dispatch and
// notification fan-out.
//
// Two message patterns are supported:
//   - Requests: dispatched to exactly one handler through a composable
//     behavior chain (Dispatcher, Send)
//   - Notifications: broadcast to zero or more independent handlers with
//     configurable execution strategy and exception policy (Publisher)
//
// Handlers and behaviors are held by a Registry keyed by concrete message
// type; the Dispatcher and Publisher consume only its resolver interfaces.
// Cancellation is cooperative: timeouts and caller cancellation propagate
// through context.Context, and the core always waits for handlers that
// ignore the signal.
//
// Example usage:
//
//	registry := mediator.NewRegistry()
//	mediator.RegisterRequestHandler[PingRequest, string](registry, pingHandler)
//	mediator.RegisterNotificationHandler[UserCreated](registry, auditHandler)
//
//	dispatcher := mediator.NewDispatcher(registry,
//		mediator.WithRequestTimeout(5*time.Second),
//	)
//	pong, err := mediator.Send[string](ctx, dispatcher, PingRequest{})
//
//	publisher := mediator.NewPublisher(registry,
//		mediator.WithStrategy(mediator.Sequential),
//		mediator.WithExceptionPolicy(mediator.AggregateExceptions),
//	)
//	err = publisher.Publish(ctx, UserCreated{ID: "42"})
package mediator
