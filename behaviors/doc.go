// Package behaviors provides built-in behaviors for the request chain.
//
// Behaviors add cross-cutting concerns around request handling without
// touching handler code:
//   - LoggingBehavior: logs request processing with timing information
//   - MetricsBehavior: collects request counts, durations, and error counts
//   - ValidationBehavior: rejects invalid requests before the handler runs
//   - RetryBehavior: re-runs the inner chain on failure per a retry policy
//
// Register behaviors globally with Registry.Use, or per request type with
// mediator.RegisterBehaviorFor. The first registered behavior runs
// outermost.
package behaviors
