// Package contracts provides the message contracts and error taxonomy for the mediate framework.
//
// This package defines:
//   - Message: optional identity interface for values dispatched through the mediator
//   - BaseMessage / BaseNotification: embeddable base types with generated IDs
//   - Sentinel errors shared by the dispatch and publish paths
//   - AggregateError: ordered composite of notification handler failures
//
// The mediator itself dispatches plain Go values; embedding BaseMessage is a
// convenience for correlation and logging, never a requirement.
package contracts
