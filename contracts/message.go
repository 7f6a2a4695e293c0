package contracts

import (
	"time"

	"github.com/google/uuid"
)

// Message is the optional identity contract for mediator messages.
// The mediator dispatches plain values and never requires this interface;
// implementing it gives behaviors and callers stable IDs and correlation.
type Message interface {
	GetID() string
	GetType() string
	GetTimestamp() time.Time
	GetCorrelationID() string
}

// BaseMessage provides common fields for request and notification types
type BaseMessage struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Type          string    `json:"type"`
	CorrelationID string    `json:"correlationId,omitempty"`
}

// NewBaseMessage creates a new base message with generated ID and current timestamp
func NewBaseMessage(messageType string) BaseMessage {
	return BaseMessage{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Type:      messageType,
	}
}

// GetID returns the message ID
func (m BaseMessage) GetID() string {
	return m.ID
}

// GetTimestamp returns the message timestamp
func (m BaseMessage) GetTimestamp() time.Time {
	return m.Timestamp
}

// GetType returns the message type
func (m BaseMessage) GetType() string {
	return m.Type
}

// GetCorrelationID returns the correlation ID
func (m BaseMessage) GetCorrelationID() string {
	return m.CorrelationID
}

// SetCorrelationID sets the correlation ID
func (m *BaseMessage) SetCorrelationID(correlationID string) {
	m.CorrelationID = correlationID
}

// BaseNotification provides common fields for broadcast notifications.
// Notifications carry no reply expectation; Source identifies the emitter.
type BaseNotification struct {
	BaseMessage
	Source string `json:"source,omitempty"`
}

// NewBaseNotification creates a new notification with generated ID and current timestamp
func NewBaseNotification(messageType string) BaseNotification {
	return BaseNotification{
		BaseMessage: NewBaseMessage(messageType),
	}
}

// GetSource returns the notification source
func (n BaseNotification) GetSource() string {
	return n.Source
}
