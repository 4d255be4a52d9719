package service

import "context"

// Content event kinds published after successful admin mutations.
const (
	ContentEventSaved   = "portfolio.saved"
	ContentEventPatched = "portfolio.patched"
)

// ContentEvent describes one committed change to the portfolio document.
type ContentEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Kind      string `json:"kind"`
	Field     string `json:"field,omitempty"` // Set for field-level patches
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishContentEvent publishes a content change event for async consumers.
	PublishContentEvent(ctx context.Context, event *ContentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
