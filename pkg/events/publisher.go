package events

import (
	"context"
)

// Publisher defines the interface for publishing domain events
type Publisher interface {
	// Publish publishes an event to the exchange the publisher is bound to
	Publish(ctx context.Context, event *Event, headers Headers) error

	// Close closes the publisher connection
	Close() error
}
