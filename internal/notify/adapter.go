// Package notify delivers progress digests to chat platforms (Slack,
// Discord). Delivery is outbound-only: Farol reports, it never listens.
package notify

import "context"

// Adapter is the interface that platform-specific notifiers must satisfy.
type Adapter interface {
	// Send delivers a message to the platform.
	Send(ctx context.Context, msg Message) error

	// Close releases the adapter's connection, if any.
	Close() error
}

// Message is an outbound digest message.
type Message struct {
	Title string
	Body  string
	Color string // sidebar color hint (e.g. "#36a64f")
}
