package service

import "context"

// Channel identifies a delivery medium for customer notifications.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
)

// Message is a channel-agnostic notification. Each channel picks the
// recipient field it understands and ignores the rest.
type Message struct {
	ToEmail string
	ToPhone string
	Subject string
	Body    string
}

// Notifier delivers a message over a single channel. Composite
// implementations may chain several channels with a fallback order.
type Notifier interface {
	// Channel reports which medium this notifier delivers on.
	Channel() Channel

	// Send delivers the message. Implementations return an error when the
	// provider rejects the message or the recipient field for this channel
	// is empty.
	Send(ctx context.Context, msg Message) error
}
