package notifier

import (
	"context"
	"log/slog"

	"loyallink/internal/domain/service"
)

type noopNotifier struct {
	channel service.Channel
	logger  *slog.Logger
}

// NewNoopNotifier returns a Notifier that logs instead of delivering. Used
// when a channel's provider is not configured.
func NewNoopNotifier(channel service.Channel, logger *slog.Logger) service.Notifier {
	return &noopNotifier{channel: channel, logger: logger}
}

func (n *noopNotifier) Channel() service.Channel {
	return n.channel
}

func (n *noopNotifier) Send(_ context.Context, msg service.Message) error {
	n.logger.Info("notification skipped, channel not configured",
		"channel", n.channel,
		"subject", msg.Subject,
	)

	return nil
}
