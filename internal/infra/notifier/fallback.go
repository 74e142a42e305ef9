package notifier

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"loyallink/internal/domain/service"
)

// Policy names the channel order the fallback notifier walks through.
type Policy string

const (
	// PolicyEmailFirst tries email, then WhatsApp. The default.
	PolicyEmailFirst Policy = "email-first"

	// PolicyWhatsAppFirst tries WhatsApp, then email.
	PolicyWhatsAppFirst Policy = "whatsapp-first"
)

// fallbackNotifier walks an ordered list of channel notifiers. The first
// channel whose recipient field is present gets a delivery attempt; a failed
// attempt falls through to the next channel instead of failing the message.
type fallbackNotifier struct {
	policy    Policy
	notifiers []service.Notifier
	logger    *slog.Logger
}

// NewFallbackNotifier composes channel notifiers under the named policy.
func NewFallbackNotifier(policy Policy, logger *slog.Logger, notifiers ...service.Notifier) service.Notifier {
	return &fallbackNotifier{
		policy:    policy,
		notifiers: notifiers,
		logger:    logger,
	}
}

func (f *fallbackNotifier) Channel() service.Channel {
	return service.Channel(f.policy)
}

// Send attempts delivery on each channel in policy order. A message whose
// recipient has no contact information on any channel is dropped without error.
func (f *fallbackNotifier) Send(ctx context.Context, msg service.Message) error {
	var lastErr error
	attempted := 0

	for _, n := range f.notifiers {
		if !hasRecipient(n.Channel(), msg) {
			continue
		}
		attempted++

		if err := n.Send(ctx, msg); err != nil {
			f.logger.Warn("notification channel failed, falling back",
				"channel", n.Channel(),
				"error", err,
			)
			lastErr = err

			continue
		}

		return nil
	}

	if attempted == 0 {
		f.logger.Debug("recipient has no contact information, notification dropped")

		return nil
	}

	return errors.Wrapf(lastErr, "all %d notification channels failed", attempted)
}

func hasRecipient(channel service.Channel, msg service.Message) bool {
	switch channel {
	case service.ChannelEmail:
		return msg.ToEmail != ""
	case service.ChannelWhatsApp:
		return msg.ToPhone != ""
	default:
		return true
	}
}
