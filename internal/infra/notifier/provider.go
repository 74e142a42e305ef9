package notifier

import (
	"log/slog"

	"go.uber.org/fx"

	"loyallink/config"
	"loyallink/internal/domain/service"
)

// Params holds dependencies for the Notifier, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier builds the composite Notifier from configuration. Only channels
// with a configured provider participate in the fallback order; with no
// provider configured at all, deliveries are logged and dropped.
func NewNotifier(params Params) service.Notifier {
	cfg := params.Config.Notifier
	logger := params.Logger

	if cfg == nil {
		logger.Info("Notifier not configured, using no-op notifier")

		return NewNoopNotifier(service.ChannelEmail, logger)
	}

	var email, whatsapp service.Notifier
	if cfg.Resend != nil && cfg.Resend.APIKey != "" {
		email = NewResendNotifier(cfg.Resend)
	}
	if cfg.Twilio != nil && cfg.Twilio.AccountSID != "" {
		whatsapp = NewTwilioNotifier(cfg.Twilio)
	}

	if email == nil && whatsapp == nil {
		logger.Info("No notification providers configured, using no-op notifier")

		return NewNoopNotifier(service.ChannelEmail, logger)
	}

	policy := Policy(cfg.Policy)
	if policy != PolicyWhatsAppFirst {
		policy = PolicyEmailFirst
	}

	var ordered []service.Notifier
	switch policy {
	case PolicyWhatsAppFirst:
		ordered = appendConfigured(ordered, whatsapp, email)
	default:
		ordered = appendConfigured(ordered, email, whatsapp)
	}

	logger.Info("Notifier configured",
		slog.String("policy", string(policy)),
		slog.Int("channels", len(ordered)),
	)

	return NewFallbackNotifier(policy, logger, ordered...)
}

func appendConfigured(dst []service.Notifier, notifiers ...service.Notifier) []service.Notifier {
	for _, n := range notifiers {
		if n != nil {
			dst = append(dst, n)
		}
	}

	return dst
}

// Module provides the notifier FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)
