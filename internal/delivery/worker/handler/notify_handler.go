package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"loyallink/config"
	deliverycontext "loyallink/internal/delivery/context"
	"loyallink/internal/domain/constants"
	"loyallink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// NotifyHandler handles Pub/Sub push messages carrying reward events and
// turns them into customer notifications.
type NotifyHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	notifier       service.Notifier
}

// NotifyHandlerParams holds dependencies for the NotifyHandler
type NotifyHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Notifier service.Notifier
}

// NewNotifyHandler creates a new Pub/Sub push handler
func NewNotifyHandler(params NotifyHandlerParams) *NotifyHandler {
	// Google push requests carry an OIDC token; local delivery does not.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &NotifyHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		notifier:       params.Notifier,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *NotifyHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.RewardEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse reward event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Carry the publisher's request_id through for distributed tracing.
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing reward event",
		slog.String("type", event.Type),
		slog.String("reward_id", event.RewardID.String()),
		slog.String("business_id", event.BusinessID.String()),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process reward event",
			slog.String("reward_id", event.RewardID.String()),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 triggers a Pub/Sub redelivery; 200 acks events that would
		// fail identically on every retry.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Reward event processed",
		slog.String("reward_id", event.RewardID.String()),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *NotifyHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.RewardEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEvent composes the notification for the event type and delivers it.
func (h *NotifyHandler) processEvent(ctx context.Context, event *service.RewardEvent) error {
	msg, err := composeMessage(event)
	if err != nil {
		// Unknown event types are acked, not retried.
		return err
	}

	if err := h.notifier.Send(ctx, msg); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// composeMessage builds the customer-facing notification for a reward event.
func composeMessage(event *service.RewardEvent) (service.Message, error) {
	msg := service.Message{
		ToEmail: event.CustomerEmail,
		ToPhone: event.CustomerPhone,
	}

	name := event.CustomerName
	if name == "" {
		name = "there"
	}

	switch event.Type {
	case constants.EventRewardIssued:
		msg.Subject = fmt.Sprintf("You earned a reward at %s!", event.BusinessName)
		msg.Body = fmt.Sprintf(
			"Hi %s, you earned %q at %s. Show claim code %s at the counter to redeem it.",
			name, event.RewardTitle, event.BusinessName, event.ClaimCode,
		)
	case constants.EventRewardClaimed:
		msg.Subject = fmt.Sprintf("Reward redeemed at %s", event.BusinessName)
		msg.Body = fmt.Sprintf(
			"Hi %s, your reward %q at %s has been redeemed. Your visit count starts fresh - see you soon!",
			name, event.RewardTitle, event.BusinessName,
		)
	default:
		return service.Message{}, errors.Errorf("unknown reward event type: %s", event.Type)
	}

	return msg, nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this push endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
