// Package notifier implements the notification channels rewards are announced
// on: Resend for email, Twilio for WhatsApp, with an ordered fallback across
// the two.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"loyallink/config"
	"loyallink/internal/domain/service"
)

const defaultResendBaseURL = "https://api.resend.com"

// resendEmailRequest is the payload of Resend's POST /emails endpoint.
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

type resendNotifier struct {
	client  *http.Client
	apiKey  string
	baseURL string
	from    string
}

// NewResendNotifier returns an email Notifier backed by the Resend HTTP API.
func NewResendNotifier(cfg *config.ResendConfig) service.Notifier {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultResendBaseURL
	}

	from := cfg.FromAddress
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress)
	}

	return &resendNotifier{
		client:  &http.Client{Timeout: 10 * time.Second},
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		from:    from,
	}
}

func (n *resendNotifier) Channel() service.Channel {
	return service.ChannelEmail
}

func (n *resendNotifier) Send(ctx context.Context, msg service.Message) error {
	if msg.ToEmail == "" {
		return errors.New("message has no email recipient")
	}

	payload, err := json.Marshal(resendEmailRequest{
		From:    n.from,
		To:      []string{msg.ToEmail},
		Subject: msg.Subject,
		Text:    msg.Body,
	})
	if err != nil {
		return errors.Wrap(err, "marshal resend payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "build resend request")
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "call resend API")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return errors.Errorf("resend API returned %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
