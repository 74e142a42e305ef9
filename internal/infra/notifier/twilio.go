package notifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"loyallink/config"
	"loyallink/internal/domain/service"
)

const defaultTwilioBaseURL = "https://api.twilio.com"

type twilioNotifier struct {
	client     *http.Client
	accountSID string
	authToken  string
	baseURL    string
	fromNumber string
}

// NewTwilioNotifier returns a WhatsApp Notifier backed by the Twilio Messages API.
func NewTwilioNotifier(cfg *config.TwilioConfig) service.Notifier {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultTwilioBaseURL
	}

	return &twilioNotifier{
		client:     &http.Client{Timeout: 10 * time.Second},
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		baseURL:    baseURL,
		fromNumber: cfg.FromNumber,
	}
}

func (n *twilioNotifier) Channel() service.Channel {
	return service.ChannelWhatsApp
}

func (n *twilioNotifier) Send(ctx context.Context, msg service.Message) error {
	if msg.ToPhone == "" {
		return errors.New("message has no phone recipient")
	}

	form := url.Values{}
	form.Set("To", whatsappAddress(msg.ToPhone))
	form.Set("From", whatsappAddress(n.fromNumber))
	form.Set("Body", msg.Body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", n.baseURL, n.accountSID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "build twilio request")
	}
	req.SetBasicAuth(n.accountSID, n.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "call twilio API")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return errors.Errorf("twilio API returned %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// whatsappAddress prefixes a number with the whatsapp: scheme Twilio expects,
// leaving already-prefixed numbers untouched.
func whatsappAddress(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}

	return "whatsapp:" + number
}
