package notifier

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"loyallink/config"
	"loyallink/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResendNotifier_Send(t *testing.T) {
	var captured resendEmailRequest
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/emails", r.URL.Path)
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"email_123"}`))
	}))
	defer server.Close()

	n := NewResendNotifier(&config.ResendConfig{
		APIKey:      "re_test_key",
		BaseURL:     server.URL,
		FromAddress: "rewards@loyallink.app",
		FromName:    "LoyalLink",
	})

	err := n.Send(context.Background(), service.Message{
		ToEmail: "alice@example.com",
		Subject: "Your reward is ready",
		Body:    "Show code 123456 at the counter.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer re_test_key", authHeader)
	assert.Equal(t, "LoyalLink <rewards@loyallink.app>", captured.From)
	assert.Equal(t, []string{"alice@example.com"}, captured.To)
	assert.Equal(t, "Your reward is ready", captured.Subject)
	assert.Contains(t, captured.Text, "123456")
}

func TestResendNotifier_Send_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"Invalid from address"}`))
	}))
	defer server.Close()

	n := NewResendNotifier(&config.ResendConfig{APIKey: "re_test_key", BaseURL: server.URL})

	err := n.Send(context.Background(), service.Message{ToEmail: "alice@example.com"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestResendNotifier_Send_MissingRecipient(t *testing.T) {
	n := NewResendNotifier(&config.ResendConfig{APIKey: "re_test_key"})

	err := n.Send(context.Background(), service.Message{ToPhone: "+15551234567"})
	assert.Error(t, err)
}

func TestTwilioNotifier_Send(t *testing.T) {
	var form url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "secret", pass)

		require.NoError(t, r.ParseForm())
		form = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM123","status":"queued"}`))
	}))
	defer server.Close()

	n := NewTwilioNotifier(&config.TwilioConfig{
		AccountSID: "AC123",
		AuthToken:  "secret",
		BaseURL:    server.URL,
		FromNumber: "+15550000000",
	})

	err := n.Send(context.Background(), service.Message{
		ToPhone: "+15551234567",
		Body:    "Show code 654321 at the counter.",
	})
	require.NoError(t, err)

	assert.Equal(t, "whatsapp:+15551234567", form.Get("To"))
	assert.Equal(t, "whatsapp:+15550000000", form.Get("From"))
	assert.Contains(t, form.Get("Body"), "654321")
}

func TestTwilioNotifier_Send_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":21211,"message":"Invalid 'To' Phone Number"}`))
	}))
	defer server.Close()

	n := NewTwilioNotifier(&config.TwilioConfig{AccountSID: "AC123", AuthToken: "secret", BaseURL: server.URL})

	err := n.Send(context.Background(), service.Message{ToPhone: "not-a-number"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

// stubNotifier records sends for fallback-order assertions.
type stubNotifier struct {
	channel service.Channel
	err     error
	sent    int
}

func (s *stubNotifier) Channel() service.Channel { return s.channel }

func (s *stubNotifier) Send(context.Context, service.Message) error {
	s.sent++

	return s.err
}

func TestFallbackNotifier_FirstChannelWins(t *testing.T) {
	email := &stubNotifier{channel: service.ChannelEmail}
	whatsapp := &stubNotifier{channel: service.ChannelWhatsApp}

	n := NewFallbackNotifier(PolicyEmailFirst, discardLogger(), email, whatsapp)

	err := n.Send(context.Background(), service.Message{
		ToEmail: "alice@example.com",
		ToPhone: "+15551234567",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, email.sent)
	assert.Equal(t, 0, whatsapp.sent)
}

func TestFallbackNotifier_FallsThroughOnFailure(t *testing.T) {
	email := &stubNotifier{channel: service.ChannelEmail, err: errors.New("provider down")}
	whatsapp := &stubNotifier{channel: service.ChannelWhatsApp}

	n := NewFallbackNotifier(PolicyEmailFirst, discardLogger(), email, whatsapp)

	err := n.Send(context.Background(), service.Message{
		ToEmail: "alice@example.com",
		ToPhone: "+15551234567",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, email.sent)
	assert.Equal(t, 1, whatsapp.sent)
}

func TestFallbackNotifier_SkipsChannelWithoutRecipient(t *testing.T) {
	email := &stubNotifier{channel: service.ChannelEmail}
	whatsapp := &stubNotifier{channel: service.ChannelWhatsApp}

	n := NewFallbackNotifier(PolicyEmailFirst, discardLogger(), email, whatsapp)

	err := n.Send(context.Background(), service.Message{ToPhone: "+15551234567"})
	require.NoError(t, err)

	assert.Equal(t, 0, email.sent)
	assert.Equal(t, 1, whatsapp.sent)
}

func TestFallbackNotifier_AllChannelsFail(t *testing.T) {
	email := &stubNotifier{channel: service.ChannelEmail, err: errors.New("email down")}
	whatsapp := &stubNotifier{channel: service.ChannelWhatsApp, err: errors.New("whatsapp down")}

	n := NewFallbackNotifier(PolicyEmailFirst, discardLogger(), email, whatsapp)

	err := n.Send(context.Background(), service.Message{
		ToEmail: "alice@example.com",
		ToPhone: "+15551234567",
	})
	assert.Error(t, err)
}

func TestFallbackNotifier_NoContactInformation(t *testing.T) {
	email := &stubNotifier{channel: service.ChannelEmail}

	n := NewFallbackNotifier(PolicyEmailFirst, discardLogger(), email)

	// A customer without contact details is not an error; the delivery is dropped.
	err := n.Send(context.Background(), service.Message{Subject: "reward"})
	require.NoError(t, err)
	assert.Equal(t, 0, email.sent)
}

func TestNewNotifier_NoProvidersUsesNoop(t *testing.T) {
	n := NewNotifier(Params{
		Config: &config.Config{},
		Logger: discardLogger(),
	})
	require.NotNil(t, n)

	assert.NoError(t, n.Send(context.Background(), service.Message{ToEmail: "alice@example.com"}))
}

func TestNewNotifier_PolicySelection(t *testing.T) {
	cfg := &config.Config{
		Notifier: &config.NotifierConfig{
			Policy: "whatsapp-first",
			Resend: &config.ResendConfig{APIKey: "re_test_key"},
			Twilio: &config.TwilioConfig{AccountSID: "AC123", AuthToken: "secret"},
		},
	}

	n := NewNotifier(Params{Config: cfg, Logger: discardLogger()})
	assert.Equal(t, service.Channel(PolicyWhatsAppFirst), n.Channel())
}
