// Package sender provides the ability to send messages with embeds to Discord webhooks.
package sender

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/bwmarrin/discordgo"

	"github.com/ErikKalkoken/embedkit/internal/embed"
)

var ErrInvalidWebhookURL = errors.New("invalid webhook URL")

var webhookURLPattern = regexp.MustCompile(
	`^https://(?:(?:ptb|canary)\.)?discord(?:app)?\.com/api(?:/v\d+)?/webhooks/(\d+)/([\w-]+)/?$`,
)

// HTTPError represents a HTTP error returned by Discord, e.g. 400 Bad Request
type HTTPError struct {
	Status  int
	Message string
}

func (e HTTPError) Error() string {
	return fmt.Sprintf("discord responded with %d: %s", e.Status, e.Message)
}

// ParseWebhookURL returns the ID and token of a Discord webhook URL.
func ParseWebhookURL(rawURL string) (id string, token string, err error) {
	m := webhookURLPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", "", fmt.Errorf("%s: %w", rawURL, ErrInvalidWebhookURL)
	}
	return m[1], m[2], nil
}

// Sender sends messages to Discord webhooks.
//
// Rate limits are respected by waiting for a free slot.
type Sender struct {
	session *discordgo.Session
}

// New returns a new sender. All requests use the provided HTTP client.
func New(httpClient *http.Client) (*Sender, error) {
	s, err := discordgo.New("")
	if err != nil {
		return nil, err
	}
	if httpClient != nil {
		s.Client = httpClient
	}
	s.MaxRestRetries = 1
	return &Sender{session: s}, nil
}

// Send validates a message and posts it to a webhook.
// Returns the ID of the created message.
//
// HTTP status codes of 400 or above are returned as [HTTPError].
func (s *Sender) Send(ctx context.Context, webhookURL string, m embed.Message) (string, error) {
	id, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return "", err
	}
	if err := m.Validate(); err != nil {
		return "", err
	}
	slog.Debug("executing webhook", "id", id, "embeds", len(m.Embeds))
	msg, err := s.session.WebhookExecute(id, token, true, m.ToWebhookParams(), discordgo.WithContext(ctx))
	if err != nil {
		var restErr *discordgo.RESTError
		if errors.As(err, &restErr) && restErr.Response != nil {
			slog.Warn("webhook request failed", "id", id, "status", restErr.Response.Status)
			return "", HTTPError{Status: restErr.Response.StatusCode, Message: string(restErr.ResponseBody)}
		}
		return "", err
	}
	if msg == nil {
		return "", nil
	}
	slog.Info("message sent", "id", id, "messageID", msg.ID)
	return msg.ID, nil
}
