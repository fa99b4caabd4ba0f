package embed

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Message represents a message with embeds that can be send to a Discord webhook.
type Message struct {
	AvatarURL string
	Content   string
	Embeds    []*Embed
	Username  string
}

// Validate checks the message against known Discord limits.
// Returns an [ErrInvalidMessage] error in case a limit is violated.
func (m Message) Validate() error {
	if len(m.Content) == 0 && len(m.Embeds) == 0 {
		return fmt.Errorf("need to contain content or embeds: %w", ErrInvalidMessage)
	}
	if length(m.Content) > contentLength {
		return fmt.Errorf("content too long: %w", ErrInvalidMessage)
	}
	if length(m.Username) > usernameLength {
		return fmt.Errorf("username too long: %w", ErrInvalidMessage)
	}
	if !IsValidURL(m.AvatarURL) && m.AvatarURL != "" {
		return fmt.Errorf("avatar url invalid: %w", ErrInvalidMessage)
	}
	if len(m.Embeds) > embedsQuantity {
		return fmt.Errorf("too many embeds: %w", ErrInvalidMessage)
	}
	var totalSize int
	for i, em := range m.Embeds {
		if em == nil {
			return fmt.Errorf("embed %d is nil: %w", i, ErrInvalidMessage)
		}
		totalSize += em.size()
	}
	if totalSize > embedCombinedLength {
		return fmt.Errorf("too many characters in combined embeds: %w", ErrInvalidMessage)
	}
	return nil
}

// ToWebhookParams converts the message into webhook parameters of the discordgo library.
func (m Message) ToWebhookParams() *discordgo.WebhookParams {
	p := &discordgo.WebhookParams{
		Content:   m.Content,
		Username:  m.Username,
		AvatarURL: m.AvatarURL,
	}
	for _, em := range m.Embeds {
		p.Embeds = append(p.Embeds, em.ToMessageEmbed())
	}
	return p
}
