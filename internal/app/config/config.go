// Package config provides the configuration of the CLI.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ErikKalkoken/embedkit/internal/embed"
	"github.com/ErikKalkoken/embedkit/internal/sender"
)

const (
	avatarURLDefault = "https://cdn.imgpile.com/f/aQ1yR7t_xl.png"
	logLevelDefault  = slog.LevelInfo
	timeoutDefault   = 30
	usernameDefault  = "Embedkit"
)

var ErrUnknownWebhook = errors.New("unknown webhook")

// Config is the configuration of the CLI.
type Config struct {
	App      ConfigApp
	Webhooks []ConfigWebhook
}

// Webhook returns the configured webhook with the given name.
func (c Config) Webhook(name string) (ConfigWebhook, error) {
	for _, wh := range c.Webhooks {
		if wh.Name == name {
			return wh, nil
		}
	}
	return ConfigWebhook{}, fmt.Errorf("%s: %w", name, ErrUnknownWebhook)
}

// ConfigApp holds the general settings from the [app] table.
type ConfigApp struct {
	AvatarURL        string `toml:"avatar_url"`
	BrandingDisabled bool   `toml:"branding_disabled"`
	LogLevel         string `toml:"loglevel"`
	Timeout          int    `toml:"timeout"`
	Username         string `toml:"username"`
}

// LoggerLevel returns the configured log level or INFO when it is not valid.
func (ca ConfigApp) LoggerLevel() slog.Level {
	m := map[string]slog.Level{"DEBUG": slog.LevelDebug, "INFO": slog.LevelInfo, "WARN": slog.LevelWarn, "ERROR": slog.LevelError}
	v, ok := m[strings.ToUpper(ca.LogLevel)]
	if !ok {
		return logLevelDefault
	}
	return v
}

// Brand applies the configured username and avatar to a message,
// unless branding is disabled or the message already defines them.
func (ca ConfigApp) Brand(m *embed.Message) {
	if ca.BrandingDisabled {
		return
	}
	if m.Username == "" {
		m.Username = ca.Username
	}
	if m.AvatarURL == "" {
		m.AvatarURL = ca.AvatarURL
	}
}

// RequestTimeout returns the timeout for requests to Discord.
func (ca ConfigApp) RequestTimeout() time.Duration {
	return time.Duration(ca.Timeout) * time.Second
}

// ConfigWebhook is a named Discord webhook.
type ConfigWebhook struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	var c Config
	if err := parseConfig(&c); err != nil {
		panic(err)
	}
	return c
}

// FromFile reads and validates the configuration from a TOML file.
func FromFile(path string) (Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return config, err
	}
	if err := parseConfig(&config); err != nil {
		return config, err
	}
	return config, nil
}

func parseConfig(config *Config) error {
	webhookNames := make(map[string]bool)
	webhookURLs := make(map[string]bool)
	for _, x := range config.Webhooks {
		if x.Name == "" {
			return fmt.Errorf("one webhook has no name")
		}
		if x.URL == "" {
			return fmt.Errorf("webhook %s has no url", x.Name)
		}
		if _, _, err := sender.ParseWebhookURL(x.URL); err != nil {
			return fmt.Errorf("webhook %s has invalid url: %w", x.Name, err)
		}
		if webhookNames[x.Name] {
			return fmt.Errorf("webhook name %s not unique", x.Name)
		}
		webhookNames[x.Name] = true
		if webhookURLs[x.URL] {
			return fmt.Errorf("webhook url of %s not unique", x.Name)
		}
		webhookURLs[x.URL] = true
	}
	if config.App.AvatarURL != "" && !embed.IsValidURL(config.App.AvatarURL) {
		return fmt.Errorf("avatar url invalid: %s", config.App.AvatarURL)
	}
	if config.App.AvatarURL == "" {
		config.App.AvatarURL = avatarURLDefault
	}
	if config.App.Username == "" {
		config.App.Username = usernameDefault
	}
	if config.App.Timeout <= 0 {
		config.App.Timeout = timeoutDefault
	}
	return nil
}
