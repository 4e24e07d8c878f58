package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Webhook posts notifications to a Discord webhook. Deliveries run in a
// goroutine; failures are logged, never surfaced, keeping the notifier
// fire-and-forget.
type Webhook struct {
	session  *discordgo.Session
	id       string
	token    string
	username string
	logger   *zap.Logger
}

// NewWebhook builds a notifier from a Discord webhook URL of the form
// https://discord.com/api/webhooks/<id>/<token>.
func NewWebhook(webhookURL string, logger *zap.Logger) (*Webhook, error) {
	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}

	// Webhook execution needs no bot token.
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	return &Webhook{
		session:  session,
		id:       id,
		token:    token,
		username: "veritas",
		logger:   logger,
	}, nil
}

func parseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("parse webhook url: %w", err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 4 || parts[len(parts)-3] != "webhooks" {
		return "", "", fmt.Errorf("not a discord webhook url: %s", raw)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}

var levelBadges = map[Level]string{
	LevelInfo:    "ℹ️",
	LevelSuccess: "✅",
	LevelError:   "❌",
}

func (w *Webhook) Notify(level Level, message string) {
	go func() {
		_, err := w.session.WebhookExecute(w.id, w.token, false, &discordgo.WebhookParams{
			Content:  fmt.Sprintf("%s %s", levelBadges[level], message),
			Username: w.username,
		})
		if err != nil {
			w.logger.Warn("webhook notify failed", zap.Error(err))
		}
	}()
}

var _ Notifier = (*Webhook)(nil)
