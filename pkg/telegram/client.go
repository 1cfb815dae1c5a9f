// Package telegram wraps the bot API connection and the long-poll
// configuration the update loop runs on.
package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client bundles an authorized bot with the update config handed to
// GetUpdatesChan.
type Client struct {
	Bot          *tgbotapi.BotAPI
	UpdateConfig tgbotapi.UpdateConfig
}

// NewClient authorizes against the bot API and prepares long polling.
// pollTimeout is the long-poll window in seconds; values below 1 would turn
// polling into a busy loop, so they are rejected.
func NewClient(token string, pollTimeout int) (*Client, error) {
	if pollTimeout < 1 {
		return nil, fmt.Errorf("poll timeout must be at least 1 second, got %d", pollTimeout)
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("authorize bot: %w", err)
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = pollTimeout

	return &Client{
		Bot:          bot,
		UpdateConfig: updateConfig,
	}, nil
}
