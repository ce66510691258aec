// Package telegram mirrors channel-visible digests to a configured
// Telegram chat. Delivery is best-effort and never affects the slash
// command reply.
package telegram

import (
	"fmt"
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewNotifier(token string, chatID int64) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &Notifier{api: bot, chatID: chatID}, nil
}

// SendDigest pushes a rendered digest to the configured chat.
func (n *Notifier) SendDigest(text string) error {
	msg := tgbotapi.NewMessage(n.chatID, slackToPlain(text))
	msg.DisableWebPagePreview = true

	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	return nil
}

var slackLink = regexp.MustCompile(`<([^|>]+)\|([^>]+)>`)

// slackToPlain strips Slack mrkdwn so the same rendered digest reads
// cleanly in Telegram: <url|label> becomes "label (url)", bold and
// italic markers drop.
func slackToPlain(text string) string {
	text = slackLink.ReplaceAllString(text, "$2 ($1)")
	text = strings.ReplaceAll(text, "*", "")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "_") && strings.HasSuffix(trimmed, "_") && len(trimmed) > 1 {
			lines[i] = strings.Trim(trimmed, "_")
		}
	}
	return strings.Join(lines, "\n")
}
