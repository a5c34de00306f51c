// Package telegram sends access summaries through the Telegram Bot API.
// Messages use MarkdownV2; delivery is retried with a linear backoff.
package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rewired-gh/loganalyzer/internal/logger"
	"github.com/rewired-gh/loganalyzer/internal/report"
)

// Client handles Telegram notifications
type Client struct {
	bot            *tgbotapi.BotAPI
	chatID         int64
	maxRetries     int
	retryDelayBase time.Duration
}

// NewClient creates a new Telegram client
func NewClient(botToken, chatID string, maxRetries int, retryDelayBase time.Duration) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	chatIDInt, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid chat ID: %w", err)
	}

	if maxRetries <= 0 {
		maxRetries = 3
	}
	if retryDelayBase <= 0 {
		retryDelayBase = time.Second
	}

	return &Client{
		bot:            bot,
		chatID:         chatIDInt,
		maxRetries:     maxRetries,
		retryDelayBase: retryDelayBase,
	}, nil
}

// SendSummary sends the summary of one analyzed source
func (c *Client) SendSummary(s *report.Summary) error {
	msg := tgbotapi.NewMessage(c.chatID, formatSummary(s))
	msg.ParseMode = "MarkdownV2"

	var lastErr error
	for i := 0; i < c.maxRetries; i++ {
		_, err := c.bot.Send(msg)
		if err == nil {
			return nil
		}
		lastErr = err
		logger.Warn("Telegram send attempt %d/%d failed: %v", i+1, c.maxRetries, err)
		time.Sleep(c.retryDelayBase * time.Duration(i+1))
	}

	return fmt.Errorf("failed to send message after %d retries: %w", c.maxRetries, lastErr)
}

// formatSummary formats a summary into a Telegram message
func formatSummary(s *report.Summary) string {
	var b strings.Builder

	b.WriteString("📊 *Access Summary*\n")
	b.WriteString(fmt.Sprintf("🗂 Source: `%s`\n", escapeCode(s.Source)))
	b.WriteString(fmt.Sprintf("📅 Generated: %s\n\n", escapeMarkdownV2(s.GeneratedAt.Format("2006-01-02 15:04:05"))))

	b.WriteString(fmt.Sprintf("Total accesses: *%s*\n", escapeMarkdownV2(humanize.Comma(int64(s.TotalAccesses)))))
	b.WriteString(fmt.Sprintf("🔥 Busiest hour: %s\n", escapeMarkdownV2(fmt.Sprintf("%02d:00", s.BusiestHour))))
	b.WriteString(fmt.Sprintf("💤 Quietest hour: %s\n", escapeMarkdownV2(fmt.Sprintf("%02d:00", s.QuietestHour))))
	b.WriteString(fmt.Sprintf("⏱ Busiest two hours: %s\n", escapeMarkdownV2(
		fmt.Sprintf("%02d:00-%02d:00", s.BusiestTwoHour, (s.BusiestTwoHour+2)%24))))
	b.WriteString(fmt.Sprintf("📈 Busiest day: %d\n", s.BusiestDay))
	b.WriteString(fmt.Sprintf("📉 Quietest day: %d\n", s.QuietestDay))
	b.WriteString(fmt.Sprintf("🗓 Busiest month: %s\n", time.Month(s.BusiestMonth)))
	b.WriteString(fmt.Sprintf("🗓 Quietest month: %s\n", time.Month(s.QuietestMonth)))

	return b.String()
}

// escapeMarkdownV2 escapes special characters for Telegram MarkdownV2
func escapeMarkdownV2(text string) string {
	// Characters that need escaping in MarkdownV2:
	// _ * [ ] ( ) ~ ` > # + - = | { } . !
	var b strings.Builder
	for _, char := range text {
		switch char {
		case '_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(char)
	}
	return b.String()
}

// escapeCode escapes text placed inside a MarkdownV2 code span
func escapeCode(text string) string {
	return strings.NewReplacer("\\", "\\\\", "`", "\\`").Replace(text)
}
