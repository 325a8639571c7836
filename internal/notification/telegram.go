package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const timeLayout = "02.01.2006 15:04"

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier sends admin account alerts to a single operations chat.
type TelegramNotifier struct {
	bot    sender
	chatID int64
	logger logger.Logger
	now    func() time.Time
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	n := &TelegramNotifier{
		chatID: chatID,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}

	if token == "" {
		logger.Warn("telegram bot token is empty, admin alerts disabled")
		return n, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	n.bot = bot

	return n, nil
}

func (n *TelegramNotifier) NotifyAdminLogin(ctx context.Context, email string) {
	text := fmt.Sprintf(
		"*Admin sign-in*\n\nAccount: %s\nTime (UTC): %s",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, email), n.now().Format(timeLayout),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyPasswordChanged(ctx context.Context, email string) {
	text := fmt.Sprintf(
		"*Admin password changed*\n\nAccount: %s\nTime (UTC): %s\nIf this was not you, reset the password now.",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, email), n.now().Format(timeLayout),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no admin chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
