package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestNotifier(t *testing.T, bot sender, chatID int64) *TelegramNotifier {
	t.Helper()
	n, err := NewTelegramNotifier("", chatID, newTestLogger(t))
	require.NoError(t, err)
	n.bot = bot
	n.now = func() time.Time { return time.Date(2026, 10, 18, 9, 5, 0, 0, time.UTC) }
	return n
}

func TestNewTelegramNotifier_Disabled(t *testing.T) {
	n, err := NewTelegramNotifier("", 42, newTestLogger(t))

	require.NoError(t, err)
	assert.Nil(t, n.bot)
	n.NotifyAdminLogin(context.Background(), "admin@schools.nyc.gov")
}

func TestTelegramNotifier_NotifyAdminLogin(t *testing.T) {
	bot := &fakeSender{}
	n := newTestNotifier(t, bot, 42)

	n.NotifyAdminLogin(context.Background(), "admin@schools.nyc.gov")

	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(42), bot.sent[0].ChatID)
	assert.Equal(t, tgbotapi.ModeMarkdown, bot.sent[0].ParseMode)
	assert.Contains(t, bot.sent[0].Text, "Admin sign-in")
	assert.Contains(t, bot.sent[0].Text, "18.10.2026 09:05")
}

func TestTelegramNotifier_NotifyPasswordChanged(t *testing.T) {
	bot := &fakeSender{}
	n := newTestNotifier(t, bot, 42)

	n.NotifyPasswordChanged(context.Background(), "admin@schools.nyc.gov")

	require.Len(t, bot.sent, 1)
	assert.Contains(t, bot.sent[0].Text, "password changed")
}

func TestTelegramNotifier_Skips(t *testing.T) {
	t.Run("no chat configured", func(t *testing.T) {
		bot := &fakeSender{}
		n := newTestNotifier(t, bot, 0)

		n.NotifyAdminLogin(context.Background(), "admin@schools.nyc.gov")

		assert.Empty(t, bot.sent)
	})

	t.Run("context cancelled", func(t *testing.T) {
		bot := &fakeSender{}
		n := newTestNotifier(t, bot, 42)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		n.NotifyAdminLogin(ctx, "admin@schools.nyc.gov")

		assert.Empty(t, bot.sent)
	})
}

func TestTelegramNotifier_SendErrorIsSwallowed(t *testing.T) {
	bot := &fakeSender{err: errors.New("telegram down")}
	n := newTestNotifier(t, bot, 42)

	assert.NotPanics(t, func() {
		n.NotifyPasswordChanged(context.Background(), "admin@schools.nyc.gov")
	})
	assert.Len(t, bot.sent, 1)
}
