package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"mpin_check/internal/config"
	"mpin_check/internal/transport/bot/handler"
	"mpin_check/pkg/contextx"
	"mpin_check/pkg/logx"
)

const longPollingTimeoutSec = 60

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Bot Telegram-бот, отвечающий на /check
type Bot struct {
	bot            *telego.Bot
	handler        *handler.Handler
	allowedChatIDs []int64
}

func New(cfg config.Bot, commandHandler *handler.Handler) (*Bot, error) {
	bot, err := telego.NewBot(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return &Bot{
		bot:            bot,
		handler:        commandHandler,
		allowedChatIDs: cfg.AllowedChatIDs,
	}, nil
}

// Run получает обновления через long polling до отмены ctx.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: longPollingTimeoutSec,
	})
	if err != nil {
		return fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("th.NewBotHandler: %w", err)
	}

	b.handler.RegisterRoutes(botHandler, b.allowedChatIDs...)

	go func() {
		<-ctx.Done()

		if err := botHandler.Stop(); err != nil {
			logger(ctx).Error("botHandler.Stop", logx.Error(err))
		}
	}()

	logger(ctx).Info("telegram bot started", slog.Int("allowed-chats", len(b.allowedChatIDs)))

	if err := botHandler.Start(); err != nil {
		return fmt.Errorf("botHandler.Start: %w", err)
	}

	logger(ctx).Info("telegram bot stopped")

	return nil
}
