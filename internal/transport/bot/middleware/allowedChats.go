package middleware

import (
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"mpin_check/pkg/contextx"
	"mpin_check/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// ChatFilter множество чатов, которым бот отвечает. Пустое - отвечать всем.
type ChatFilter map[int64]struct{}

func NewChatFilter(chatIDs ...int64) ChatFilter {
	filter := make(ChatFilter, len(chatIDs))
	for _, id := range chatIDs {
		filter[id] = struct{}{}
	}

	return filter
}

// Allows при непустом списке пропускает только сообщения из перечисленных чатов.
func (f ChatFilter) Allows(update telego.Update) bool {
	if len(f) == 0 {
		return true
	}

	if update.Message == nil {
		return false
	}

	_, ok := f[update.Message.Chat.ID]

	return ok
}

func AllowedChats(chatIDs ...int64) th.Handler {
	filter := NewChatFilter(chatIDs...)

	return func(ctx *th.Context, update telego.Update) error {
		if filter.Allows(update) {
			return ctx.Next(update)
		}

		if update.Message != nil {
			logger(ctx).Debug("chat is not allowed", slog.Int64(logx.FieldChatID, update.Message.Chat.ID))
		}

		return nil
	}
}
